package adapter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

// GeminiPrefix routes a model name to the Gemini API instead of OpenRouter.
const GeminiPrefix = "gemini:"

var (
	// ErrNoChoices is returned when a provider answers without any candidate.
	ErrNoChoices = errors.New("model returned no choices")
	// ErrProviderNotConfigured is returned when a model needs credentials that were not supplied.
	ErrProviderNotConfigured = errors.New("provider not configured")
)

// ChatRequest is one single-turn chat completion.
type ChatRequest struct {
	Model            string
	System           string
	Prompt           string
	Temperature      float32
	MaxTokens        int
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
	// JSON asks the provider for a JSON object response.
	JSON bool
}

// ChatClient sends chat completions to a language model provider.
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// NewLimiter builds the limiter shared by every provider call. A non-positive
// rps disables limiting.
func NewLimiter(rps float64) *rate.Limiter {
	if rps <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	return rate.NewLimiter(rate.Limit(rps), 1)
}

type openRouterClient struct {
	client  *openai.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewOpenRouterClient talks to any OpenAI-compatible endpoint at baseURL.
func NewOpenRouterClient(apiKey, baseURL string, limiter *rate.Limiter, log *zap.Logger) ChatClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	}

	return &openRouterClient{
		client:  openai.NewClientWithConfig(cfg),
		limiter: limiter,
		log:     log,
	}
}

func (c *openRouterClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	messages := make([]openai.ChatCompletionMessage, 0, 2)
	if req.System != "" {
		messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: req.System})
	}

	messages = append(messages, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: req.Prompt})

	creq := openai.ChatCompletionRequest{
		Model:            req.Model,
		Messages:         messages,
		Temperature:      req.Temperature,
		MaxTokens:        req.MaxTokens,
		TopP:             req.TopP,
		FrequencyPenalty: req.FrequencyPenalty,
		PresencePenalty:  req.PresencePenalty,
	}
	if req.JSON {
		creq.ResponseFormat = &openai.ChatCompletionResponseFormat{Type: openai.ChatCompletionResponseFormatTypeJSONObject}
	}

	c.log.Debug("calling openrouter", zap.String("model", req.Model), zap.Bool("json", req.JSON))

	resp, err := c.client.CreateChatCompletion(ctx, creq)
	if err != nil {
		return "", fmt.Errorf("openrouter call for %s failed: %w", req.Model, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openrouter %s: %w", req.Model, ErrNoChoices)
	}

	c.log.Debug("openrouter answered",
		zap.String("model", req.Model),
		zap.String("finish_reason", string(resp.Choices[0].FinishReason)),
	)

	return resp.Choices[0].Message.Content, nil
}

type geminiClient struct {
	client  *genai.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

// NewGeminiClient talks to the Gemini API directly.
func NewGeminiClient(ctx context.Context, apiKey string, limiter *rate.Limiter, log *zap.Logger) (ChatClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w", ErrProviderNotConfigured)
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &geminiClient{client: client, limiter: limiter, log: log}, nil
}

func (g *geminiClient) Complete(ctx context.Context, req ChatRequest) (string, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return "", err
	}

	model := strings.TrimPrefix(req.Model, GeminiPrefix)

	cfg := &genai.GenerateContentConfig{
		Temperature:      genai.Ptr(req.Temperature),
		TopP:             genai.Ptr(req.TopP),
		FrequencyPenalty: genai.Ptr(req.FrequencyPenalty),
		PresencePenalty:  genai.Ptr(req.PresencePenalty),
		MaxOutputTokens:  int32(req.MaxTokens), // #nosec G115 - bounded by config
	}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	if req.JSON {
		cfg.ResponseMIMEType = "application/json"
	}

	g.log.Debug("calling gemini", zap.String("model", model), zap.Bool("json", req.JSON))

	resp, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{genai.NewContentFromText(req.Prompt, genai.RoleUser)},
		cfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini call for %s failed: %w", model, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini %s: %w", model, ErrNoChoices)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		b.WriteString(part.Text)
	}

	return b.String(), nil
}

// Router dispatches each request to the provider its model name selects and
// bounds every call with a timeout.
type Router struct {
	openRouter ChatClient
	gemini     ChatClient
	timeout    time.Duration
}

// NewRouter builds a Router. gemini may be nil when no key is configured.
func NewRouter(openRouter, gemini ChatClient, timeout time.Duration) *Router {
	return &Router{openRouter: openRouter, gemini: gemini, timeout: timeout}
}

// Complete implements ChatClient.
func (r *Router) Complete(ctx context.Context, req ChatRequest) (string, error) {
	client := r.openRouter
	if strings.HasPrefix(req.Model, GeminiPrefix) {
		client = r.gemini
	}

	if client == nil {
		return "", fmt.Errorf("model %s: %w", req.Model, ErrProviderNotConfigured)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	return client.Complete(ctx, req)
}
