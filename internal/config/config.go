// Package config loads provider credentials and generation settings from the
// environment, optionally seeded by a .env file.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Defaults used when a variable is unset or does not parse.
const (
	DefaultOpenRouterBaseURL = "https://openrouter.ai/api/v1"
	DefaultCodeModel         = "google/gemini-2.0-flash-001"
	DefaultJudgeModels       = "google/gemini-2.0-flash-001"
	DefaultLangfuseBaseURL   = "https://cloud.langfuse.com"
	DefaultMaxTokens         = 1024
	DefaultTopP              = 1.0
	DefaultTimeout           = 60 * time.Second
)

// Config is everything the CLI needs to reach model providers and the
// trace backend.
type Config struct {
	OpenRouterAPIKey  string
	OpenRouterBaseURL string
	GeminiAPIKey      string
	CodeModelDefault  string
	JudgeModels       []string
	LLM               LLMConfig
	Tracing           TracingConfig
}

// LLMConfig holds generation parameters and call limits.
type LLMConfig struct {
	Temperature      float32
	MaxTokens        int
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
	// RPS caps provider calls per second; zero means unlimited.
	RPS     float64
	Timeout time.Duration
}

// TracingConfig selects the trace exporter.
type TracingConfig struct {
	Exporter          string
	OTLPEndpoint      string
	OTLPInsecure      bool
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseBaseURL   string
}

// Load reads the given .env files (".env" when none are given) and then the
// process environment. Missing files are ignored and variables already set in
// the environment win over file values.
func Load(files ...string) Config {
	_ = godotenv.Load(files...)

	return Config{
		OpenRouterAPIKey:  env("OPENROUTER_API_KEY", ""),
		OpenRouterBaseURL: env("OPENROUTER_BASE_URL", DefaultOpenRouterBaseURL),
		GeminiAPIKey:      env("GEMINI_API_KEY", ""),
		CodeModelDefault:  env("CODE_MODEL_DEFAULT", DefaultCodeModel),
		JudgeModels:       SplitList(env("JUDGE_MODELS_STR", DefaultJudgeModels)),
		LLM: LLMConfig{
			Temperature:      float32(envFloat("LLM_TEMPERATURE", 0)),
			MaxTokens:        envInt("LLM_MAX_TOKENS", DefaultMaxTokens),
			TopP:             float32(envFloat("LLM_TOP_P", DefaultTopP)),
			FrequencyPenalty: float32(envFloat("LLM_FREQUENCY_PENALTY", 0)),
			PresencePenalty:  float32(envFloat("LLM_PRESENCE_PENALTY", 0)),
			RPS:              envFloat("LLM_RPS", 0),
			Timeout:          envDuration("LLM_TIMEOUT", DefaultTimeout),
		},
		Tracing: TracingConfig{
			Exporter:          env("OTEL_TRACES_EXPORTER", ""),
			OTLPEndpoint:      env("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			OTLPInsecure:      envBool("OTEL_EXPORTER_OTLP_INSECURE", false),
			LangfusePublicKey: env("LANGFUSE_PUBLIC_KEY", ""),
			LangfuseSecretKey: env("LANGFUSE_SECRET_KEY", ""),
			LangfuseBaseURL:   env("LANGFUSE_BASE_URL", DefaultLangfuseBaseURL),
		},
	}
}

// SplitList splits a comma separated list, dropping blanks.
func SplitList(raw string) []string {
	out := []string{}

	for _, item := range strings.Split(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

func env(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}

	return fallback
}

func envFloat(key string, fallback float64) float64 {
	v, err := strconv.ParseFloat(env(key, ""), 64)
	if err != nil {
		return fallback
	}

	return v
}

func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(env(key, ""))
	if err != nil {
		return fallback
	}

	return v
}

func envBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(env(key, ""))
	if err != nil {
		return fallback
	}

	return v
}

// envDuration accepts Go durations ("90s") and bare seconds ("90").
func envDuration(key string, fallback time.Duration) time.Duration {
	raw := env(key, "")
	if raw == "" {
		return fallback
	}

	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}

	if secs, err := strconv.ParseFloat(raw, 64); err == nil && secs > 0 {
		return time.Duration(secs * float64(time.Second))
	}

	return fallback
}
