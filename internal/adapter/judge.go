package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	m "github.com/mouse-blink/applyeval/internal/model"
)

const (
	defaultJudgeReason = "No reason provided"
	maxJudgeScore      = 5
)

// Sampling holds the generation parameters used for judge calls.
type Sampling struct {
	Temperature      float32
	MaxTokens        int
	TopP             float32
	FrequencyPenalty float32
	PresencePenalty  float32
}

// JudgeRequest is everything a judge model sees about one applied change.
type JudgeRequest struct {
	Model    string
	Original string
	Prompt   string
	Applied  string
	Target   string
}

// Judge asks an external model for an advisory opinion on an applied change.
type Judge interface {
	Judge(ctx context.Context, req JudgeRequest) (m.JudgeOpinion, error)
}

type chatJudge struct {
	chat     ChatClient
	sampling Sampling
}

// NewJudge builds a Judge on top of a chat provider.
func NewJudge(chat ChatClient, sampling Sampling) Judge {
	return &chatJudge{chat: chat, sampling: sampling}
}

type judgeResponse struct {
	IsCorrect *bool    `json:"is_correct"`
	Score     *float64 `json:"score"`
	Reason    *string  `json:"reason"`
}

func (j *chatJudge) Judge(ctx context.Context, req JudgeRequest) (m.JudgeOpinion, error) {
	content, err := j.chat.Complete(ctx, ChatRequest{
		Model:            req.Model,
		Prompt:           BuildJudgePrompt(req),
		Temperature:      j.sampling.Temperature,
		MaxTokens:        j.sampling.MaxTokens,
		TopP:             j.sampling.TopP,
		FrequencyPenalty: j.sampling.FrequencyPenalty,
		PresencePenalty:  j.sampling.PresencePenalty,
		JSON:             true,
	})
	if err != nil {
		return m.JudgeOpinion{Model: req.Model}, err
	}

	opinion, err := ParseJudgeResponse(content)
	opinion.Model = req.Model

	return opinion, err
}

// ParseJudgeResponse decodes a judge answer, tolerating markdown fences and
// filling defaults for missing fields.
func ParseJudgeResponse(content string) (m.JudgeOpinion, error) {
	clean := strings.TrimSpace(StripFences(content))
	if clean == "" {
		return m.JudgeOpinion{}, ErrEmptyOutput
	}

	var resp judgeResponse
	if err := json.Unmarshal([]byte(clean), &resp); err != nil {
		return m.JudgeOpinion{}, fmt.Errorf("decode judge response: %w", err)
	}

	opinion := m.JudgeOpinion{Reason: defaultJudgeReason}
	if resp.IsCorrect != nil {
		opinion.IsCorrect = *resp.IsCorrect
	}

	if resp.Score != nil {
		opinion.Score = min(max(*resp.Score, 0), maxJudgeScore)
	}

	if resp.Reason != nil && *resp.Reason != "" {
		opinion.Reason = *resp.Reason
	}

	return opinion, nil
}

// BuildJudgePrompt renders the review instructions and the four files.
func BuildJudgePrompt(req JudgeRequest) string {
	var b strings.Builder

	b.WriteString(judgeInstructions)
	b.WriteString("\nNow here is the data:\n\nOriginal file:\n<ORIGINAL_FILE>\n")
	b.WriteString(req.Original)
	b.WriteString("\n</ORIGINAL_FILE>\n\nUser request:\n<USER_PROMPT>\n")
	b.WriteString(req.Prompt)
	b.WriteString("\n</USER_PROMPT>\n\nApplied file:\n<APPLIED_FILE>\n")
	b.WriteString(req.Applied)
	b.WriteString("\n</APPLIED_FILE>\n\nReference target file (may be empty if not available):\n<TARGET_FILE>\n")

	if req.Target != "" {
		b.WriteString(req.Target)
		b.WriteString("\n")
	}

	b.WriteString("</TARGET_FILE>\n")

	return b.String()
}

const judgeInstructions = `You are an expert code reviewer evaluating an automated code editing system.

You will be given the original file content (before applying a change), the user request,
the applied file content (after the automated apply mechanism) and optionally a reference
target file (the expected result, if available).

Decide whether the applied file correctly implements the user's requested change without
introducing obvious regressions, and how good the result is on a discrete 0-5 scale:

0 = Completely incorrect. The change does not implement the request at all, or it severely breaks the code.
1 = Mostly incorrect. Some attempt is made, but the main behavior is wrong or broken.
2 = Partially correct. The change captures part of the intent, but important aspects are missing or incorrect.
3 = Mostly correct with issues. The main behavior is implemented, but there are notable problems.
4 = Correct with minor issues. The requested change is correctly implemented and code is usable.
5 = Fully correct. The applied code implements the requested change, preserves existing behavior, and is clean.

is_correct is true if you consider the change acceptable to ship (score >= 4), false otherwise.

Focus on semantic behavior first. Consider obvious regressions in unrelated code. Formatting issues
lower the score only if they make the code clearly worse. A reference target file may help you judge
correctness, but the applied file does not need to match it exactly.

Respond only with a strict JSON object:
{"is_correct": true, "score": 4, "reason": "Short explanation (1-3 sentences)."}
`
