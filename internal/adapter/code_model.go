package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ErrEmptyOutput is returned when a model answers with nothing usable.
var ErrEmptyOutput = errors.New("model returned empty output")

const codeModelSystemPrompt = `You are a coding assistant.
Your task is to generate the code change based on the user's request.
You must output ONLY the code block that should be applied.
Do not include explanation, thinking, or markdown fences around the code unless requested.
Just raw python code.
`

const (
	codeModelTemperature = 0.2
	codeModelMaxTokens   = 2000
)

// CodeModel produces a candidate replacement for a function.
type CodeModel interface {
	Generate(ctx context.Context, original, prompt, model string) (string, error)
}

type chatCodeModel struct {
	chat ChatClient
}

// NewCodeModel builds a CodeModel on top of a chat provider.
func NewCodeModel(chat ChatClient) CodeModel {
	return &chatCodeModel{chat: chat}
}

func (c *chatCodeModel) Generate(ctx context.Context, original, prompt, model string) (string, error) {
	content, err := c.chat.Complete(ctx, ChatRequest{
		Model:       model,
		System:      codeModelSystemPrompt,
		Prompt:      buildCodePrompt(original, prompt),
		Temperature: codeModelTemperature,
		MaxTokens:   codeModelMaxTokens,
		TopP:        1,
	})
	if err != nil {
		return "", err
	}

	code := StripFences(content)
	if strings.TrimSpace(code) == "" {
		return "", fmt.Errorf("code model %s: %w", model, ErrEmptyOutput)
	}

	return code, nil
}

func buildCodePrompt(original, prompt string) string {
	return fmt.Sprintf(`
Original File:
%s

Request: %s

Provide the code snippet that should replace the relevant part (or the whole file if needed) to satisfy the request.
The format should be a valid python function or code block that can be swapped in.
`, original, prompt)
}

// StripFences returns the body of the first fenced code block in content.
// Content without any fence is returned unchanged.
func StripFences(content string) string {
	source := []byte(content)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	var (
		body  bytes.Buffer
		found bool
	)

	walker := func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		lines := block.Lines()
		for i := range lines.Len() {
			line := lines.At(i)
			body.Write(line.Value(source))
		}

		found = true

		return ast.WalkStop, nil
	}

	if err := ast.Walk(root, walker); err != nil || !found {
		return content
	}

	return body.String()
}
