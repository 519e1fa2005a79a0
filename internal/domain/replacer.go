package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// Replace substitutes the lines covered by span with replacement. Everything
// outside the span is copied verbatim; replacement is inserted as-is, without
// re-indenting, trimming or newline fixes.
func Replace(src m.SourceText, span m.FunctionSpan, replacement string) (m.SourceText, error) {
	if err := span.Validate(src.Len()); err != nil {
		return m.SourceText{}, fmt.Errorf("invalid span: %w", err)
	}

	var sb strings.Builder

	sb.WriteString(src.Slice(0, span.StartLine))
	sb.WriteString(replacement)
	sb.WriteString(src.Slice(span.EndLine, src.Len()))

	return m.NewSourceText(sb.String()), nil
}

// Apply locates name in original and replaces its span with replacement.
// When the function is absent the original text passes through unchanged and
// Found is false.
func Apply(original, name, replacement string) (m.ApplyResult, error) {
	src := m.NewSourceText(original)

	span, ok := Locate(src, name)
	if !ok {
		return m.ApplyResult{Applied: src, Found: false}, nil
	}

	applied, err := Replace(src, span, replacement)
	if err != nil {
		return m.ApplyResult{}, fmt.Errorf("apply %q: %w", name, err)
	}

	return m.ApplyResult{Applied: applied, Found: true, Span: &span}, nil
}

// ExtractFunction returns the text of the span Locate finds for name, or ""
// when there is none.
func ExtractFunction(text, name string) string {
	src := m.NewSourceText(text)

	span, ok := Locate(src, name)
	if !ok {
		return ""
	}

	return src.Slice(span.StartLine, span.EndLine)
}
