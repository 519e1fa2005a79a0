package domain

import (
	"strings"
	"unicode"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// Locate finds the first definition of name in src by column counting.
//
// The header is the first line that, once leading whitespace is stripped,
// starts with "def name(" or "async def name(". The span runs until the
// first following non-blank line indented at or left of the header, or to
// the end of the file. Decorator lines above the header are not part of the
// span. The second result is false when no header matches.
func Locate(src m.SourceText, name string) (m.FunctionSpan, bool) {
	def := "def " + name + "("
	asyncDef := "async def " + name + "("

	start := -1
	baseIndent := 0

	for i := range src.Len() {
		line := src.Line(i)
		stripped := strings.TrimLeftFunc(line, unicode.IsSpace)

		if strings.HasPrefix(stripped, def) || strings.HasPrefix(stripped, asyncDef) {
			start = i
			baseIndent = len(line) - len(stripped)

			break
		}
	}

	if start < 0 {
		return m.FunctionSpan{}, false
	}

	end := start + 1
	for ; end < src.Len(); end++ {
		line := src.Line(end)
		if isBlank(line) {
			continue
		}

		if indentOf(line) <= baseIndent {
			break
		}
	}

	return m.FunctionSpan{StartLine: start, EndLine: end, BaseIndent: baseIndent}, true
}

// indentOf counts leading whitespace bytes.
func indentOf(line string) int {
	return len(line) - len(strings.TrimLeftFunc(line, unicode.IsSpace))
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}
