package domain

import (
	"strings"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// ExactMatch reports whether a and b are equal once surrounding whitespace
// of the whole text is trimmed. Lines are not trimmed individually.
func ExactMatch(a, b string) bool {
	return strings.TrimSpace(a) == strings.TrimSpace(b)
}

// LineOverlap is the share of positions i where line i of a equals line i
// of b, over the longer of the two. Two empty texts overlap fully.
func LineOverlap(a, b string) float64 {
	return positionalOverlap(m.SplitLines(a), m.SplitLines(b))
}

// NormalizedOverlap is LineOverlap with every line whitespace-trimmed first.
func NormalizedOverlap(a, b string) float64 {
	return positionalOverlap(trimAll(m.SplitLines(a)), trimAll(m.SplitLines(b)))
}

func positionalOverlap(a, b []string) float64 {
	longest := max(len(a), len(b))
	if longest == 0 {
		return 1.0
	}

	same := 0

	for i := range min(len(a), len(b)) {
		if a[i] == b[i] {
			same++
		}
	}

	return float64(same) / float64(longest)
}

func trimAll(lines []string) []string {
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}

	return lines
}
