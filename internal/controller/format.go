package controller

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/applyeval/internal/model"
)

func mark(ok bool) string {
	if ok {
		return "✓"
	}

	return "✗"
}

func successLabel(ok bool) string {
	if ok {
		return "SUCCESS"
	}

	return "FAIL"
}

func expectedLabel(ok bool) string {
	if ok {
		return "as expected"
	}

	return "UNEXPECTED"
}

func countWithRate(n, total int) string {
	if total == 0 {
		return fmt.Sprintf("%d", n)
	}

	return fmt.Sprintf("%d (%.1f%%)", n, 100*float64(n)/float64(total))
}

// reportStatus condenses a report to the label used in result lists.
func reportStatus(r m.Report) string {
	switch {
	case !r.Scored():
		return "error"
	case r.Verdict.OverallSuccess:
		return "success"
	default:
		return "fail"
	}
}

// unifiedDiff renders the changes needed to turn applied into target.
func unifiedDiff(applied, target string, label string) string {
	if applied == target {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(applied),
		B:        difflib.SplitLines(target),
		FromFile: label + " (applied)",
		ToFile:   label + " (target)",
		Context:  2,
	})
	if err != nil {
		return ""
	}

	return diff
}

func sortedDifficulties[V any](values map[m.Difficulty]V) []m.Difficulty {
	out := make([]m.Difficulty, 0, len(values))

	for _, d := range m.Difficulties {
		if _, ok := values[d]; ok {
			out = append(out, d)
		}
	}

	for d := range values {
		if !d.Valid() {
			out = append(out, d)
		}
	}

	return out
}

func sortedKeys[V any](values map[string]V) []string {
	out := make([]string, 0, len(values))
	for k := range values {
		out = append(out, k)
	}

	sort.Strings(out)

	return out
}

func exampleLabel(r m.Report) string {
	return fmt.Sprintf("#%d %s", r.ExampleID, r.FunctionName)
}

func joinOrDash(values []string) string {
	if len(values) == 0 {
		return "-"
	}

	return strings.Join(values, ", ")
}
