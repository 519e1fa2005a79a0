package domain

import (
	"fmt"
	"sort"

	m "github.com/mouse-blink/applyeval/internal/model"
)

// FilterByDifficulty keeps the examples of one difficulty. An empty
// difficulty keeps everything.
func FilterByDifficulty(examples []m.Example, difficulty m.Difficulty) ([]m.Example, error) {
	if difficulty == "" {
		return examples, nil
	}

	if !difficulty.Valid() {
		return nil, fmt.Errorf("unknown difficulty %q", difficulty)
	}

	out := make([]m.Example, 0, len(examples))

	for _, ex := range examples {
		if ex.Difficulty == difficulty {
			out = append(out, ex)
		}
	}

	return out, nil
}

// FilterByTags keeps the examples carrying any of tags. No tags keeps
// everything.
func FilterByTags(examples []m.Example, tags []string) []m.Example {
	if len(tags) == 0 {
		return examples
	}

	out := make([]m.Example, 0, len(examples))

	for _, ex := range examples {
		for _, tag := range tags {
			if ex.HasTag(tag) {
				out = append(out, ex)
				break
			}
		}
	}

	return out
}

// ExpectedFailures keeps the examples the apply mechanism is expected to fail on.
func ExpectedFailures(examples []m.Example) []m.Example {
	out := make([]m.Example, 0, len(examples))

	for _, ex := range examples {
		if !ex.ExpectedSuccess {
			out = append(out, ex)
		}
	}

	return out
}

// Limit keeps the first n examples; n <= 0 keeps everything.
func Limit(examples []m.Example, n int) []m.Example {
	if n <= 0 || n >= len(examples) {
		return examples
	}

	return examples[:n]
}

// DescribeDataset counts examples by difficulty, expected outcome and tag.
func DescribeDataset(examples []m.Example) m.DatasetSummary {
	summary := m.DatasetSummary{
		Total:        len(examples),
		ByDifficulty: make(map[m.Difficulty]int, len(m.Difficulties)),
	}

	for _, d := range m.Difficulties {
		summary.ByDifficulty[d] = 0
	}

	tags := make(map[string]int)

	for _, ex := range examples {
		summary.ByDifficulty[ex.Difficulty]++

		if ex.ExpectedSuccess {
			summary.ExpectedSuccess++
		} else {
			summary.ExpectedFailure++
		}

		for _, tag := range ex.Tags {
			tags[tag]++
		}
	}

	summary.Tags = make([]m.TagCount, 0, len(tags))
	for tag, count := range tags {
		summary.Tags = append(summary.Tags, m.TagCount{Tag: tag, Count: count})
	}

	sort.Slice(summary.Tags, func(i, j int) bool {
		if summary.Tags[i].Count != summary.Tags[j].Count {
			return summary.Tags[i].Count > summary.Tags[j].Count
		}

		return summary.Tags[i].Tag < summary.Tags[j].Tag
	})

	return summary
}
