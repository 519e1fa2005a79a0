package domain

import m "github.com/mouse-blink/applyeval/internal/model"

// Summarize aggregates the reports of one code model. Reports without a
// candidate count as model failures and stay out of every other figure.
func Summarize(codeModel string, reports []m.Report) m.ModelSummary {
	s := m.ModelSummary{
		CodeModel:    codeModel,
		ByDifficulty: make(map[m.Difficulty]m.Bucket),
		ByTag:        make(map[string]m.Bucket),
		Judges:       make(map[string]m.JudgeStats),
	}

	for _, r := range reports {
		if r.CodeModel != codeModel {
			continue
		}

		if !r.Scored() {
			s.ModelFailures++
			continue
		}

		s.Total++
		s.ExactMatches += count(r.Metrics.ExactMatch)
		s.OverallSuccess += count(r.Verdict.OverallSuccess)
		s.ApplySucceeded += count(r.Verdict.ApplySucceeded)
		s.SyntaxValid += count(r.Metrics.SyntaxValid)
		s.FunctionPreserved += count(r.Metrics.FunctionPreserved)
		s.OutcomeAsExpected += count(r.OutcomeAsExpected)
		s.LineOverlapSum += r.Metrics.LineOverlap
		s.NormalizedOverlapSum += r.Metrics.NormalizedOverlap
		s.SemanticSimilaritySum += r.Metrics.SemanticSimilarity

		s.ByDifficulty[r.Difficulty] = addToBucket(s.ByDifficulty[r.Difficulty], r)
		for _, tag := range r.Tags {
			s.ByTag[tag] = addToBucket(s.ByTag[tag], r)
		}

		for name, op := range r.Judges {
			stats := s.Judges[name]
			if op.Failed() {
				stats.Failed++
			} else {
				stats.Count++
				stats.Sum += op.Score
				stats.Correct += count(op.IsCorrect)
			}

			s.Judges[name] = stats
		}
	}

	return s
}

func addToBucket(b m.Bucket, r m.Report) m.Bucket {
	b.Total++
	b.Exact += count(r.Metrics.ExactMatch)
	b.SyntaxValid += count(r.Metrics.SyntaxValid)
	b.Success += count(r.Verdict.OverallSuccess)

	return b
}

func count(b bool) int {
	if b {
		return 1
	}

	return 0
}
