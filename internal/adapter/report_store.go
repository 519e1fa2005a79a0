package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/applyeval/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists and retrieves run reports.
type ReportStore interface {
	SaveRun(dir m.Path, run m.RunReport) (m.Path, error)
	LoadRun(path m.Path) (m.RunReport, error)
	ListRuns(dir m.Path) ([]m.Path, error)
	ExportJSON(path m.Path, run m.RunReport) error
}

// LocalReportStore keeps one YAML file per run in a reports directory.
type LocalReportStore struct {
	fs SourceFSAdapter
}

// NewReportStore constructs a ReportStore writing through fs.
func NewReportStore(fs SourceFSAdapter) *LocalReportStore {
	return &LocalReportStore{fs: fs}
}

// SaveRun writes run to dir/<run id>.yaml and returns the file path.
func (rs *LocalReportStore) SaveRun(dir m.Path, run m.RunReport) (m.Path, error) {
	if run.ID == "" {
		return "", fmt.Errorf("run report has no id")
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(run); err != nil {
		return "", fmt.Errorf("encode run %s: %w", run.ID, err)
	}

	if err := enc.Close(); err != nil {
		return "", err
	}

	path := m.Path(filepath.Join(string(dir), run.ID+reportExt))
	if err := rs.fs.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return "", fmt.Errorf("write run %s: %w", run.ID, err)
	}

	return path, nil
}

// LoadRun reads a run written by SaveRun.
func (rs *LocalReportStore) LoadRun(path m.Path) (m.RunReport, error) {
	data, err := rs.fs.ReadFile(path)
	if err != nil {
		return m.RunReport{}, err
	}

	var run m.RunReport
	if err := yaml.Unmarshal(data, &run); err != nil {
		return m.RunReport{}, fmt.Errorf("decode run %s: %w", path, err)
	}

	return run, nil
}

// ListRuns returns the run files in dir, newest first.
func (rs *LocalReportStore) ListRuns(dir m.Path) ([]m.Path, error) {
	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	type runFile struct {
		path    m.Path
		modTime time.Time
	}

	files := make([]runFile, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		path := m.Path(filepath.Join(string(dir), entry.Name()))

		info, err := rs.fs.FileInfo(path)
		if err != nil {
			return nil, err
		}

		files = append(files, runFile{path: path, modTime: info.ModTime()})
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].modTime.Equal(files[j].modTime) {
			return files[i].path > files[j].path
		}

		return files[i].modTime.After(files[j].modTime)
	})

	paths := make([]m.Path, 0, len(files))
	for _, f := range files {
		paths = append(paths, f.path)
	}

	return paths, nil
}

type exportConfig struct {
	Mode        m.Mode   `json:"mode"`
	CodeModels  []string `json:"code_models"`
	UseLLMJudge bool     `json:"use_llm_judge"`
	JudgeModels []string `json:"judge_models"`
}

type exportResult struct {
	ExampleID          int                       `json:"example_id"`
	CodeModel          string                    `json:"code_model"`
	Difficulty         m.Difficulty              `json:"difficulty"`
	FunctionName       string                    `json:"function_name"`
	ExactMatch         bool                      `json:"exact_match"`
	OverallSuccess     bool                      `json:"overall_success"`
	SyntaxValid        bool                      `json:"syntax_valid"`
	LineOverlap        float64                   `json:"line_overlap"`
	SemanticSimilarity float64                   `json:"semantic_similarity"`
	JudgeScores        map[string]map[string]any `json:"judge_scores"`
}

type exportFile struct {
	Timestamp string         `json:"timestamp"`
	Config    exportConfig   `json:"config"`
	Results   []exportResult `json:"results"`
}

// ExportJSON writes the flat results file consumed by existing tooling.
func (rs *LocalReportStore) ExportJSON(path m.Path, run m.RunReport) error {
	out := exportFile{
		Timestamp: run.Timestamp.Format(time.RFC3339Nano),
		Config: exportConfig{
			Mode:        run.Config.Mode,
			CodeModels:  nonNil(run.Config.CodeModels),
			UseLLMJudge: len(run.Config.JudgeModels) > 0,
			JudgeModels: nonNil(run.Config.JudgeModels),
		},
		Results: make([]exportResult, 0, len(run.Reports)),
	}

	for _, r := range run.Reports {
		out.Results = append(out.Results, exportResult{
			ExampleID:          r.ExampleID,
			CodeModel:          r.CodeModel,
			Difficulty:         r.Difficulty,
			FunctionName:       r.FunctionName,
			ExactMatch:         r.Metrics.ExactMatch,
			OverallSuccess:     r.Verdict.OverallSuccess,
			SyntaxValid:        r.Metrics.SyntaxValid,
			LineOverlap:        r.Metrics.LineOverlap,
			SemanticSimilarity: r.Metrics.SemanticSimilarity,
			JudgeScores:        exportJudges(r.Judges),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	return rs.fs.WriteFile(path, append(data, '\n'), 0o600)
}

func exportJudges(judges map[string]m.JudgeOpinion) map[string]map[string]any {
	out := make(map[string]map[string]any, len(judges))

	for name, op := range judges {
		if op.Failed() {
			out[name] = map[string]any{"error": op.Err}
			continue
		}

		out[name] = map[string]any{
			"is_correct": op.IsCorrect,
			"score":      op.Score,
			"reason":     op.Reason,
			"model_name": name,
		}
	}

	return out
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
