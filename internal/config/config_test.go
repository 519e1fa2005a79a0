package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "GEMINI_API_KEY", "CODE_MODEL_DEFAULT", "JUDGE_MODELS_STR",
	"LLM_TEMPERATURE", "LLM_MAX_TOKENS", "LLM_TOP_P", "LLM_FREQUENCY_PENALTY", "LLM_PRESENCE_PENALTY",
	"LLM_RPS", "LLM_TIMEOUT", "OTEL_TRACES_EXPORTER", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_INSECURE",
	"LANGFUSE_PUBLIC_KEY", "LANGFUSE_SECRET_KEY", "LANGFUSE_BASE_URL",
}

// clearEnv blanks every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func missingFile(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Load(missingFile(t))

	assert.Equal(t, DefaultOpenRouterBaseURL, cfg.OpenRouterBaseURL)
	assert.Equal(t, DefaultCodeModel, cfg.CodeModelDefault)
	assert.Equal(t, []string{"google/gemini-2.0-flash-001"}, cfg.JudgeModels)
	assert.Equal(t, LLMConfig{MaxTokens: DefaultMaxTokens, TopP: DefaultTopP, Timeout: DefaultTimeout}, cfg.LLM)
	assert.Equal(t, DefaultLangfuseBaseURL, cfg.Tracing.LangfuseBaseURL)
	assert.Empty(t, cfg.Tracing.Exporter)
	assert.Empty(t, cfg.OpenRouterAPIKey)
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)

	t.Setenv("OPENROUTER_API_KEY", "sk-or")
	t.Setenv("JUDGE_MODELS_STR", " a/one , ,b/two ")
	t.Setenv("LLM_TEMPERATURE", "0.3")
	t.Setenv("LLM_MAX_TOKENS", "512")
	t.Setenv("LLM_RPS", "2.5")
	t.Setenv("LLM_TIMEOUT", "90")
	t.Setenv("OTEL_TRACES_EXPORTER", "otlp")
	t.Setenv("OTEL_EXPORTER_OTLP_INSECURE", "true")

	cfg := Load(missingFile(t))

	assert.Equal(t, "sk-or", cfg.OpenRouterAPIKey)
	assert.Equal(t, []string{"a/one", "b/two"}, cfg.JudgeModels)
	assert.InDelta(t, 0.3, cfg.LLM.Temperature, 1e-6)
	assert.Equal(t, 512, cfg.LLM.MaxTokens)
	assert.InDelta(t, 2.5, cfg.LLM.RPS, 1e-9)
	assert.Equal(t, 90*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "otlp", cfg.Tracing.Exporter)
	assert.True(t, cfg.Tracing.OTLPInsecure)
}

func TestLoad_UnparseableNumbersFallBack(t *testing.T) {
	clearEnv(t)

	t.Setenv("LLM_MAX_TOKENS", "lots")
	t.Setenv("LLM_TOP_P", "high")
	t.Setenv("LLM_TIMEOUT", "soon")

	cfg := Load(missingFile(t))

	assert.Equal(t, DefaultMaxTokens, cfg.LLM.MaxTokens)
	assert.InDelta(t, DefaultTopP, cfg.LLM.TopP, 1e-9)
	assert.Equal(t, DefaultTimeout, cfg.LLM.Timeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.Unsetenv("GEMINI_API_KEY"))
	require.NoError(t, os.Unsetenv("LLM_TIMEOUT"))

	t.Setenv("CODE_MODEL_DEFAULT", "from/env")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GEMINI_API_KEY=gem-key\nLLM_TIMEOUT=2m\nCODE_MODEL_DEFAULT=from/file\n"), 0o600))

	cfg := Load(path)

	assert.Equal(t, "gem-key", cfg.GeminiAPIKey)
	assert.Equal(t, 2*time.Minute, cfg.LLM.Timeout)
	assert.Equal(t, "from/env", cfg.CodeModelDefault, "environment wins over the file")
}

func TestSplitList(t *testing.T) {
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , "))
	assert.Equal(t, []string{"x", "y"}, SplitList("x,y"))
}
