// Package cmd provides the root command and CLI setup for applyeval.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/mouse-blink/applyeval/internal/adapter"
	"github.com/mouse-blink/applyeval/internal/config"
	"github.com/mouse-blink/applyeval/internal/controller"
	"github.com/mouse-blink/applyeval/internal/domain"
	m "github.com/mouse-blink/applyeval/internal/model"
)

// version is stamped at build time with -ldflags "-X ...cmd.version=...".
var version = "dev"

const defaultReportsDir = ".applyeval-reports"

var cfg config.Config
var logger = zap.NewNop()
var tracer adapter.Tracer = adapter.NoopTracer{}
var ui controller.UI
var workflow domain.Workflow

var verboseFlag bool
var reportsDirFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "applyeval",
		Short: "Evaluate how reliably model-written functions apply to Python files",
		Long: `applyeval measures the apply step of an AI code editor: a candidate function
produced by a model is spliced into the original file by indentation, and the
result is scored against a reference target file.

Scores combine exact match, line overlap, syntax validity, function presence
and syntax-tree similarity into one pass/fail verdict per example.`,
		SilenceUsage:  true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			logger = newLogger(verboseFlag)
			cfg = config.Load()

			if workflow != nil {
				return nil
			}

			var err error

			workflow, tracer, err = wire(cmd.Context(), cmd, cfg, logger)

			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			defer func() { _ = logger.Sync() }()

			if err := tracer.Shutdown(context.WithoutCancel(cmd.Context())); err != nil {
				logger.Warn("flush traces", zap.Error(err))
			}

			return nil
		},
	}
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every evaluated example and debug details")
	cmd.PersistentFlags().StringVarP(&reportsDirFlag, "reports", "r", defaultReportsDir, "directory for saved run reports")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func newLogger(verbose bool) *zap.Logger {
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)

	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	log, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return log
}

// wire builds the workflow and its collaborators from configuration. Provider
// clients are only created for the keys that are present.
func wire(ctx context.Context, cmd *cobra.Command, cfg config.Config, log *zap.Logger) (domain.Workflow, adapter.Tracer, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	limiter := adapter.NewLimiter(cfg.LLM.RPS)

	var openRouter, gemini adapter.ChatClient

	if cfg.OpenRouterAPIKey != "" {
		openRouter = adapter.NewOpenRouterClient(cfg.OpenRouterAPIKey, cfg.OpenRouterBaseURL, limiter, log)
	}

	if cfg.GeminiAPIKey != "" {
		client, err := adapter.NewGeminiClient(ctx, cfg.GeminiAPIKey, limiter, log)
		if err != nil {
			return nil, nil, err
		}

		gemini = client
	}

	router := adapter.NewRouter(openRouter, gemini, cfg.LLM.Timeout)

	tr, err := adapter.NewTracer(ctx, adapter.TracerConfig{
		Exporter:          cfg.Tracing.Exporter,
		OTLPEndpoint:      cfg.Tracing.OTLPEndpoint,
		OTLPInsecure:      cfg.Tracing.OTLPInsecure,
		LangfuseBaseURL:   cfg.Tracing.LangfuseBaseURL,
		LangfusePublicKey: cfg.Tracing.LangfusePublicKey,
		LangfuseSecretKey: cfg.Tracing.LangfuseSecretKey,
		ServiceVersion:    version,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("tracing: %w", err)
	}

	fs := adapter.NewLocalSourceFSAdapter()
	structure := domain.NewStructure(adapter.NewLocalPythonFileAdapter())

	judge := adapter.NewJudge(router, adapter.Sampling{
		Temperature:      cfg.LLM.Temperature,
		MaxTokens:        cfg.LLM.MaxTokens,
		TopP:             cfg.LLM.TopP,
		FrequencyPenalty: cfg.LLM.FrequencyPenalty,
		PresencePenalty:  cfg.LLM.PresencePenalty,
	})

	if ui == nil {
		ui = controller.NewUI(cmd, controller.IsTTY(os.Stdout))
	}

	wf := domain.NewWorkflow(domain.Dependencies{
		Datasets:     adapter.NewLocalDatasetStore(fs),
		Reports:      adapter.NewReportStore(fs),
		FS:           fs,
		Structure:    structure,
		Orchestrator: domain.NewOrchestrator(adapter.NewCodeModel(router), judge, tr, structure, log),
		UI:           ui,
		Log:          log,
	})

	return wf, tr, nil
}

func reportsDir() m.Path {
	if reportsDirFlag == "" {
		return defaultReportsDir
	}

	return m.Path(reportsDirFlag)
}
