// Package cmd wires the command line surface. The bare command starts the
// interactive console; subcommands expose the same catalog operations for
// scripting.
package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/docdeck/docdeck/internal/api"
	"github.com/docdeck/docdeck/internal/config"
	"github.com/docdeck/docdeck/internal/format"
	"github.com/docdeck/docdeck/internal/logging"
	"github.com/docdeck/docdeck/internal/storage"
	"github.com/docdeck/docdeck/internal/tui"
)

var (
	cfg *config.Config

	flagAPI     string
	flagFormat  string
	flagTimeout int
)

var rootCmd = &cobra.Command{
	Use:   "docdeck",
	Short: "Terminal console for a document intelligence catalog",
	Long: `docdeck browses, searches and curates a remote document catalog.

Run without arguments for the interactive console. Subcommands expose the
same operations for scripting; see 'docdeck stub' for a local development
server.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if flagAPI != "" {
			cfg.APIBaseURL = flagAPI
		}
		if flagTimeout > 0 {
			cfg.TimeoutSeconds = flagTimeout
		}
		if flagFormat != string(format.FormatText) && flagFormat != string(format.FormatJSON) {
			return fmt.Errorf("unknown output format %q (want text or json)", flagFormat)
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPI, "api", "", "remote store base URL (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&flagFormat, "format", "f", "text", "output format: text or json")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "remote call timeout in seconds (overrides config)")
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newClient() *api.Client {
	return api.NewClient(cfg.APIBaseURL, cfg.Timeout())
}

func outputFormat() format.Format {
	return format.Format(flagFormat)
}

// openHistory opens the local history database. Best effort: the console
// works without history, so failures only cost the convenience.
func openHistory(logger *zap.Logger) *storage.DB {
	path, err := cfg.GetHistoryPath()
	if err != nil {
		logger.Warn("history path unavailable", zap.Error(err))
		return nil
	}
	db, err := storage.New(path)
	if err != nil {
		logger.Warn("history database unavailable", zap.Error(err))
		return nil
	}
	return db
}

func newLogger() *zap.Logger {
	path, err := cfg.GetLogPath()
	if err != nil {
		return logging.Nop()
	}
	logger, err := logging.New(path, cfg.LogLevel)
	if err != nil {
		return logging.Nop()
	}
	return logger
}

func runTUI(ctx context.Context) error {
	logger := newLogger()
	defer logger.Sync()

	history := openHistory(logger)
	if history != nil {
		defer history.Close()
	}

	model := tui.NewModel(ctx, newClient(), history, logger, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
