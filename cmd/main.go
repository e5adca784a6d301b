// Package main provides the CLI entrypoint for the race analytics.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/report"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/repository"
	service "github.com/renatmannanov/ayda-run-v2-sub001/internal/app"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/config"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/domain/identity"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

// cli carries the persistent flags shared by every command.
type cli struct {
	configPath string
	logLevel   string
	logFormat  string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:           "ayda",
		Short:         "Cross-year analytics of the Ayda Run results",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&c.configPath, "config", "", "YAML config file (default: $AYDA_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log_level")
	rootCmd.PersistentFlags().StringVar(&c.logFormat, "log-format", "", "override log_format (text or json)")

	rootCmd.AddCommand(newReportCmd(c))
	rootCmd.AddCommand(newServeCmd(c))
	rootCmd.AddCommand(newImportCmd(c))
	rootCmd.AddCommand(newGenerateCmd(c))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads configuration and initializes logging to the command's
// error stream.
func (c *cli) setup(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadFrom(cmd.Context(), c.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c.logLevel != "" {
		cfg.LogLevel = c.logLevel
	}
	if c.logFormat != "" {
		cfg.LogFormat = c.logFormat
	}

	if err := logger.Init(logger.WithFormat(cfg.LogFormat), logger.WithWriter(cmd.ErrOrStderr())); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		logger.Get().Warn(cmd.Context(), "invalid log_level; falling back to info",
			logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}
	return cfg, nil
}

// openSource opens the configured dataset source. The returned close
// function is never nil.
func openSource(ctx context.Context, cfg *config.Config) (repository.Store, func() error, error) {
	switch cfg.Source {
	case config.SourceSQLite:
		db, err := repository.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite source: %w", err)
		}
		return db, db.Close, nil
	default:
		src := repository.NewFileSource(cfg.DataDir, repository.WithPattern(cfg.FilePattern))
		return src, func() error { return nil }, nil
	}
}

func newAnalyzer(cfg *config.Config, src repository.Store) (*service.Analyzer, error) {
	return service.NewAnalyzer(src,
		service.WithLogger(logger.Named("analyzer")),
		service.WithYears(cfg.Years),
		service.WithClubPolicy(identity.ClubPolicy(cfg.ClubPolicy)),
		service.WithHomeCountry(cfg.HomeCountry),
		service.WithDistanceAliases(cfg.DistanceAliases),
		service.WithTopN(cfg.TopClubs, cfg.TopDistances, cfg.TopCountries, cfg.TopCities),
	)
}

func reportOptions(cfg *config.Config) []report.Option {
	return []report.Option{report.WithTopClubs(min(cfg.TopClubs, maxHighlightClubs))}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}
}
