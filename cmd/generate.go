package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/repository"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/config"
	"github.com/renatmannanov/ayda-run-v2-sub001/internal/samplegen"
)

func newGenerateCmd(c *cli) *cobra.Command {
	gen := samplegen.DefaultConfig()
	var outDir string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write synthetic result sets for the configured editions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			gen.Years = cfg.Years
			ctx := cmd.Context()

			var store repository.Store
			switch cfg.Source {
			case config.SourceSQLite:
				db, err := repository.OpenSQLite(ctx, cfg.SQLitePath)
				if err != nil {
					return fmt.Errorf("failed to open sqlite store: %w", err)
				}
				defer func() { _ = db.Close() }()
				store = db
			default:
				if outDir == "" {
					outDir = cfg.DataDir
				}
				store = repository.NewFileSource(outDir, repository.WithPattern(cfg.FilePattern))
			}

			stats, err := samplegen.Run(ctx, gen, store)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d records (%d finishers, %d DNF) in %d editions\n",
				stats.Records, stats.Finishers, stats.DNF, stats.Editions)
			return nil
		},
	}
	cmd.Flags().IntVar(&gen.Participants, "participants", gen.Participants, "size of the runner pool")
	cmd.Flags().Uint64Var(&gen.Seed, "seed", gen.Seed, "pseudo-random seed")
	cmd.Flags().Float64Var(&gen.Turnout, "turnout", gen.Turnout, "first-edition turnout (0-1)")
	cmd.Flags().Float64Var(&gen.TurnoutGrow, "turnout-grow", gen.TurnoutGrow, "turnout added per edition")
	cmd.Flags().Float64Var(&gen.DNFRate, "dnf-rate", gen.DNFRate, "share of registrants who do not finish (0-1)")
	cmd.Flags().StringVar(&outDir, "out", "", "directory for the JSON files (default: data_dir)")
	return cmd
}
