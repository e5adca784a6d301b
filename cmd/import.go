package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/repository"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
)

func newImportCmd(c *cli) *cobra.Command {
	var fromDir, dbPath string
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Copy the per-year JSON files into the SQLite store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if fromDir == "" {
				fromDir = cfg.DataDir
			}
			if dbPath == "" {
				dbPath = cfg.SQLitePath
			}
			ctx := cmd.Context()
			log := logger.Named("import")

			files := repository.NewFileSource(fromDir, repository.WithPattern(cfg.FilePattern))
			db, err := repository.OpenSQLite(ctx, dbPath)
			if err != nil {
				return fmt.Errorf("failed to open sqlite store: %w", err)
			}
			defer func() {
				if cerr := db.Close(); cerr != nil {
					log.Warn(ctx, "failed to close sqlite store", logger.Error(cerr))
				}
			}()

			total := 0
			for _, year := range cfg.Years {
				recs, err := files.Load(ctx, year)
				if err != nil {
					return fmt.Errorf("import %d: %w", year, err)
				}
				if err := db.Save(ctx, year, recs); err != nil {
					return fmt.Errorf("import %d: %w", year, err)
				}
				total += len(recs)
				log.Info(ctx, "edition imported", logger.Int("year", year), logger.Int("records", len(recs)))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d records from %d editions into %s\n", total, len(cfg.Years), dbPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&fromDir, "from", "", "directory of per-year JSON files (default: data_dir)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database (default: sqlite_path)")
	return cmd
}
