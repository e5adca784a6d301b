package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/renatmannanov/ayda-run-v2-sub001/internal/adapters/report"
	"github.com/renatmannanov/ayda-run-v2-sub001/pkg/logger"
)

// maxHighlightClubs bounds the clubs slide of the highlights.
const maxHighlightClubs = 5

func newReportCmd(c *cli) *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the analytics once and write the artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.setup(cmd)
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.OutputDir
			}
			ctx := cmd.Context()

			src, closeSrc, err := openSource(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				if cerr := closeSrc(); cerr != nil {
					logger.Get().Warn(ctx, "failed to close source", logger.Error(cerr))
				}
			}()

			a, err := newAnalyzer(cfg, src)
			if err != nil {
				return err
			}
			res, err := a.Run(ctx)
			if err != nil {
				return fmt.Errorf("analytics run failed: %w", err)
			}

			paths, err := report.WriteAll(outDir, res, reportOptions(cfg)...)
			if err != nil {
				return fmt.Errorf("failed to write report: %w", err)
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default: output_dir)")
	return cmd
}
