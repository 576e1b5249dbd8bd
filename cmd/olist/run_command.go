package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"olist/internal/pipeline"
	"olist/internal/report"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var noReport bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Clean every dataset and build the master dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			var store *report.Store
			if !noReport {
				store, err = report.Open(cfg)
				if err != nil {
					return fmt.Errorf("open report store: %w", err)
				}
				defer store.Close()
			}

			manager := pipeline.NewManager(cfg, store, logger)
			summary, err := manager.Run(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummaryTable(summary))
			fmt.Fprintf(out, "Master dataset: %d rows, %d columns (%s)\n",
				summary.MasterRows, summary.MasterColumns, cfg.MasterPath())
			fmt.Fprintf(out, "Run %s completed in %s\n", summary.RunID, summary.Duration.Round(summaryDurationUnit))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noReport, "no-report", false, "Skip recording the run in the report database")
	return cmd
}

func renderSummaryTable(summary *pipeline.Summary) string {
	headers := []string{"Dataset", "Rows In", "Rows Out", "Duplicates", "Invalid", "Repaired", "Imputed"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(summary.Outcomes))
	for _, outcome := range summary.Outcomes {
		rows = append(rows, []string{
			outcome.Dataset,
			strconv.Itoa(outcome.RowsIn),
			strconv.Itoa(outcome.RowsOut),
			strconv.Itoa(outcome.DroppedDuplicates),
			strconv.Itoa(outcome.DroppedInvalid),
			strconv.Itoa(outcome.RepairedCells),
			strconv.Itoa(outcome.ImputedCells),
		})
	}
	return renderTable(headers, rows, aligns)
}
