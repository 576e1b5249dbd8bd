package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"olist/internal/report"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs [run-id]",
		Short: "Show pipeline run history",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := report.Open(cfg)
			if err != nil {
				return fmt.Errorf("open report store: %w", err)
			}
			defer store.Close()

			if err := store.CheckHealth(cmd.Context()); err != nil {
				return err
			}

			if len(args) == 1 {
				return showRunDetail(cmd, store, args[0])
			}
			return listRuns(cmd, store, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}

func listRuns(cmd *cobra.Command, store *report.Store, limit int) error {
	runs, err := store.ListRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded runs")
		return nil
	}

	headers := []string{"Run", "Started", "Status", "Master Rows", "Master Cols", "Duration"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		duration := ""
		if run.FinishedAt != nil {
			duration = run.FinishedAt.Sub(run.StartedAt).Round(summaryDurationUnit).String()
		}
		rows = append(rows, []string{
			run.ID,
			run.StartedAt.Local().Format(time.DateTime),
			string(run.Status),
			strconv.Itoa(run.MasterRows),
			strconv.Itoa(run.MasterColumns),
			duration,
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
	return nil
}

func showRunDetail(cmd *cobra.Command, store *report.Store, runID string) error {
	run, err := store.GetRun(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %s not found", runID)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s (%s)\n", run.ID, run.Status)
	if run.ErrorMessage != "" {
		fmt.Fprintf(out, "Error: %s\n", run.ErrorMessage)
	}

	records, err := store.Outcomes(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(out, "No dataset outcomes recorded")
		return nil
	}

	headers := []string{"Dataset", "Rows In", "Rows Out", "Malformed", "Duplicates", "Invalid", "Repaired", "Imputed", "Duration"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			record.Dataset,
			strconv.Itoa(record.RowsIn),
			strconv.Itoa(record.RowsOut),
			strconv.Itoa(record.DroppedMalformed),
			strconv.Itoa(record.DroppedDuplicates),
			strconv.Itoa(record.DroppedInvalid),
			strconv.Itoa(record.RepairedCells),
			strconv.Itoa(record.ImputedCells),
			record.Duration.String(),
		})
	}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	return nil
}
