package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"olist/internal/pipeline"
	"olist/internal/quality"
)

func newAssessCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "assess",
		Short: "Profile the raw datasets without cleaning them",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			profiles, err := pipeline.AssessInputs(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderProfileTable(profiles))
			for _, profile := range profiles {
				if len(profile.MissingByCol) == 0 {
					continue
				}
				fmt.Fprintf(out, "\nMissing values in %s:\n", profile.Dataset)
				fmt.Fprintln(out, renderMissingTable(profile))
			}
			return nil
		},
	}
}

func renderProfileTable(profiles []quality.Profile) string {
	headers := []string{"Dataset", "Rows", "Columns", "Duplicate Rows", "Columns With Missing"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight}
	rows := make([][]string, 0, len(profiles))
	for _, profile := range profiles {
		rows = append(rows, []string{
			profile.Dataset,
			strconv.Itoa(profile.Rows),
			strconv.Itoa(profile.Columns),
			strconv.Itoa(profile.DuplicateRows),
			strconv.Itoa(len(profile.MissingByCol)),
		})
	}
	return renderTable(headers, rows, aligns)
}

func renderMissingTable(profile quality.Profile) string {
	headers := []string{"Column", "Missing", "Missing %"}
	aligns := []columnAlignment{alignLeft, alignRight, alignRight}
	rows := make([][]string, 0, len(profile.MissingByCol))
	for _, col := range profile.MissingByCol {
		rows = append(rows, []string{
			col.Name,
			strconv.Itoa(col.Missing),
			formatPct(col.MissingPct),
		})
	}
	return renderTable(headers, rows, aligns)
}
