package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"saveedit/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limitFlag int

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently opened and exported files",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cmd.Context(), cfg)
			if err != nil {
				if errors.Is(err, history.ErrDisabled) {
					fmt.Fprintln(cmd.OutOrStdout(), "History journal is disabled in configuration.")
					return nil
				}
				return err
			}
			defer store.Close()

			entries, err := store.Recent(cmd.Context(), limitFlag)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No sessions recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, e := range entries {
				exported := ""
				if e.ExportPath != "" {
					exported = e.ExportPath
				}
				rows = append(rows, []string{
					e.Title,
					e.Mode,
					strconv.Itoa(e.BlockCount),
					e.OpenedAt.Local().Format(time.DateTime),
					exported,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Title", "Mode", "Blocks", "Opened", "Exported To"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
			))
			return nil
		},
	}
	historyCmd.Flags().IntVarP(&limitFlag, "limit", "n", 20, "Maximum entries to show")

	historyCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every history entry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			store, err := history.Open(cmd.Context(), cfg)
			if err != nil {
				if errors.Is(err, history.ErrDisabled) {
					fmt.Fprintln(cmd.OutOrStdout(), "History journal is disabled in configuration.")
					return nil
				}
				return err
			}
			defer store.Close()
			if err := store.Clear(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "History cleared.")
			return nil
		},
	})

	return historyCmd
}
