package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "scan FILE",
		Short: "List the payload blocks embedded in a host file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, result, err := ctx.openSession(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rows := make([][]string, 0, len(result.Blocks))
			for _, b := range sess.Blocks() {
				errText := ""
				if b.Err != nil {
					errText = truncate(b.Err.Error(), 48)
				}
				rows = append(rows, []string{
					strconv.Itoa(b.Ordinal),
					string(b.Quote),
					fmt.Sprintf("%d-%d", b.SpanStart, b.SpanEnd),
					strconv.Itoa(len(b.CleanedEncoded)),
					strconv.Itoa(len(b.MaskPositions)),
					yesNo(b.Decodable()),
					yesNo(b.Classified),
					errText,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Quote", "Span", "Encoded", "Masks", "Decodable", "Classified", "Error"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignLeft, alignLeft},
			))

			if result.SelectedOrdinal < 0 {
				fmt.Fprintln(out, "No decodable payload block; nothing auto-selected.")
				return nil
			}
			fmt.Fprintf(out, "Auto-selected block %d (%s mode).\n", result.SelectedOrdinal, result.Mode)
			return nil
		},
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
