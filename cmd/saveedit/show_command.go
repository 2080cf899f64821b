package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"saveedit/internal/session"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var blockFlag int

	cmd := &cobra.Command{
		Use:   "show FILE",
		Short: "Decode a payload block and list its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, result, err := ctx.openSession(args[0])
			if err != nil {
				return err
			}
			if blockFlag >= 0 {
				if err := sess.SelectBlock(blockFlag); err != nil {
					return err
				}
			} else if result.SelectedOrdinal < 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No decodable payload block in this file.")
				return nil
			}

			out := cmd.OutOrStdout()
			switch sess.ActiveMode() {
			case session.ModeWaves:
				printWaves(out, sess)
			default:
				printDeclarations(out, sess)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&blockFlag, "block", "b", -1, "Block ordinal to decode instead of the auto-selected one")
	return cmd
}

func printDeclarations(out io.Writer, sess *session.Session) {
	records := sess.Declarations()
	rows := make([][]string, 0, len(records))
	for _, d := range records {
		rows = append(rows, []string{
			strconv.Itoa(d.Ordinal),
			d.Name,
			truncate(d.Value, 40),
			string(d.ValueType),
			d.Category,
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"#", "Name", "Value", "Type", "Category"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
	))
	fmt.Fprintf(out, "%d declaration(s) in block %d.\n", len(records), sess.Selected().Ordinal)
}

func printWaves(out io.Writer, sess *session.Session) {
	rows := make([][]string, 0, 64)
	events := 0
	for _, w := range sess.Waves() {
		rows = append(rows, []string{
			strconv.Itoa(w.Ordinal),
			"",
			"header",
			truncate(w.HeaderLine, 52),
		})
		for _, e := range w.Events {
			events++
			rows = append(rows, []string{
				strconv.Itoa(w.Ordinal),
				strconv.Itoa(e.Ordinal),
				string(e.Kind),
				truncate(e.Content, 52),
			})
		}
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Wave", "Event", "Kind", "Content"},
		rows,
		[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft},
	))
	fmt.Fprintf(out, "%d wave(s), %d event(s) in block %d.\n", len(sess.Waves()), events, sess.Selected().Ordinal)
}
