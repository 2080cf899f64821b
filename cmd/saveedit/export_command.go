package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var blockFlag int
	var outFlag string

	cmd := &cobra.Command{
		Use:   "export FILE",
		Short: "Re-encode a payload block without edits",
		Long: `Decodes the selected block and immediately re-exports it. The payload is
re-compressed into the canonical framing, so the encoded text may differ
from the original, but the decoded content is unchanged and every byte
outside the block span is reproduced exactly. Useful for normalizing a
file's framing or verifying that a payload survives the round trip.`,
		Args: cobra.ExactArgs(1),
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
				return fmt.Errorf("no decodable payload block in %s", args[0])
			}

			return writeExport(ctx, cmd, sess, args[0], outFlag)
		},
	}

	cmd.Flags().IntVarP(&blockFlag, "block", "b", -1, "Block ordinal to export instead of the auto-selected one")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output path (default: derived, never the input path)")
	return cmd
}
