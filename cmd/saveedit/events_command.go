package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var blockFlag int
	var outFlag string
	var headerEdits []string

	cmd := &cobra.Command{
		Use:   "events FILE WAVE.EVENT=CONTENT...",
		Short: "Edit wave event lines and export the result",
		Long: `Rewrites event lines addressed by wave and event ordinal (both zero
based), optionally rewrites wave headers with --header WAVE=LINE, and
writes the re-encoded host file next to the original.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 && len(headerEdits) == 0 {
				return fmt.Errorf("nothing to edit: pass WAVE.EVENT=CONTENT arguments or --header edits")
			}

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

			for _, edit := range args[1:] {
				addr, content, ok := strings.Cut(edit, "=")
				if !ok {
					return fmt.Errorf("malformed edit %q (want WAVE.EVENT=CONTENT)", edit)
				}
				waveOrd, eventOrd, err := parseEventAddr(addr)
				if err != nil {
					return err
				}
				if err := sess.SetEventContent(waveOrd, eventOrd, content); err != nil {
					return err
				}
			}

			for _, edit := range headerEdits {
				addr, header, ok := strings.Cut(edit, "=")
				if !ok {
					return fmt.Errorf("malformed header edit %q (want WAVE=LINE)", edit)
				}
				waveOrd, err := strconv.Atoi(strings.TrimSpace(addr))
				if err != nil {
					return fmt.Errorf("malformed wave ordinal %q: %w", addr, err)
				}
				if err := sess.SetWaveHeader(waveOrd, header); err != nil {
					return err
				}
			}

			return writeExport(ctx, cmd, sess, args[0], outFlag)
		},
	}

	cmd.Flags().IntVarP(&blockFlag, "block", "b", -1, "Block ordinal to edit instead of the auto-selected one")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output path (default: derived, never the input path)")
	cmd.Flags().StringArrayVar(&headerEdits, "header", nil, "Wave header edit as WAVE=LINE")
	return cmd
}

func parseEventAddr(addr string) (int, int, error) {
	wavePart, eventPart, ok := strings.Cut(strings.TrimSpace(addr), ".")
	if !ok {
		return 0, 0, fmt.Errorf("malformed event address %q (want WAVE.EVENT)", addr)
	}
	waveOrd, err := strconv.Atoi(wavePart)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed wave ordinal %q: %w", wavePart, err)
	}
	eventOrd, err := strconv.Atoi(eventPart)
	if err != nil {
		return 0, 0, fmt.Errorf("malformed event ordinal %q: %w", eventPart, err)
	}
	return waveOrd, eventOrd, nil
}
