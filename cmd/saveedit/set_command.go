package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newSetCommand(ctx *commandContext) *cobra.Command {
	var blockFlag int
	var outFlag string
	var pathEdits []string

	cmd := &cobra.Command{
		Use:   "set FILE NAME=VALUE...",
		Short: "Edit declaration values and export the result",
		Long: `Edits one or more declaration records by name and writes the re-encoded
host file next to the original. Structured values (arrays, objects) can be
edited in place with --path NAME.JSONPATH=VALUE.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) < 2 && len(pathEdits) == 0 {
				return fmt.Errorf("nothing to edit: pass NAME=VALUE arguments or --path edits")
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
				name, value, ok := strings.Cut(edit, "=")
				if !ok {
					return fmt.Errorf("malformed edit %q (want NAME=VALUE)", edit)
				}
				d, err := sess.DeclarationByName(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				if err := sess.SetDeclarationValue(d.Ordinal, value); err != nil {
					return err
				}
			}

			for _, edit := range pathEdits {
				addr, value, ok := strings.Cut(edit, "=")
				if !ok {
					return fmt.Errorf("malformed path edit %q (want NAME.PATH=VALUE)", edit)
				}
				name, path, ok := strings.Cut(addr, ".")
				if !ok {
					return fmt.Errorf("malformed path %q (want NAME.PATH)", addr)
				}
				d, err := sess.DeclarationByName(strings.TrimSpace(name))
				if err != nil {
					return err
				}
				if err := sess.SetDeclarationPath(d.Ordinal, path, value); err != nil {
					return err
				}
			}

			return writeExport(ctx, cmd, sess, args[0], outFlag)
		},
	}

	cmd.Flags().IntVarP(&blockFlag, "block", "b", -1, "Block ordinal to edit instead of the auto-selected one")
	cmd.Flags().StringVarP(&outFlag, "out", "o", "", "Output path (default: derived, never the input path)")
	cmd.Flags().StringArrayVar(&pathEdits, "path", nil, "Structured value edit as NAME.JSONPATH=VALUE")
	return cmd
}

// writeExport runs the session export, enforces the never-overwrite policy,
// writes the file, and journals the export path.
func writeExport(ctx *commandContext, cmd *cobra.Command, sess sessionExporter, inputPath, outFlag string) error {
	newHost, err := sess.Export()
	if err != nil {
		return err
	}

	target := strings.TrimSpace(outFlag)
	if target == "" {
		target = sess.ExportName(inputPath)
	}
	if samePath(target, inputPath) {
		return fmt.Errorf("refusing to overwrite input file %s; exports always use a new name", inputPath)
	}

	if err := os.WriteFile(target, []byte(newHost), 0o644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	ctx.journalExport(sess.ID(), target)
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", target)
	return nil
}

// sessionExporter is the slice of session behavior export writing needs.
type sessionExporter interface {
	Export() (string, error)
	ExportName(inputPath string) string
	ID() string
}

func samePath(a, b string) bool {
	ai, err1 := os.Stat(a)
	bi, err2 := os.Stat(b)
	if err1 == nil && err2 == nil {
		return os.SameFile(ai, bi)
	}
	return a == b
}
