package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

//go:embed guide.md
var guideText string

func newGuideCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "guide [FILE]",
		Short:       "Print the editing guide, or an external help document",
		Long:        "Prints the built-in guide verbatim, or the given markdown/plain-text help file. The help document is independent of the codec pipeline.",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		Args:        cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read help document: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), guideText)
			return nil
		},
	}
}
