package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/lsd"
	"github.com/aretw0/lsd/pkg/core"
)

var spacesCmd = &cobra.Command{
	Use:   "spaces [FILE]",
	Short: "Collapse repeated spaces on list lines",
	Long: `Collapse runs of spaces on every line starting with "-".
With FILE the file is rewritten in place, otherwise stdin is written to stdout.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			_, err = io.WriteString(cmd.OutOrStdout(), lsd.CollapseListSpacing(string(data)))
			return err
		}

		svc, err := newService("")
		if err != nil {
			return err
		}
		changed, err := svc.CollapsePageSpacing(cmd.Context(), core.NewPage(args[0]))
		if err != nil {
			return err
		}
		if changed {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", pathStyle.Render(args[0]), successStyle.Render("double spaces removed"))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(spacesCmd)
}
