package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/lsd"
	"github.com/aretw0/lsd/internal/platform"
)

var pathDate string

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the path of a journal file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := platform.ParseDate(pathDate, time.Now())
		if err != nil {
			return err
		}
		root, err := graphRoot()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), lsd.ResolveJournalPath(root, &date))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathCmd)
	pathCmd.Flags().StringVarP(&pathDate, "date", "d", "", "Journal date (default today)")
}
