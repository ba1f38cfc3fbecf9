package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/lsd"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of lsd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "lsd version %s\n", strings.TrimSpace(lsd.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
