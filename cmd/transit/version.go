package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/transit"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of transit",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "transit version %s\n", strings.TrimSpace(transit.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
