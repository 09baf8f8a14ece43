package main

import (
	"fmt"
	"os"

	"github.com/aretw0/transit/internal/cli"
	"github.com/spf13/cobra"
)

var cfg cli.Config

var rootCmd = &cobra.Command{
	Use:   "transit",
	Short: "Transit drives plain values as state machines",
	Long: `Transit validates declaration files and traces sample machines.
Settings are read from TRANSIT_* environment variables and overridden by flags.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel, _ = cmd.Flags().GetString("log-level")
		}
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	var err error
	cfg, err = cli.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	rootCmd.PersistentFlags().String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
}
