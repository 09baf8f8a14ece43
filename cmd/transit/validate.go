package main

import (
	"fmt"

	"github.com/aretw0/transit/internal/cli"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check a declaration file",
	Long: `Parses a declaration file and reports missing transitions or state field.
Prints the normalized transition table and warns about names declared twice.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cli.Validate(args[0], cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Declaration is valid!")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
