package main

import (
	"context"
	"fmt"

	"github.com/aretw0/transit"
	"github.com/aretw0/transit/internal/cli"
	"github.com/aretw0/transit/internal/presentation/graph"
	"github.com/spf13/cobra"
)

var traceCmd = &cobra.Command{
	Use:   "trace [sample]",
	Short: "Run a built-in sample machine step by step",
	Long:  `Builds one of the sample machines and prints every transition. Without arguments, lists the samples.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		if len(args) == 0 {
			for _, s := range cli.Samples() {
				fmt.Fprintf(out, "%-14s %s\n", s.Name, s.Description)
			}
			return nil
		}

		sample, err := cli.LookupSample(args[0])
		if err != nil {
			return err
		}

		steps := cfg.Steps
		if cmd.Flags().Changed("steps") {
			steps, _ = cmd.Flags().GetInt("steps")
		}
		noColor := cfg.NoColor
		if cmd.Flags().Changed("no-color") {
			noColor, _ = cmd.Flags().GetBool("no-color")
		}

		logger, err := cli.CreateLogger(cfg.LogLevel)
		if err != nil {
			return err
		}

		hooks := cli.DebugHooks(logger)
		mermaid, _ := cmd.Flags().GetBool("mermaid")
		var rec *graph.Recorder
		if mermaid {
			rec = graph.NewRecorder()
			hooks = hooks.Merge(rec.Hooks())
		}

		m, err := sample.Build(
			transit.WithLogger(logger),
			transit.WithLifecycleHooks(hooks),
		)
		if err != nil {
			return err
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		err = cli.NewTracer(out, !noColor).Trace(ctx, m, steps)
		if rec != nil {
			fmt.Fprintf(out, "\n%s", rec.Mermaid(m.State()))
		}
		if sig := ctx.Signal(); sig != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "interrupted by %s\n", sig)
			return nil
		}
		return err
	},
}

func init() {
	rootCmd.AddCommand(traceCmd)

	traceCmd.Flags().IntP("steps", "n", cfg.Steps, "Number of steps to perform")
	traceCmd.Flags().Bool("no-color", cfg.NoColor, "Disable colored output")
	traceCmd.Flags().Bool("mermaid", false, "Print a Mermaid graph of the observed transitions")
}
