package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sliverarmory/atshim"
	"github.com/sliverarmory/atshim/internal/slogext"
	"github.com/sliverarmory/atshim/internal/version"
)

type rootOptions struct {
	logging string
	json    bool
	lines   bool
}

func newRootCmd() *cobra.Command {
	var opts rootOptions

	rootCmd := &cobra.Command{
		Use:          "atshim",
		Short:        "Locate and probe the CoreAudioToolbox library",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var level slog.LevelVar
			if err := level.UnmarshalText([]byte(opts.logging)); err != nil {
				return fmt.Errorf("invalid --log value %q: %w", opts.logging, err)
			}
			log := slog.New(slogext.New(cmd.ErrOrStderr(), slogext.HandlerOptions{
				Level:     &level,
				AddSource: opts.lines,
				JSON:      opts.json,
			}))
			atshim.SetLogger(log)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.logging, "log", "warn", "logging level (debug, info, warn or error)")
	rootCmd.PersistentFlags().BoolVar(&opts.json, "json", false, "write logs as JSON")
	rootCmd.PersistentFlags().BoolVar(&opts.lines, "lines", false, "display source line details in logs")

	rootCmd.AddCommand(newPathsCmd(), newProbeCmd(), &cobra.Command{
		Use:   "version",
		Short: "Print the build version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return version.Print(cmd.OutOrStdout())
		},
	})
	return rootCmd
}
