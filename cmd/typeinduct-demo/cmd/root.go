// Package cmd is a small cobra CLI that exercises the four derivations
// (mutability, cycles, copy, equals) against a handful of worked example
// types, making the scenarios spec.md §8 describes runnable.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pablor21/typeinduct"
)

var (
	configPath string
	engine     *typeinduct.Engine
)

var rootCmd = &cobra.Command{
	Use:   "typeinduct-demo",
	Short: "Exercise mutability, cycles, copy, and equals against worked example types",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		opts := typeinduct.NewDefaultOptions()
		if configPath != "" {
			loaded, err := typeinduct.LoadOptions(configPath)
			if err != nil {
				fmt.Fprintf(os.Stderr, "loading config %s: %v\n", configPath, err)
				os.Exit(1)
			}
			opts = loaded
		}
		engine = typeinduct.NewEngine(opts)
		slog.SetDefault(slog.Default().With("run", uuid.NewString()[:8]))
	},
}

// Execute runs the demo CLI, exiting the process on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML Options file")
	rootCmd.AddCommand(mutabilityCmd, cyclesCmd, copyCmd, equalsCmd, statsCmd)
}
