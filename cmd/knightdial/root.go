package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/knightdial/internal/config"
	"github.com/katalvlaran/knightdial/internal/logger"
)

var rootCmd = newRootCmd()

// newRootCmd builds the root command. Tests call it for isolated instances.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "knightdial",
		Short: "Enumerate the numbers a chess knight can dial on a phone keypad",
		Long: `knightdial walks every chain of knight moves on the 3x4 telephone keypad
starting from one key and prints, for each length, how many distinct numbers
the knight can dial and how long the enumeration took.

Example:
  knightdial
  knightdial --start 4 --max-length 6 --print
  knightdial --workers 4 --json`,
		Version:       "0.1.0",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, _ := cmd.Flags().GetString("config")
			c, err := config.Load(cmd, cfgPath)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if c.Verbose {
				level = slog.LevelDebug
			}
			logger.Init(logger.Options{Enabled: c.Verbose, Writer: cmd.ErrOrStderr(), Level: level})

			return run(cmd.Context(), cmd.OutOrStdout(), c)
		},
	}
	cmd.Flags().String("config", "", "Path to a YAML config file")
	config.RegisterFlags(cmd)

	return cmd
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
