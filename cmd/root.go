package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verboseFlag bool

// rootCmd defines the base command for the gostore CLI.
// All subcommands (run, hash) register under this root.
// Uses cobra for command parsing, flag handling, and help generation.
var rootCmd = &cobra.Command{
	Use:   "gostore",
	Short: "An in-memory versioned object store",
	Long: `GoStore is an in-memory versioned object store developed in GO. It stages objects,
	commits them into hash-identified snapshots and keeps independently diverging branches.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		configureLogging(cmd, verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log store operations to stderr")
}

// configureLogging installs a text slog handler on the command's stderr.
// Debug records are only emitted in verbose mode.
func configureLogging(cmd *cobra.Command, verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// Execute runs the root command and handles exit codes.
// Called from main.go to start CLI execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
