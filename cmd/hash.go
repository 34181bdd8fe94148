package cmd

import (
	"fmt"
	"time"

	"github.com/KostasZigo/gostore/utils"
	"github.com/spf13/cobra"
)

var hashCmd = &cobra.Command{
	Use:   "hash <message>",
	Short: "Compute the commit hash for a message at a given time",
	Long: `Compute the commit hash (SHA-1 hash) a commit with the given message would get.
The hash covers the commit timestamp at minute resolution and the message, not the objects.

Examples:
  # Hash for a commit made now
  gostore hash "Initial commit"

  # Hash for a commit made at a fixed time
  gostore hash --at 2026-10-18T14:05:00Z "Initial commit"`,
	SilenceUsage: true,
	Args:         exactArgs(1),
	RunE:         runHash,
}

var hashAtFlag string

func init() {
	rootCmd.AddCommand(hashCmd)

	hashCmd.Flags().StringVar(&hashAtFlag, "at", "", "Commit time in RFC3339 format (default: now)")
}

// exactArgs validates command receives exactly n positional arguments.
// enables usage printing in case of error
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command requires exactly %d argument(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// runHash prints the commit hash for the message argument.
func runHash(cmd *cobra.Command, args []string) error {
	timestamp := time.Now()
	if hashAtFlag != "" {
		parsed, err := parseTimestamp(hashAtFlag)
		if err != nil {
			return err
		}
		timestamp = parsed
	}

	fmt.Fprintln(cmd.OutOrStdout(), utils.ComputeCommitHash(timestamp, args[0]))
	return nil
}

// parseTimestamp parses an RFC3339 --at flag value.
func parseTimestamp(value string) (time.Time, error) {
	timestamp, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at value %q: %w", value, err)
	}
	return timestamp, nil
}
