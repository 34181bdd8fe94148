package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/KostasZigo/gostore/internal/clock"
	"github.com/KostasZigo/gostore/internal/objects"
	"github.com/KostasZigo/gostore/internal/repository"
	"github.com/KostasZigo/gostore/internal/script"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Run a script of store commands against a fresh store",
	Long: `The 'run' command creates an empty in-memory store, optionally seeds it from a YAML
config, and executes the script line by line, printing one result per command.
The script is read from standard input when no file is given.

Commands:
  add <name> <value>     stage an object (value is decoded as YAML)
  remove <name>          stage the removal of a committed object
  commit <message>       commit staged changes
  checkout <hash>        rewind the current branch to a commit
  get <name>             show a committed object
  log | head | status    inspect history and staging
  reset                  drop staged changes
  branch create|checkout|remove <name>
  branch list`,
	SilenceUsage: true,
	Args:         maximumArgs(1),
	RunE:         runRun,
}

var (
	runConfigFlag string
	runStrictFlag bool
	runAtFlag     string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&runConfigFlag, "config", "c", "", "YAML file describing the initial store")
	runCmd.Flags().BoolVar(&runStrictFlag, "strict", false, "Stop at the first command that does not succeed")
	runCmd.Flags().StringVar(&runAtFlag, "at", "", "Pin the commit clock to an RFC3339 time")
}

// maximumArgs validates command receives at most n positional arguments.
// Returns error with usage help if argument limit exceeded.
func maximumArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > n {
			cmd.SilenceUsage = false
			return fmt.Errorf("%s command accepts at most %d arg(s), received %d", cmd.Name(), n, len(args))
		}
		return nil
	}
}

// runRun builds the store and executes the script against it.
func runRun(cmd *cobra.Command, args []string) error {
	store, err := buildStore()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) > 0 {
		file, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open script: %w", err)
		}
		defer file.Close()
		in = file
	}

	return executeScript(cmd, store, in)
}

// buildStore creates the store from the --config and --at flags.
func buildStore() (*objects.ObjectStore, error) {
	var opts []objects.Option
	if runAtFlag != "" {
		timestamp, err := parseTimestamp(runAtFlag)
		if err != nil {
			return nil, err
		}
		opts = append(opts, objects.WithClock(clock.Fake(timestamp)))
	}

	var cfg repository.Config
	if runConfigFlag != "" {
		loaded, err := repository.LoadConfig(runConfigFlag)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	store, err := repository.Init(cfg, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store - %w", err)
	}
	return store, nil
}

func executeScript(cmd *cobra.Command, store *objects.ObjectStore, in io.Reader) error {
	runner := script.NewRunner(store, runStrictFlag)

	if _, err := runner.Run(cmd.Context(), in, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("script failed: %w", err)
	}
	return nil
}
