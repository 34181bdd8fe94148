package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
)

// createTestRootCmd creates fresh root command with the given subcommand.
// Flag variables are package level, so they are reset for every test.
func createTestRootCmd(cmd *cobra.Command) *cobra.Command {
	runConfigFlag = ""
	runStrictFlag = false
	runAtFlag = ""
	hashAtFlag = ""
	verboseFlag = false

	testRootCmd := &cobra.Command{Use: "gostore"}
	testRootCmd.AddCommand(cmd)
	return testRootCmd
}

// captureStdout returns command stdout output as string.
func captureStdout(cmd *cobra.Command) *bytes.Buffer {
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	return &stdout
}

// captureStderr returns command stderr output as string.
func captureStderr(cmd *cobra.Command) *bytes.Buffer {
	var stderr bytes.Buffer
	cmd.SetErr(&stderr)
	return &stderr
}

// provideStdin feeds script to the command's standard input.
func provideStdin(cmd *cobra.Command, script string) {
	cmd.SetIn(bytes.NewBufferString(script))
}

// executeCmd runs the command with args and fails the test on error.
func executeCmd(t *testing.T, cmd *cobra.Command, args ...string) {
	t.Helper()

	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("%v failed: %v", args, err)
	}
}
