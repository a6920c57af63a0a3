package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jfheinrich-eu/vscode-template/internal/logger"
)

// debug toggles verbose logging for every subcommand via --debug.
var debug bool

// rootCmd is the base command for the CLI tool `repo-setup`.
var rootCmd = &cobra.Command{
	Use:   "repo-setup",
	Short: "Bootstrap a repository and the shell tooling it expects",

	// Errors are reported through the logger, not cobra's own echo, and
	// a failed run ends with the summary rather than a usage dump.
	SilenceUsage:  true,
	SilenceErrors: true,

	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(debug)
	},
}

// Execute registers global flags and runs the CLI. A returned error is
// a fatal condition; per-step failures reach the exit code only through
// --strict.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}
