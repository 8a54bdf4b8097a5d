package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Exit codes. ExitUnmatched is returned by eval and batch when the verdict
// set is not fully satisfied; ExitInputError covers usage and parse errors.
const (
	ExitSuccess    = 0
	ExitUnmatched  = 1
	ExitInputError = 2
)

var rootCmd = &cobra.Command{
	Use:   "condgate",
	Short: "Evaluate typed conditions against metadata values",
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(spanCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitInputError)
	}
}
