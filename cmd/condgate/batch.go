package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/condgate/condgate/internal/condition"
	"github.com/condgate/condgate/internal/output"
)

var batchJSON bool

var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Evaluate conditions from a JSON-lines file",
	Long: `Evaluate one condition per line from a JSON-lines file.

Each line is an object: {"kind": ..., "op": ..., "left": ..., "right": ...}
with optional "case_sensitive", "epsilon" and "max_distance" fields. Every
condition is evaluated independently; the exit code is non-zero unless all
of them matched.`,
	Args: cobra.ExactArgs(1),
	Example: `  condgate batch conditions.jsonl
  condgate batch -j conditions.jsonl`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().BoolVarP(&batchJSON, "json", "j", false, "Output in JSON format")
}

func runBatch(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open conditions file: %w", err)
	}
	defer f.Close()

	conds, err := condition.DecodeLines(f)
	if err != nil {
		return fmt.Errorf("decode %s: %w", args[0], err)
	}
	if len(conds) == 0 {
		return fmt.Errorf("no conditions in %s", args[0])
	}

	entries := make([]output.EvalEntry, len(conds))
	for i, c := range conds {
		entries[i] = output.EvalEntry{
			Kind:     string(c.Kind),
			Operator: string(c.Operator),
			Left:     formatOperand(c.Left),
			Right:    formatOperand(c.Right),
			Matched:  c.Evaluate(),
		}
	}

	report := output.NewEvalReport(entries)

	format := output.FormatText
	if batchJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(report, format)
	if err != nil {
		return err
	}
	fmt.Println(result)

	if !report.AllMatched {
		os.Exit(ExitUnmatched)
	}
	return nil
}

// formatOperand renders a decoded JSON operand for display.
func formatOperand(v any) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%v", v)
}
