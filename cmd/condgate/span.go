package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/condgate/condgate/internal/output"
	"github.com/condgate/condgate/internal/reltime"
)

var spanJSON bool

var spanCmd = &cobra.Command{
	Use:   "span <unit-value> <reference-date>",
	Short: "Resolve a relative-time window",
	Long: `Parse a unit-value token such as "7days" and resolve it into a pair of
Unix timestamps: the current time advanced by the offset, and the reference
date parsed on its own. Unresolvable sides are reported as zero.`,
	Args: cobra.ExactArgs(2),
	Example: `  condgate span 7days 2024-01-05
  condgate span -j 2weeks "next monday"`,
	RunE: runSpan,
}

func init() {
	spanCmd.Flags().BoolVarP(&spanJSON, "json", "j", false, "Output in JSON format")
}

func runSpan(cmd *cobra.Command, args []string) error {
	w := reltime.Resolve(args[0], args[1])

	report := &output.WindowReport{
		Value:         args[0],
		ReferenceDate: args[1],
		Reference:     w.Reference,
		Compare:       w.Compare,
	}

	format := output.FormatText
	if spanJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(report, format)
	if err != nil {
		return err
	}
	fmt.Println(result)

	return nil
}
