package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/condgate/condgate/internal/compare"
	"github.com/condgate/condgate/internal/condition"
	"github.com/condgate/condgate/internal/output"
)

var (
	evalJSON        bool
	evalIgnoreCase  bool
	evalEpsilon     float64
	evalMaxDistance int
)

var evalCmd = &cobra.Command{
	Use:   "eval <kind> <operator> <left> <right>",
	Short: "Evaluate a single condition",
	Long: `Evaluate one operator against one pair of typed operands.

Kinds: bool, number, string, strings, list, lists, date, ip, version, fuzzy.
Multi-valued operands (strings, list, lists) are comma-separated. The fuzzy
kind ignores the operator; pass any token.`,
	Args: cobra.ExactArgs(4),
	Example: `  condgate eval number ">=" 5 5
  condgate eval string contains ell HELLO --ignore-case
  condgate eval version ">" 1.2.0 1.3.0
  condgate eval lists contains_all a,b a,b,c
  condgate eval fuzzy == kitten sitting`,
	RunE: runEval,
}

func init() {
	evalCmd.Flags().BoolVarP(&evalJSON, "json", "j", false, "Output in JSON format")
	evalCmd.Flags().BoolVar(&evalIgnoreCase, "ignore-case", false, "Case-insensitive string comparison")
	evalCmd.Flags().Float64Var(&evalEpsilon, "epsilon", compare.DefaultEpsilon, "Numeric comparison tolerance")
	evalCmd.Flags().IntVar(&evalMaxDistance, "max-distance", compare.DefaultMaxDistance, "Maximum edit distance for fuzzy matching")
}

func runEval(cmd *cobra.Command, args []string) error {
	cond, err := buildCondition(args[0], args[1], args[2], args[3])
	if err != nil {
		return err
	}

	matched := cond.Evaluate()

	report := output.NewEvalReport([]output.EvalEntry{{
		Kind:     string(cond.Kind),
		Operator: string(cond.Operator),
		Left:     args[2],
		Right:    args[3],
		Matched:  matched,
	}})

	format := output.FormatText
	if evalJSON {
		format = output.FormatJSON
	}
	result, err := output.FormatOutput(report, format)
	if err != nil {
		return err
	}
	fmt.Println(result)

	if !matched {
		os.Exit(ExitUnmatched)
	}
	return nil
}

// buildCondition coerces CLI string operands into the typed form the
// condition layer expects. Unknown kinds and malformed numbers are input
// errors; everything else is left to the engine's fail-closed contract.
func buildCondition(kind, op, left, right string) (condition.Condition, error) {
	c := condition.Condition{
		Kind:     condition.Kind(kind),
		Operator: compare.Operator(op),
	}
	if !condition.IsKind(c.Kind) {
		return condition.Condition{}, fmt.Errorf("unknown kind %q", kind)
	}
	if c.Kind != condition.KindFuzzy && !compare.IsOperator(c.Operator) {
		return condition.Condition{}, fmt.Errorf("unknown operator %q", op)
	}

	caseSensitive := !evalIgnoreCase
	c.CaseSensitive = &caseSensitive
	c.Epsilon = &evalEpsilon
	c.MaxDistance = &evalMaxDistance

	switch c.Kind {
	case condition.KindNumber:
		l, err := strconv.ParseFloat(left, 64)
		if err != nil {
			return condition.Condition{}, fmt.Errorf("invalid number %q: %w", left, err)
		}
		r, err := strconv.ParseFloat(right, 64)
		if err != nil {
			return condition.Condition{}, fmt.Errorf("invalid number %q: %w", right, err)
		}
		c.Left, c.Right = l, r
	case condition.KindStrings:
		c.Left, c.Right = strings.Split(left, ","), right
	case condition.KindList:
		c.Left, c.Right = left, splitOperand(right)
	case condition.KindLists:
		c.Left, c.Right = splitOperand(left), splitOperand(right)
	default:
		c.Left, c.Right = left, right
	}
	return c, nil
}

// splitOperand turns a comma-separated CLI operand into a generic list.
func splitOperand(s string) []any {
	parts := strings.Split(s, ",")
	out := make([]any, len(parts))
	for i, p := range parts {
		out[i] = p
	}
	return out
}
