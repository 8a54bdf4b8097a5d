// Package unitvalue parses compact "count + unit" tokens such as "7days".
package unitvalue

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// UnitValue is the parsed form of a unit-value token. The zero value marks
// input that did not match the grammar; it is a degenerate result, not an
// error.
type UnitValue struct {
	Number int
	Period string
}

// AST type for the Participle grammar: one digit run followed by one
// non-digit run, covering the whole input.
type unitValueExpr struct {
	Number string `parser:"@Number"`
	Period string `parser:"@Period"`
}

var unitLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `\d+`},
	{Name: "Period", Pattern: `\D+`},
})

var unitParser = participle.MustBuild[unitValueExpr](
	participle.Lexer(unitLexer),
)

// Parse splits input into its numeric count and unit token. The period is
// trimmed and lower-cased but not validated against any unit set; that is a
// caller's concern. Inputs that do not match the grammar, including a period
// with embedded digits, return the zero UnitValue.
func Parse(input string) UnitValue {
	ast, err := unitParser.ParseString("", input)
	if err != nil {
		return UnitValue{}
	}

	number, err := strconv.Atoi(ast.Number)
	if err != nil {
		return UnitValue{}
	}

	return UnitValue{
		Number: number,
		Period: strings.ToLower(strings.TrimSpace(ast.Period)),
	}
}
