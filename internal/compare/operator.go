// Package compare implements typed, fail-closed comparison predicates.
//
// Every function returns a plain boolean verdict. An invalid condition - an
// empty or unknown operator, an absent operand, an unparseable date or
// address - never raises an error; it resolves to false, so callers gating
// behavior on a condition can treat "cannot tell" and "does not match"
// identically.
package compare

// Operator identifies which comparison to perform.
type Operator string

// Equality operators. Loose (==) and strict (===) forms are accepted as
// distinct tokens but evaluate identically within every domain.
const (
	OpEqual          Operator = "=="
	OpNotEqual       Operator = "!="
	OpStrictEqual    Operator = "==="
	OpStrictNotEqual Operator = "!=="
)

// Relational operators.
const (
	OpGreater      Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLess         Operator = "<"
	OpLessEqual    Operator = "<="
)

// String and membership operators.
const (
	OpContains    Operator = "contains"
	OpNotContains Operator = "not_contains"
	OpStartsWith  Operator = "starts_with"
	OpEndsWith    Operator = "ends_with"
	OpContainsAll Operator = "contains_all"
)

// Boolean-extended operators, word-form aliases of the equality family.
const (
	OpIs         Operator = "is"
	OpIsNot      Operator = "is_not"
	OpEqualTo    Operator = "equal_to"
	OpNotEqualTo Operator = "not_equal_to"
)

// Operator families. The catalog is advisory: each comparison function
// hard-codes the subset it accepts and falls through to false for the rest.
var (
	EqualityOperators   = []Operator{OpEqual, OpNotEqual, OpStrictEqual, OpStrictNotEqual}
	RelationalOperators = []Operator{OpGreater, OpGreaterEqual, OpLess, OpLessEqual}
	StringOperators     = []Operator{OpContains, OpNotContains, OpStartsWith, OpEndsWith, OpContainsAll}
	BooleanOperators    = []Operator{OpIs, OpIsNot, OpEqualTo, OpNotEqualTo}
)

var operatorSet = func() map[Operator]struct{} {
	set := make(map[Operator]struct{})
	for _, family := range [][]Operator{
		EqualityOperators,
		RelationalOperators,
		StringOperators,
		BooleanOperators,
	} {
		for _, op := range family {
			set[op] = struct{}{}
		}
	}
	return set
}()

// IsOperator reports whether tok belongs to the closed operator vocabulary.
func IsOperator(tok Operator) bool {
	_, ok := operatorSet[tok]
	return ok
}
