package compare

import (
	"math"
	"strings"
)

// DefaultEpsilon is the tolerance below which two floating-point values are
// considered equal by the numeric comparisons.
const DefaultEpsilon = 0.00001

// Boolean evaluates op against a boolean flag. The value operand is a
// presence sentinel only: a nil value or flag fails closed, but the verdict
// depends solely on flag.
func Boolean(op Operator, value, flag *bool) bool {
	if op == "" || value == nil || flag == nil {
		return false
	}

	switch op {
	case OpEqual, OpStrictEqual, OpIs, OpEqualTo:
		return *flag
	case OpNotEqual, OpStrictNotEqual, OpIsNot, OpNotEqualTo:
		return !*flag
	}
	return false
}

// Numeric evaluates op against a and b using DefaultEpsilon.
func Numeric(op Operator, a, b float64) bool {
	return NumericWithEpsilon(op, a, b, DefaultEpsilon)
}

// NumericWithEpsilon evaluates op against a and b with an explicit tolerance.
// Values within epsilon of each other satisfy the equality boundary, so ">="
// and "<=" accept near-equal floats while strict ">" and "<" require the
// values to differ by at least epsilon. This avoids false verdicts from
// binary floating-point representation error.
func NumericWithEpsilon(op Operator, a, b, epsilon float64) bool {
	diff := math.Abs(a - b)

	switch op {
	case OpEqual, OpStrictEqual:
		return diff < epsilon
	case OpNotEqual, OpStrictNotEqual:
		return diff >= epsilon
	case OpGreater:
		return a > b && diff >= epsilon
	case OpGreaterEqual:
		return a > b || diff < epsilon
	case OpLess:
		return a < b && diff >= epsilon
	case OpLessEqual:
		return a < b || diff < epsilon
	}
	return false
}

// String evaluates op against a needle and haystack. An empty operator or
// needle fails closed. An empty haystack is not treated as absent: it is
// compared as the empty string, so for example not_contains matches against
// it. When caseSensitive is false both operands are lower-cased before
// comparison.
func String(op Operator, needle, haystack string, caseSensitive bool) bool {
	if op == "" || needle == "" {
		return false
	}

	if !caseSensitive {
		needle = strings.ToLower(needle)
		haystack = strings.ToLower(haystack)
	}

	switch op {
	case OpEqual, OpEqualTo:
		return needle == haystack
	case OpNotEqual, OpNotEqualTo:
		return needle != haystack
	case OpContains:
		return strings.Contains(haystack, needle)
	case OpNotContains:
		return !strings.Contains(haystack, needle)
	case OpStartsWith:
		return strings.HasPrefix(haystack, needle)
	case OpEndsWith:
		return strings.HasSuffix(haystack, needle)
	}
	return false
}

// MultiString evaluates op against a set of needles and one haystack:
// "contains" is satisfied by any needle, "contains_all" only by every needle,
// and "not_contains" only when no needle occurs.
func MultiString(op Operator, needles []string, haystack string) bool {
	if op == "" || needles == nil || haystack == "" {
		return false
	}

	switch op {
	case OpContains:
		for _, n := range needles {
			if strings.Contains(haystack, n) {
				return true
			}
		}
		return false
	case OpContainsAll:
		for _, n := range needles {
			if !strings.Contains(haystack, n) {
				return false
			}
		}
		return true
	case OpNotContains:
		for _, n := range needles {
			if strings.Contains(haystack, n) {
				return false
			}
		}
		return true
	}
	return false
}
