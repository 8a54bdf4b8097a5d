// Package condition carries the caller-side glue around the comparison
// engine: a typed condition record with JSON encoding and operand coercion.
// Coercion failures fail closed, like the engine itself.
package condition

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/condgate/condgate/internal/compare"
)

// Kind selects which comparison domain evaluates a condition.
type Kind string

const (
	KindBool    Kind = "bool"
	KindNumber  Kind = "number"
	KindString  Kind = "string"
	KindStrings Kind = "strings"
	KindList    Kind = "list"
	KindLists   Kind = "lists"
	KindDate    Kind = "date"
	KindIP      Kind = "ip"
	KindVersion Kind = "version"
	KindFuzzy   Kind = "fuzzy"
)

// Kinds lists every condition kind, in documentation order.
var Kinds = []Kind{
	KindBool, KindNumber, KindString, KindStrings, KindList,
	KindLists, KindDate, KindIP, KindVersion, KindFuzzy,
}

// IsKind reports whether k is a known condition kind.
func IsKind(k Kind) bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Condition is one operator applied to one pair of operands. Left and Right
// hold raw operand values as decoded from JSON; Evaluate coerces them into
// the form the selected domain expects.
type Condition struct {
	Kind          Kind             `json:"kind"`
	Operator      compare.Operator `json:"op"`
	Left          any              `json:"left"`
	Right         any              `json:"right"`
	CaseSensitive *bool            `json:"case_sensitive,omitempty"`
	Epsilon       *float64         `json:"epsilon,omitempty"`
	MaxDistance   *int             `json:"max_distance,omitempty"`
}

// Evaluate resolves the condition to a verdict. Unknown kinds and operands
// that cannot be coerced resolve to false.
func (c Condition) Evaluate() bool {
	switch c.Kind {
	case KindBool:
		return compare.Boolean(c.Operator, toBool(c.Left), toBool(c.Right))
	case KindNumber:
		left, okL := toFloat(c.Left)
		right, okR := toFloat(c.Right)
		if !okL || !okR {
			return false
		}
		epsilon := compare.DefaultEpsilon
		if c.Epsilon != nil {
			epsilon = *c.Epsilon
		}
		return compare.NumericWithEpsilon(c.Operator, left, right, epsilon)
	case KindString:
		left, okL := toString(c.Left)
		right, okR := toString(c.Right)
		if !okL || !okR {
			return false
		}
		caseSensitive := true
		if c.CaseSensitive != nil {
			caseSensitive = *c.CaseSensitive
		}
		return compare.String(c.Operator, left, right, caseSensitive)
	case KindStrings:
		haystack, ok := toString(c.Right)
		if !ok {
			return false
		}
		return compare.MultiString(c.Operator, toStringSlice(c.Left), haystack)
	case KindList:
		return compare.ArraySingle(c.Operator, c.Left, toAnySlice(c.Right))
	case KindLists:
		return compare.ArrayMulti(c.Operator, c.Left, toAnySlice(c.Right))
	case KindDate:
		left, okL := toString(c.Left)
		right, okR := toString(c.Right)
		if !okL || !okR {
			return false
		}
		return compare.Date(c.Operator, left, right)
	case KindIP:
		left, okL := toString(c.Left)
		right, okR := toString(c.Right)
		if !okL || !okR {
			return false
		}
		return compare.IPAddress(c.Operator, left, right)
	case KindVersion:
		left, okL := toString(c.Left)
		right, okR := toString(c.Right)
		if !okL || !okR {
			return false
		}
		return compare.Version(c.Operator, left, right)
	case KindFuzzy:
		left, okL := toString(c.Left)
		right, okR := toString(c.Right)
		if !okL || !okR {
			return false
		}
		maxDistance := compare.DefaultMaxDistance
		if c.MaxDistance != nil {
			maxDistance = *c.MaxDistance
		}
		return compare.Fuzzy(left, right, maxDistance)
	}
	return false
}

// DecodeLines reads one JSON-encoded condition per line, skipping blank
// lines. Decode errors carry the offending line number.
func DecodeLines(r io.Reader) ([]Condition, error) {
	var conds []Condition

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var c Condition
		if err := json.Unmarshal([]byte(text), &c); err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		conds = append(conds, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return conds, nil
}

// Operand coercion. JSON decoding yields bool, float64, string and []any;
// CLI callers hand over plain strings. Anything else fails coercion.

func toBool(v any) *bool {
	switch val := v.(type) {
	case bool:
		return &val
	case string:
		b, err := strconv.ParseBool(val)
		if err != nil {
			return nil
		}
		return &b
	}
	return nil
}

func toFloat(v any) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func toString(v any) (string, bool) {
	switch val := v.(type) {
	case string:
		return val, true
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), true
	}
	return "", false
}

func toStringSlice(v any) []string {
	switch val := v.(type) {
	case []string:
		return val
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := toString(item)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}

func toAnySlice(v any) []any {
	if val, ok := v.([]any); ok {
		return val
	}
	return nil
}
