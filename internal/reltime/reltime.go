// Package reltime resolves unit-value tokens into comparable timestamp pairs.
package reltime

import (
	"time"

	"github.com/condgate/condgate/internal/dateparser"
	"github.com/condgate/condgate/internal/unitvalue"
)

// timeNow returns the current time.
// Tests can override this variable to pin the wall clock.
var timeNow = time.Now

// Window holds a pair of Unix timestamps produced from a unit-value token
// and a reference date. Compare is the current wall-clock time advanced by
// the parsed offset; Reference is the reference date parsed on its own. A
// zero field marks a side that could not be resolved.
type Window struct {
	Reference int64 `json:"reference_timestamp"`
	Compare   int64 `json:"compare_timestamp"`
}

// Resolve parses value as a unit-value token and builds the timestamp pair.
// A token that does not match the grammar, or whose count is zero, yields
// the zero Window. Each side fails closed to zero independently: an unknown
// unit zeroes Compare, an unparseable reference date zeroes Reference.
func Resolve(value, referenceDate string) Window {
	uv := unitvalue.Parse(value)
	if uv.Number == 0 {
		return Window{}
	}

	var w Window
	if t, err := dateparser.Offset(timeNow(), uv.Number, uv.Period); err == nil {
		w.Compare = t.Unix()
	}
	if t, err := dateparser.Parse(referenceDate); err == nil {
		w.Reference = t.Unix()
	}
	return w
}
