// Package dateparser interprets free-form date strings and calendar offsets.
// It is the single date-parsing collaborator for the comparison engine and
// the relative-time resolver.
package dateparser

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var whenParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// Parse interprets a free-form date string relative to the current time.
// Absolute formats ("2024-01-05", RFC 3339, Unix timestamps) are tried first,
// then natural-language phrases ("next monday", "in 3 hours").
func Parse(s string) (time.Time, error) {
	return ParseAt(s, time.Now())
}

// ParseAt is Parse with an explicit base time for relative phrases.
func ParseAt(s string, base time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date string")
	}

	if t, err := dateparse.ParseAny(s); err == nil {
		return t, nil
	}

	r, err := whenParser.Parse(s, base)
	if err == nil && r != nil {
		return r.Time, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", s)
}

// Offset advances base by n calendar units. Recognized units are second,
// minute, hour, day, week, month and year, singular or plural. Unknown units
// return an error so callers can fail closed.
func Offset(base time.Time, n int, unit string) (time.Time, error) {
	switch strings.TrimSuffix(strings.ToLower(strings.TrimSpace(unit)), "s") {
	case "second", "sec":
		return base.Add(time.Duration(n) * time.Second), nil
	case "minute", "min":
		return base.Add(time.Duration(n) * time.Minute), nil
	case "hour":
		return base.Add(time.Duration(n) * time.Hour), nil
	case "day":
		return base.AddDate(0, 0, n), nil
	case "week":
		return base.AddDate(0, 0, 7*n), nil
	case "month":
		return base.AddDate(0, n, 0), nil
	case "year":
		return base.AddDate(n, 0, 0), nil
	}
	return time.Time{}, fmt.Errorf("unrecognized unit %q", unit)
}
