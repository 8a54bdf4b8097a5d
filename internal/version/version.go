// Package version provides three-way version string comparison.
package version

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare returns -1, 0, or 1 based on comparing a vs b.
// Both operands are tried as semver first; when either fails to parse, the
// comparison falls back to dot-separated segment ordering where missing
// segments default to zero and numeric segments sort before alphabetic ones.
func Compare(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}
	return compareSegments(a, b)
}

// LessThan returns true if a < b.
func LessThan(a, b string) bool {
	return Compare(a, b) < 0
}

// GreaterOrEqual returns true if a >= b.
func GreaterOrEqual(a, b string) bool {
	return Compare(a, b) >= 0
}

func compareSegments(a, b string) int {
	sa := strings.Split(a, ".")
	sb := strings.Split(b, ".")

	for len(sa) < len(sb) {
		sa = append(sa, "0")
	}
	for len(sb) < len(sa) {
		sb = append(sb, "0")
	}

	for i := range sa {
		if c := compareSegment(sa[i], sb[i]); c != 0 {
			return c
		}
	}
	return 0
}

// compareSegment orders a single version segment pair. Numeric segments
// compare numerically and sort before alphabetic ones; alphabetic segments
// compare lexically.
func compareSegment(a, b string) int {
	na, errA := strconv.Atoi(a)
	nb, errB := strconv.Atoi(b)

	switch {
	case errA == nil && errB == nil:
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}
