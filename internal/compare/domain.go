package compare

import (
	"encoding/binary"
	"net/netip"

	"github.com/agnivade/levenshtein"

	"github.com/condgate/condgate/internal/dateparser"
	"github.com/condgate/condgate/internal/version"
)

// DefaultMaxDistance is the edit-distance threshold used by fuzzy matching
// when the caller does not supply one.
const DefaultMaxDistance = 3

// Date parses both operands as free-form date strings and delegates to
// Numeric on the resulting Unix timestamps. Either operand failing to parse
// fails closed. The default epsilon applies, so "==" requires the timestamps
// to land on the same second.
func Date(op Operator, reference, candidate string) bool {
	ref, err := dateparser.Parse(reference)
	if err != nil {
		return false
	}
	cand, err := dateparser.Parse(candidate)
	if err != nil {
		return false
	}
	return Numeric(op, float64(ref.Unix()), float64(cand.Unix()))
}

// IPAddress converts both operands from dotted-quad IPv4 literals to
// unsigned 32-bit integers and delegates to Numeric. IPv6 literals are not
// supported and fail closed.
func IPAddress(op Operator, reference, candidate string) bool {
	ref, ok := ipv4ToUint(reference)
	if !ok {
		return false
	}
	cand, ok := ipv4ToUint(candidate)
	if !ok {
		return false
	}
	return Numeric(op, float64(ref), float64(cand))
}

func ipv4ToUint(s string) (uint32, bool) {
	addr, err := netip.ParseAddr(s)
	if err != nil || !addr.Is4() {
		return 0, false
	}
	b := addr.As4()
	return binary.BigEndian.Uint32(b[:]), true
}

// Version evaluates op against two version strings. The three-way comparison
// is computed as candidate relative to reference, so ">" is true when the
// candidate exceeds the reference.
func Version(op Operator, reference, candidate string) bool {
	c := version.Compare(candidate, reference)

	switch op {
	case OpEqual, OpStrictEqual:
		return c == 0
	case OpNotEqual, OpStrictNotEqual:
		return c != 0
	case OpGreater:
		return c > 0
	case OpGreaterEqual:
		return c >= 0
	case OpLess:
		return c < 0
	case OpLessEqual:
		return c <= 0
	}
	return false
}

// Fuzzy reports whether the Levenshtein edit distance between reference and
// candidate is within maxDistance. There is no operator: this is a single
// fixed predicate.
func Fuzzy(reference, candidate string, maxDistance int) bool {
	return levenshtein.ComputeDistance(reference, candidate) <= maxDistance
}
