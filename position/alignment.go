// Package position resolves the placement of a floating element relative to
// an anchor, choosing among caller-supplied alignment preferences so the
// element avoids overflowing the viewport, or overflows as little as
// possible when overflow cannot be avoided.
package position

import "fmt"

// Alignment describes the edge-pinning relationship between the element and
// its anchor on one axis.
type Alignment int

const (
	// Before pins the element's trailing edge to the anchor's leading edge.
	// The element sits entirely before the anchor, non-overlapping.
	Before Alignment = iota
	// Start pins the element's leading edge to the anchor's leading edge.
	// The element overlaps the anchor and extends toward the axis end.
	Start
	// Center pins the element's leading edge to the anchor's center. Final
	// centering is achieved with a -50% translation, so re-centering tracks
	// dynamic element size without recomputing offsets.
	Center
	// End pins the element's trailing edge to the anchor's trailing edge.
	// The element overlaps the anchor and extends toward the axis start.
	End
	// After pins the element's leading edge to the anchor's trailing edge.
	// The element sits entirely after the anchor, non-overlapping.
	After
)

// Axis defaults, used when a preference list is empty.
const (
	DefaultHorizontal = Start
	DefaultVertical   = After
)

var alignmentNames = map[Alignment]string{
	Before: "before",
	Start:  "start",
	Center: "center",
	End:    "end",
	After:  "after",
}

// String returns the alignment token ("before", "start", "center", "end",
// "after").
func (a Alignment) String() string {
	if name, ok := alignmentNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// ParseAlignment maps a token to its Alignment. The second return value
// reports whether the token was recognized.
func ParseAlignment(s string) (Alignment, bool) {
	switch s {
	case "before":
		return Before, true
	case "start":
		return Start, true
	case "center":
		return Center, true
	case "end":
		return End, true
	case "after":
		return After, true
	}
	return 0, false
}

// IsAlignment reports whether s is one of the five alignment tokens.
func IsAlignment(s string) bool {
	_, ok := ParseAlignment(s)
	return ok
}

// ValidateAlignments partitions values into recognized and unrecognized
// tokens, preserving relative order within each partition. It never fails;
// callers parsing alignments from untyped sources (query strings, script
// arguments) decide what to do with the invalid remainder.
func ValidateAlignments(values []string) (valid, invalid []string) {
	for _, v := range values {
		if IsAlignment(v) {
			valid = append(valid, v)
		} else {
			invalid = append(invalid, v)
		}
	}
	return valid, invalid
}

// ParseAlignments converts the recognized tokens in values to Alignments,
// in order, dropping unrecognized ones.
func ParseAlignments(values []string) []Alignment {
	var out []Alignment
	for _, v := range values {
		if a, ok := ParseAlignment(v); ok {
			out = append(out, a)
		}
	}
	return out
}
