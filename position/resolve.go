package position

import "fmt"

// Edge names one edge of the containing block that an offset is measured
// against. Its String form is the matching CSS property name.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeRight
	EdgeTop
	EdgeBottom
)

func (e Edge) String() string {
	switch e {
	case EdgeLeft:
		return "left"
	case EdgeRight:
		return "right"
	case EdgeTop:
		return "top"
	case EdgeBottom:
		return "bottom"
	}
	return fmt.Sprintf("Edge(%d)", int(e))
}

// Offset is a positional offset against a single edge of the containing
// block. Encoding the axis as one edge plus a value keeps the "never both
// sides of the same axis" invariant structural.
type Offset struct {
	Edge  Edge
	Value float64
}

// Input is everything the pure resolver needs: geometry read from the host
// environment plus the caller's preferences. All rects are in viewport
// coordinates.
type Input struct {
	Anchor          Rect
	ContainingBlock Rect
	ViewportWidth   float64
	ViewportHeight  float64

	// Intrinsic element size. Height should be measured after the
	// max-width constraint has been applied when the caller can reflow,
	// since constraining width can re-wrap content and change height.
	Width  float64
	Height float64

	Horizontal []Alignment
	Vertical   []Alignment
	Margin     float64
}

// Placement is the resolved position: one alignment per axis, the matching
// max sizes and containing-block offsets, and the centering translation.
type Placement struct {
	Horizontal Alignment
	Vertical   Alignment

	// Max sizes equal the available space of the chosen alignments.
	MaxWidth  float64
	MaxHeight float64

	// X is a left or right offset; Y is a top or bottom offset. Exactly one
	// edge per axis is ever produced.
	X Offset
	Y Offset

	// Translation percentages per axis: -50 when that axis chose Center,
	// else 0.
	TranslateX float64
	TranslateY float64
}

// resolveAxis picks one alignment for an axis. The first preference whose
// available space fits size wins immediately; if none fits, the preference
// with the strictly greatest space wins, earliest-seen on ties. An empty
// preference list forces def with no comparison at all.
func resolveAxis(prefs []Alignment, def Alignment, size float64, space func(Alignment) float64) (Alignment, float64) {
	if len(prefs) == 0 {
		return def, space(def)
	}
	best := prefs[0]
	bestSpace := space(best)
	if bestSpace >= size {
		return best, bestSpace
	}
	for _, a := range prefs[1:] {
		s := space(a)
		if s >= size {
			return a, s
		}
		if s > bestSpace {
			best, bestSpace = a, s
		}
	}
	return best, bestSpace
}

// horizontalOffset derives the left or right offset for the chosen
// horizontal alignment, relative to the containing block cb.
func horizontalOffset(a Alignment, anchor, cb Rect, margin float64) Offset {
	switch a {
	case Before:
		return Offset{EdgeRight, cb.Right - anchor.Left + margin}
	case Start:
		return Offset{EdgeLeft, anchor.Left - cb.Left}
	case Center:
		return Offset{EdgeLeft, anchor.CenterX() - cb.Left}
	case End:
		return Offset{EdgeRight, cb.Right - anchor.Right}
	case After:
		return Offset{EdgeLeft, anchor.Right + margin - cb.Left}
	}
	panic(fmt.Sprintf("position: invalid alignment %d", int(a)))
}

func verticalOffset(a Alignment, anchor, cb Rect, margin float64) Offset {
	switch a {
	case Before:
		return Offset{EdgeBottom, cb.Bottom - anchor.Top + margin}
	case Start:
		return Offset{EdgeTop, anchor.Top - cb.Top}
	case Center:
		return Offset{EdgeTop, anchor.CenterY() - cb.Top}
	case End:
		return Offset{EdgeBottom, cb.Bottom - anchor.Bottom}
	case After:
		return Offset{EdgeTop, anchor.Bottom + margin - cb.Top}
	}
	panic(fmt.Sprintf("position: invalid alignment %d", int(a)))
}

// Resolve runs the full alignment resolution on already-measured geometry
// and returns the placement as an immutable record. It is stateless and
// idempotent for identical inputs.
//
// Horizontal is resolved fully before vertical. Resolve trusts in.Height as
// given; callers that can reflow should prefer Positioner.Position, which
// re-measures height after applying the max-width constraint.
func Resolve(in Input) Placement {
	h, hSpace := resolveAxis(in.Horizontal, DefaultHorizontal, in.Width, func(a Alignment) float64 {
		return AvailableWidth(a, in.Anchor, in.ViewportWidth, in.Margin)
	})
	v, vSpace := resolveAxis(in.Vertical, DefaultVertical, in.Height, func(a Alignment) float64 {
		return AvailableHeight(a, in.Anchor, in.ViewportHeight, in.Margin)
	})

	p := Placement{
		Horizontal: h,
		Vertical:   v,
		MaxWidth:   hSpace,
		MaxHeight:  vSpace,
		X:          horizontalOffset(h, in.Anchor, in.ContainingBlock, in.Margin),
		Y:          verticalOffset(v, in.Anchor, in.ContainingBlock, in.Margin),
	}
	if h == Center {
		p.TranslateX = -50
	}
	if v == Center {
		p.TranslateY = -50
	}
	return p
}
