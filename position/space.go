package position

import (
	"fmt"
	"math"
)

// AvailableWidth returns the horizontal space, in pixels and net of margin,
// that an element aligned to anchor with a would have before overflowing a
// viewport of the given width.
//
// Before and After reserve margin on both the anchor-facing and the
// viewport-facing edge; Start and End reserve margin only on the one free
// edge (the anchor-aligned edge has no gap); Center takes twice the smaller
// distance from the anchor's center to either viewport edge, since the
// element must fit equally in both directions.
//
// The result may be negative for degenerate inputs (anchor outside the
// viewport, margin larger than the available gap); it is propagated as-is.
// An alignment outside the five-value enumeration is a contract violation
// and panics.
func AvailableWidth(a Alignment, anchor Rect, viewportWidth, margin float64) float64 {
	switch a {
	case Before:
		return anchor.Left - 2*margin
	case Start:
		return viewportWidth - anchor.Left - margin
	case Center:
		return 2*math.Min(viewportWidth-anchor.CenterX(), anchor.CenterX()) - 2*margin
	case End:
		return anchor.Right - margin
	case After:
		return viewportWidth - anchor.Right - 2*margin
	}
	panic(fmt.Sprintf("position: invalid alignment %d", int(a)))
}

// AvailableHeight is the vertical counterpart of AvailableWidth.
func AvailableHeight(a Alignment, anchor Rect, viewportHeight, margin float64) float64 {
	switch a {
	case Before:
		return anchor.Top - 2*margin
	case Start:
		return viewportHeight - anchor.Top - margin
	case Center:
		return 2*math.Min(viewportHeight-anchor.CenterY(), anchor.CenterY()) - 2*margin
	case End:
		return anchor.Bottom - margin
	case After:
		return viewportHeight - anchor.Bottom - 2*margin
	}
	panic(fmt.Sprintf("position: invalid alignment %d", int(a)))
}
