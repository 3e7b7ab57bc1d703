package position

import "github.com/quadrant-newmedia/smart-position/dom"

// Rect is an axis-aligned box in viewport coordinates. Top and Left increase
// downward and rightward; Right and Bottom are absolute coordinates, not
// distances from the far edges.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Width returns the horizontal extent of the rect.
func (r Rect) Width() float64 { return r.Right - r.Left }

// Height returns the vertical extent of the rect.
func (r Rect) Height() float64 { return r.Bottom - r.Top }

// CenterX returns the horizontal midpoint.
func (r Rect) CenterX() float64 { return (r.Left + r.Right) / 2 }

// CenterY returns the vertical midpoint.
func (r Rect) CenterY() float64 { return (r.Top + r.Bottom) / 2 }

func rectOf(r dom.Rect) Rect {
	return Rect{Left: r.Left(), Top: r.Top(), Right: r.Right(), Bottom: r.Bottom()}
}

// Anchor is anything the element can be positioned against: an element, or a
// fixed point.
type Anchor interface {
	// AnchorRect returns the anchor's current bounding rect in viewport
	// coordinates. It is read fresh on every invocation.
	AnchorRect() Rect
}

// Point is a fixed-position anchor: a degenerate rect with zero width and
// height.
type Point struct {
	X, Y float64
}

// AnchorRect returns the degenerate rect at the point.
func (p Point) AnchorRect() Rect {
	return Rect{Left: p.X, Top: p.Y, Right: p.X, Bottom: p.Y}
}

// ElementAnchor adapts an element's bounding rect as an anchor.
type ElementAnchor struct {
	Element *dom.Element
}

// AnchorRect returns the element's current bounding rect.
func (a ElementAnchor) AnchorRect() Rect {
	return rectOf(a.Element.GetBoundingClientRect())
}
