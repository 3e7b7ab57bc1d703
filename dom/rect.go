// Package dom provides the minimal element model the positioning core works
// against: an element tree with inline styles, attributes and layout-set
// geometry.
package dom

// Rect is a rectangle in viewport coordinates, following the DOMRect shape
// from the Geometry Interfaces spec.
// https://drafts.fxtf.org/geometry/#DOMRect
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Top returns the top edge (y for positive height, y + height for negative).
func (r Rect) Top() float64 {
	if r.Height < 0 {
		return r.Y + r.Height
	}
	return r.Y
}

// Right returns the right edge (x + width for positive width, x for negative).
func (r Rect) Right() float64 {
	if r.Width < 0 {
		return r.X
	}
	return r.X + r.Width
}

// Bottom returns the bottom edge (y + height for positive height, y for negative).
func (r Rect) Bottom() float64 {
	if r.Height < 0 {
		return r.Y
	}
	return r.Y + r.Height
}

// Left returns the left edge (x for positive width, x + width for negative).
func (r Rect) Left() float64 {
	if r.Width < 0 {
		return r.X + r.Width
	}
	return r.X
}

// Geometry holds computed layout geometry for an element: the border box in
// viewport coordinates plus the intrinsic content size. It is written by the
// layout engine and read through GetBoundingClientRect.
type Geometry struct {
	// Border box, viewport-relative.
	X, Y, Width, Height float64

	// Content box size, inside padding and borders.
	ContentWidth, ContentHeight float64
}

// BorderBox returns the geometry's border box as a Rect.
func (g *Geometry) BorderBox() Rect {
	return Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
}
