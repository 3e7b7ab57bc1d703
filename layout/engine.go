// Package layout computes element geometry from inline styles: block and
// inline-block flow, absolute positioning and the box model. It is the
// environment the positioning core measures against.
package layout

import (
	"math"

	"go.uber.org/zap"

	"github.com/quadrant-newmedia/smart-position/dom"
	"github.com/quadrant-newmedia/smart-position/position"
)

// Engine lays out a document for a viewport and records the computed
// geometry on the elements, so GetBoundingClientRect reflects the styles at
// the time of the last Layout call.
type Engine struct {
	doc *dom.Document

	ViewportWidth  float64
	ViewportHeight float64
}

// NewEngine creates an engine for doc with the given viewport size.
func NewEngine(doc *dom.Document, width, height float64) *Engine {
	return &Engine{doc: doc, ViewportWidth: width, ViewportHeight: height}
}

// Document returns the engine's document.
func (e *Engine) Document() *dom.Document { return e.doc }

// ViewportSize returns the viewport dimensions.
func (e *Engine) ViewportSize() (width, height float64) {
	return e.ViewportWidth, e.ViewportHeight
}

// Reflow recomputes the full layout. The positioning core calls this after
// every style write so subsequent rect reads are current.
func (e *Engine) Reflow() { e.Layout() }

// Layout performs a full layout pass: normal flow first, then out-of-flow
// boxes in tree order, so an absolute box is placed before any absolute
// descendants that resolve against it.
func (e *Engine) Layout() {
	root := e.doc.DocumentElement()
	root.SetGeometry(&dom.Geometry{
		Width: e.ViewportWidth, Height: e.ViewportHeight,
		ContentWidth: e.ViewportWidth, ContentHeight: e.ViewportHeight,
	})

	body := e.doc.Body()
	e.layoutBlock(body, readStyle(body), 0, 0, e.ViewportWidth, nil)
	e.layoutOutOfFlow(body)

	Logger().Debug("layout pass complete",
		zap.Float64("viewportWidth", e.ViewportWidth),
		zap.Float64("viewportHeight", e.ViewportHeight))
}

// layoutOutOfFlow finds and places every absolute and fixed box under el,
// outermost first. display:none subtrees generate no boxes.
func (e *Engine) layoutOutOfFlow(el *dom.Element) {
	for _, c := range el.ChildElements() {
		cs := readStyle(c)
		if cs.display == "none" {
			continue
		}
		if cs.outOfFlow() {
			e.layoutAbsolute(c, cs)
		}
		e.layoutOutOfFlow(c)
	}
}

// layoutBlock lays out an in-flow box whose margin box starts at (x, y)
// inside a containing content area avail wide. positioned is the nearest
// positioned ancestor, recorded for offsetParent and inherited by
// descendants. Returns the margin box height consumed in the flow.
func (e *Engine) layoutBlock(el *dom.Element, s boxStyle, x, y, avail float64, positioned *dom.Element) float64 {
	borderX := x + s.marginLeft
	borderY := y + s.marginTop

	var contentWidth float64
	if s.width.set {
		contentWidth = s.contentWidthFor(s.width.value)
	} else {
		contentWidth = math.Max(0, avail-s.marginLeft-s.marginRight-s.horizontalExtras())
	}
	contentWidth = s.clampContentWidth(contentWidth)

	childPositioned := positioned
	if s.positioned() {
		childPositioned = el
	}

	// measuring pass; the definitive child flow happens at the final origin
	usedWidth, usedHeight := e.flowChildren(el, 0, 0, contentWidth, childPositioned)

	if s.display == "inline-block" && !s.width.set {
		// shrink to fit the flowed content
		contentWidth = s.clampContentWidth(usedWidth)
	}

	contentHeight := usedHeight
	if s.height.set {
		contentHeight = s.contentHeightFor(s.height.value)
	}
	contentHeight = s.clampContentHeight(contentHeight)

	borderW := contentWidth + s.horizontalExtras()
	borderH := contentHeight + s.verticalExtras()

	// relative offsets move the box after flow without affecting siblings
	if s.position == "relative" {
		if s.left.set {
			borderX += s.left.value
		} else if s.right.set {
			borderX -= s.right.value
		}
		if s.top.set {
			borderY += s.top.value
		} else if s.bottom.set {
			borderY -= s.bottom.value
		}
	}

	borderX += s.translateX / 100 * borderW
	borderY += s.translateY / 100 * borderH

	el.SetGeometry(&dom.Geometry{
		X: borderX, Y: borderY, Width: borderW, Height: borderH,
		ContentWidth: contentWidth, ContentHeight: contentHeight,
	})
	el.SetOffsetParent(positioned)

	e.flowChildren(el,
		borderX+s.borderLeft+s.paddingLeft,
		borderY+s.borderTop+s.paddingTop,
		contentWidth, childPositioned)

	return s.marginTop + borderH + s.marginBottom
}

// flowChildren lays out el's children in normal flow inside a content area
// of the given width starting at (cx, cy). Text and inline-blocks fill line
// boxes and wrap; blocks stack; out-of-flow boxes are skipped here and
// handled by layoutOutOfFlow. Returns the extent the content used.
func (e *Engine) flowChildren(el *dom.Element, cx, cy, width float64, positioned *dom.Element) (usedWidth, usedHeight float64) {
	var flowY float64 // vertical cursor, relative to cy
	var lineX float64 // horizontal cursor on the current line
	var lineH float64 // tallest item on the current line

	flushLine := func() {
		if lineX > 0 || lineH > 0 {
			flowY += math.Max(lineH, LineHeight)
			if lineX > usedWidth {
				usedWidth = lineX
			}
			lineX, lineH = 0, 0
		}
	}

	for _, child := range el.Children() {
		switch n := child.(type) {
		case *dom.Text:
			for _, line := range wrapText(n.Data, width) {
				if lineX > 0 && lineX+CharWidth+line.width > width {
					flushLine()
				}
				if lineX > 0 {
					lineX += CharWidth
				}
				lineX += line.width
				if LineHeight > lineH {
					lineH = LineHeight
				}
				if lineX > usedWidth {
					usedWidth = lineX
				}
			}

		case *dom.Element:
			cs := readStyle(n)
			if cs.display == "none" {
				n.SetGeometry(&dom.Geometry{})
				continue
			}
			if cs.outOfFlow() {
				continue
			}
			if cs.display == "block" {
				flushLine()
				h := e.layoutBlock(n, cs, cx, cy+flowY, width, positioned)
				flowY += h
				if g := n.Geometry(); g != nil {
					w := g.Width + cs.marginLeft + cs.marginRight
					if w > usedWidth {
						usedWidth = w
					}
				}
				continue
			}

			// inline-block: lay it out at the cursor, wrap and retry if it
			// does not fit on the current line
			e.layoutBlock(n, cs, cx+lineX, cy+flowY, width-lineX, positioned)
			g := n.Geometry()
			w := g.Width + cs.marginLeft + cs.marginRight
			if lineX > 0 && lineX+w > width {
				flushLine()
				e.layoutBlock(n, cs, cx, cy+flowY, width, positioned)
				g = n.Geometry()
				w = g.Width + cs.marginLeft + cs.marginRight
			}
			lineX += w
			h := g.Height + cs.marginTop + cs.marginBottom
			if h > lineH {
				lineH = h
			}
			if lineX > usedWidth {
				usedWidth = lineX
			}
		}
	}
	flushLine()
	return usedWidth, flowY
}

// layoutAbsolute places an out-of-flow box against its containing block:
// the padding box of the nearest positioned ancestor, or the viewport for
// fixed boxes and boxes with no positioned ancestor. The box honors one of
// left/right and one of top/bottom, shrinks to fit its content when no
// width is specified, and clamps to max-width/max-height.
func (e *Engine) layoutAbsolute(el *dom.Element, s boxStyle) {
	ancestor := e.positionedAncestor(el)

	var cb position.Rect
	if s.position == "fixed" || ancestor == nil {
		cb = position.Rect{Right: e.ViewportWidth, Bottom: e.ViewportHeight}
	} else {
		cb = e.paddingBox(ancestor)
	}

	if ancestor != nil && s.position != "fixed" {
		el.SetOffsetParent(ancestor)
	} else {
		el.SetOffsetParent(e.doc.Body())
	}

	// available content width inside the containing block, net of the
	// specified offsets
	availContent := cb.Width() - s.horizontalExtras()
	if s.left.set {
		availContent -= s.left.value
	}
	if s.right.set {
		availContent -= s.right.value
	}
	availContent = s.clampContentWidth(math.Max(0, availContent))

	var contentWidth float64
	if s.width.set {
		contentWidth = s.clampContentWidth(s.contentWidthFor(s.width.value))
	} else {
		w, _ := e.flowChildren(el, 0, 0, availContent, el)
		contentWidth = s.clampContentWidth(math.Min(w, availContent))
	}

	_, usedHeight := e.flowChildren(el, 0, 0, contentWidth, el)

	contentHeight := usedHeight
	if s.height.set {
		contentHeight = s.contentHeightFor(s.height.value)
	}
	contentHeight = s.clampContentHeight(contentHeight)

	borderW := contentWidth + s.horizontalExtras()
	borderH := contentHeight + s.verticalExtras()

	var x, y float64
	switch {
	case s.left.set:
		x = cb.Left + s.left.value
	case s.right.set:
		x = cb.Right - s.right.value - borderW
	default:
		x = cb.Left
	}
	switch {
	case s.top.set:
		y = cb.Top + s.top.value
	case s.bottom.set:
		y = cb.Bottom - s.bottom.value - borderH
	default:
		y = cb.Top
	}

	x += s.translateX / 100 * borderW
	y += s.translateY / 100 * borderH

	el.SetGeometry(&dom.Geometry{
		X: x, Y: y, Width: borderW, Height: borderH,
		ContentWidth: contentWidth, ContentHeight: contentHeight,
	})

	e.flowChildren(el,
		x+s.borderLeft+s.paddingLeft,
		y+s.borderTop+s.paddingTop,
		contentWidth, el)
}

// positionedAncestor returns the nearest ancestor establishing a
// positioning context, or nil.
func (e *Engine) positionedAncestor(el *dom.Element) *dom.Element {
	for p := el.Parent(); p != nil; p = p.Parent() {
		if readStyle(p).positioned() {
			return p
		}
	}
	return nil
}

// paddingBox derives an element's padding box from its laid-out border box.
func (e *Engine) paddingBox(el *dom.Element) position.Rect {
	g := el.Geometry()
	if g == nil {
		return position.Rect{Right: e.ViewportWidth, Bottom: e.ViewportHeight}
	}
	s := readStyle(el)
	return position.Rect{
		Left:   g.X + s.borderLeft,
		Top:    g.Y + s.borderTop,
		Right:  g.X + g.Width - s.borderRight,
		Bottom: g.Y + g.Height - s.borderBottom,
	}
}

// ContainingBlock reports the positioning-context bounds for el directly,
// which lets the positioner skip its two-extreme probe.
func (e *Engine) ContainingBlock(el *dom.Element) (position.Rect, bool) {
	s := readStyle(el)
	if s.position != "fixed" {
		if a := e.positionedAncestor(el); a != nil {
			return e.paddingBox(a), true
		}
	}
	return position.Rect{Right: e.ViewportWidth, Bottom: e.ViewportHeight}, true
}
