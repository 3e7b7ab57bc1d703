package position

import (
	"strconv"

	"github.com/quadrant-newmedia/smart-position/dom"
)

// Environment is the host the positioner reads geometry from. Style writes
// land on the element's inline style; Reflow makes the host recompute
// geometry so subsequent bounding-rect reads see those writes.
type Environment interface {
	ViewportSize() (width, height float64)
	Reflow()
}

// ContainingBlockQuerier is an optional Environment extension that reports
// the bounds of the positioning context an element resolves against. When
// the environment implements it, the positioner uses it instead of the
// two-extreme probe.
type ContainingBlockQuerier interface {
	ContainingBlock(el *dom.Element) (Rect, bool)
}

// Options carries the caller's placement preferences. Empty preference
// lists fall back to DefaultHorizontal / DefaultVertical. Margin is in
// pixels, default 0.
type Options struct {
	Horizontal []Alignment
	Vertical   []Alignment
	Margin     float64
}

// Positioner applies alignment resolution to elements in an Environment.
//
// Invocations for the same element must be serialized by the caller; the
// positioner keeps no state of its own.
type Positioner struct {
	Env Environment
}

// NewPositioner returns a Positioner bound to env.
func NewPositioner(env Environment) *Positioner {
	return &Positioner{Env: env}
}

// properties Position owns on the element; cleared before measuring.
var placementProperties = []string{
	"left", "right", "top", "bottom", "max-width", "max-height", "transform",
}

// Position places el relative to anchor and returns the placement it
// applied. The sequence is fixed: reset prior placement state, probe the
// containing block, resolve horizontal, apply the max-width constraint,
// re-measure height (width constraining can re-wrap content), resolve
// vertical, then apply offsets, max-height and translation.
//
// The element must re-invoke through the caller on resize, content change
// or anchor movement; nothing here observes the environment.
func (p *Positioner) Position(el *dom.Element, anchor Anchor, opts Options) Placement {
	style := el.Style()

	// Border-inclusive sizing, so max sizes constrain the border box the
	// same way the space computation measured it.
	style.SetProperty("box-sizing", "border-box")
	for _, prop := range placementProperties {
		style.RemoveProperty(prop)
	}
	p.Env.Reflow()

	cb := p.containingBlock(el)
	vw, vh := p.Env.ViewportSize()
	anchorRect := anchor.AnchorRect()

	rect := el.GetBoundingClientRect()
	h, hSpace := resolveAxis(opts.Horizontal, DefaultHorizontal, rect.Width, func(a Alignment) float64 {
		return AvailableWidth(a, anchorRect, vw, opts.Margin)
	})
	style.SetProperty("max-width", px(hSpace))
	p.Env.Reflow()

	rect = el.GetBoundingClientRect()
	v, vSpace := resolveAxis(opts.Vertical, DefaultVertical, rect.Height, func(a Alignment) float64 {
		return AvailableHeight(a, anchorRect, vh, opts.Margin)
	})

	pl := Placement{
		Horizontal: h,
		Vertical:   v,
		MaxWidth:   hSpace,
		MaxHeight:  vSpace,
		X:          horizontalOffset(h, anchorRect, cb, opts.Margin),
		Y:          verticalOffset(v, anchorRect, cb, opts.Margin),
	}
	if h == Center {
		pl.TranslateX = -50
	}
	if v == Center {
		pl.TranslateY = -50
	}

	style.SetProperty(pl.X.Edge.String(), px(pl.X.Value))
	style.SetProperty(pl.Y.Edge.String(), px(pl.Y.Value))
	style.SetProperty("max-height", px(pl.MaxHeight))
	style.SetProperty("transform", translateCSS(pl.TranslateX, pl.TranslateY))
	p.Env.Reflow()

	return pl
}

// containingBlock measures the positioning-context bounds for el. Without a
// direct query it probes: pin the element to the context's origin and read
// where it lands, then pin it to the far corner and read again. The two
// reads give the context's near and far edges in viewport coordinates.
func (p *Positioner) containingBlock(el *dom.Element) Rect {
	if q, ok := p.Env.(ContainingBlockQuerier); ok {
		if r, ok := q.ContainingBlock(el); ok {
			return r
		}
	}

	style := el.Style()

	style.SetProperty("left", "0px")
	style.SetProperty("top", "0px")
	p.Env.Reflow()
	origin := el.GetBoundingClientRect()

	style.RemoveProperty("left")
	style.RemoveProperty("top")
	style.SetProperty("right", "0px")
	style.SetProperty("bottom", "0px")
	p.Env.Reflow()
	corner := el.GetBoundingClientRect()

	style.RemoveProperty("right")
	style.RemoveProperty("bottom")
	p.Env.Reflow()

	return Rect{
		Left:   origin.Left(),
		Top:    origin.Top(),
		Right:  corner.Right(),
		Bottom: corner.Bottom(),
	}
}

// Apply writes a placement onto a style declaration in the documented write
// order: max-width, offsets, max-height, transform. Useful when a placement
// was computed with Resolve rather than Position.
func (pl Placement) Apply(style *dom.CSSStyleDeclaration) {
	style.SetProperty("max-width", px(pl.MaxWidth))
	style.SetProperty(pl.X.Edge.String(), px(pl.X.Value))
	style.SetProperty(pl.Y.Edge.String(), px(pl.Y.Value))
	style.SetProperty("max-height", px(pl.MaxHeight))
	style.SetProperty("transform", translateCSS(pl.TranslateX, pl.TranslateY))
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func translateCSS(x, y float64) string {
	return "translate(" + strconv.FormatFloat(x, 'f', -1, 64) + "%, " +
		strconv.FormatFloat(y, 'f', -1, 64) + "%)"
}
