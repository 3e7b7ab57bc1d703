package layout

import (
	"github.com/quadrant-newmedia/smart-position/css"
	"github.com/quadrant-newmedia/smart-position/dom"
)

// length is an optional pixel value.
type length struct {
	value float64
	set   bool
}

// boxStyle is the subset of CSS an element's layout depends on, read from
// its inline style with tag-based defaults.
type boxStyle struct {
	display  string // "block", "inline-block", "none"
	position string // "static", "relative", "absolute", "fixed"

	width, height        length
	minWidth, maxWidth   length
	minHeight, maxHeight length

	marginTop, marginRight, marginBottom, marginLeft     float64
	paddingTop, paddingRight, paddingBottom, paddingLeft float64
	borderTop, borderRight, borderBottom, borderLeft     float64

	left, right, top, bottom length

	// translate percentages of the element's own border box
	translateX, translateY float64

	borderBox bool // box-sizing: border-box
}

// blockTags are elements that default to display:block.
var blockTags = map[string]bool{
	"html": true, "body": true, "div": true, "p": true, "section": true,
	"article": true, "header": true, "footer": true, "nav": true,
	"main": true, "aside": true, "ul": true, "ol": true, "li": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"pre": true, "blockquote": true, "form": true, "table": true,
}

// hiddenTags are elements that never generate boxes.
var hiddenTags = map[string]bool{
	"head": true, "script": true, "style": true, "title": true,
	"meta": true, "link": true, "base": true,
}

func defaultDisplay(tag string) string {
	switch {
	case hiddenTags[tag]:
		return "none"
	case blockTags[tag]:
		return "block"
	}
	return "inline-block"
}

func readLength(style *dom.CSSStyleDeclaration, prop string) length {
	if v, ok := css.ParseLength(style.GetPropertyValue(prop)); ok {
		return length{value: v, set: true}
	}
	return length{}
}

// readEdges reads a per-side pixel property group ("margin-top" etc.) with a
// single-value shorthand fallback.
func readEdges(style *dom.CSSStyleDeclaration, shorthand string, top, right, bottom, left *float64) {
	base := 0.0
	if v, ok := css.ParseLength(style.GetPropertyValue(shorthand)); ok {
		base = v
	}
	*top, *right, *bottom, *left = base, base, base, base
	if v := readLength(style, shorthand+"-top"); v.set {
		*top = v.value
	}
	if v := readLength(style, shorthand+"-right"); v.set {
		*right = v.value
	}
	if v := readLength(style, shorthand+"-bottom"); v.set {
		*bottom = v.value
	}
	if v := readLength(style, shorthand+"-left"); v.set {
		*left = v.value
	}
}

func readStyle(el *dom.Element) boxStyle {
	style := el.Style()
	s := boxStyle{
		display:  defaultDisplay(el.TagName),
		position: "static",
	}

	if d := css.Keyword(style.GetPropertyValue("display")); d != "" {
		s.display = d
	}
	if p := css.Keyword(style.GetPropertyValue("position")); p != "" {
		s.position = p
	}
	s.borderBox = css.Keyword(style.GetPropertyValue("box-sizing")) == "border-box"

	s.width = readLength(style, "width")
	s.height = readLength(style, "height")
	s.minWidth = readLength(style, "min-width")
	s.maxWidth = readLength(style, "max-width")
	s.minHeight = readLength(style, "min-height")
	s.maxHeight = readLength(style, "max-height")

	readEdges(style, "margin", &s.marginTop, &s.marginRight, &s.marginBottom, &s.marginLeft)
	readEdges(style, "padding", &s.paddingTop, &s.paddingRight, &s.paddingBottom, &s.paddingLeft)
	readEdges(style, "border-width", &s.borderTop, &s.borderRight, &s.borderBottom, &s.borderLeft)

	s.left = readLength(style, "left")
	s.right = readLength(style, "right")
	s.top = readLength(style, "top")
	s.bottom = readLength(style, "bottom")

	if x, y, ok := css.ParseTranslate(style.GetPropertyValue("transform")); ok {
		s.translateX, s.translateY = x, y
	}
	return s
}

// positioned reports whether the element establishes a positioning context.
func (s boxStyle) positioned() bool {
	return s.position != "static"
}

// outOfFlow reports whether the element is taken out of normal flow.
func (s boxStyle) outOfFlow() bool {
	return s.position == "absolute" || s.position == "fixed"
}

// horizontalExtras is the non-content horizontal extent: borders + padding.
func (s boxStyle) horizontalExtras() float64 {
	return s.borderLeft + s.borderRight + s.paddingLeft + s.paddingRight
}

func (s boxStyle) verticalExtras() float64 {
	return s.borderTop + s.borderBottom + s.paddingTop + s.paddingBottom
}

// contentWidthFor converts a specified width value to a content width,
// honoring box-sizing.
func (s boxStyle) contentWidthFor(specified float64) float64 {
	if s.borderBox {
		specified -= s.horizontalExtras()
	}
	if specified < 0 {
		return 0
	}
	return specified
}

func (s boxStyle) contentHeightFor(specified float64) float64 {
	if s.borderBox {
		specified -= s.verticalExtras()
	}
	if specified < 0 {
		return 0
	}
	return specified
}

// clampContentWidth applies min-width/max-width to a content width.
func (s boxStyle) clampContentWidth(w float64) float64 {
	if s.maxWidth.set && w > s.contentWidthFor(s.maxWidth.value) {
		w = s.contentWidthFor(s.maxWidth.value)
	}
	if s.minWidth.set && w < s.contentWidthFor(s.minWidth.value) {
		w = s.contentWidthFor(s.minWidth.value)
	}
	if w < 0 {
		return 0
	}
	return w
}

// clampContentHeight applies min-height/max-height to a content height.
func (s boxStyle) clampContentHeight(h float64) float64 {
	if s.maxHeight.set && h > s.contentHeightFor(s.maxHeight.value) {
		h = s.contentHeightFor(s.maxHeight.value)
	}
	if s.minHeight.set && h < s.contentHeightFor(s.minHeight.value) {
		h = s.contentHeightFor(s.minHeight.value)
	}
	if h < 0 {
		return 0
	}
	return h
}
