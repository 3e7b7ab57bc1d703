// Package render paints a laid-out document into an RGBA pixel buffer:
// background fills, borders and block glyphs for text, in tree order so
// later boxes paint over earlier ones.
package render

import (
	"image"
	"image/color"

	"github.com/quadrant-newmedia/smart-position/css"
	"github.com/quadrant-newmedia/smart-position/dom"
	"github.com/quadrant-newmedia/smart-position/layout"
)

// Canvas is the rendering surface.
type Canvas struct {
	Pixels []color.RGBA
	Width  int
	Height int
}

// NewCanvas creates a white canvas with the given dimensions.
func NewCanvas(width, height int) *Canvas {
	pixels := make([]color.RGBA, width*height)
	white := color.RGBA{255, 255, 255, 255}
	for i := range pixels {
		pixels[i] = white
	}
	return &Canvas{Pixels: pixels, Width: width, Height: height}
}

// Paint draws the document's element tree onto the canvas using the
// geometry recorded by the last layout pass.
func (c *Canvas) Paint(doc *dom.Document) {
	c.paintElement(doc.Body())
}

func (c *Canvas) paintElement(el *dom.Element) {
	style := el.Style()
	if css.Keyword(style.GetPropertyValue("display")) == "none" {
		return
	}

	g := el.Geometry()
	if g != nil && g.Width > 0 && g.Height > 0 {
		if bg, ok := css.ParseColor(style.GetPropertyValue("background-color")); ok {
			c.FillRect(int(g.X), int(g.Y), int(g.Width), int(g.Height), rgba(bg))
		}
		c.paintBorders(el, g)
	}

	for _, child := range el.Children() {
		switch n := child.(type) {
		case *dom.Text:
			if g != nil {
				c.paintText(el, g, n.Data)
			}
		case *dom.Element:
			c.paintElement(n)
		}
	}
}

// paintBorders draws each border edge as a filled strip.
func (c *Canvas) paintBorders(el *dom.Element, g *dom.Geometry) {
	style := el.Style()
	col := color.RGBA{0, 0, 0, 255}
	if parsed, ok := css.ParseColor(style.GetPropertyValue("border-color")); ok {
		col = rgba(parsed)
	}

	w, _ := css.ParseLength(style.GetPropertyValue("border-width"))
	if w <= 0 {
		return
	}
	bw := int(w)
	x, y := int(g.X), int(g.Y)
	gw, gh := int(g.Width), int(g.Height)

	c.FillRect(x, y, gw, bw, col)       // top
	c.FillRect(x, y+gh-bw, gw, bw, col) // bottom
	c.FillRect(x, y, bw, gh, col)       // left
	c.FillRect(x+gw-bw, y, bw, gh, col) // right
}

// paintText draws text as glyph blocks on the same character grid the
// layout engine measures with, wrapped to the element's content box.
func (c *Canvas) paintText(el *dom.Element, g *dom.Geometry, text string) {
	col := color.RGBA{32, 32, 32, 255}
	if parsed, ok := css.ParseColor(el.Style().GetPropertyValue("color")); ok {
		col = rgba(parsed)
	}

	contentX := g.X + (g.Width-g.ContentWidth)/2
	contentY := g.Y + (g.Height-g.ContentHeight)/2

	y := contentY
	for _, line := range layout.WrapLines(text, g.ContentWidth) {
		// a slightly inset block per glyph run keeps lines distinguishable
		c.FillRect(int(contentX), int(y)+3, int(line), int(layout.LineHeight)-6, col)
		y += layout.LineHeight
	}
}

// FillRect fills a rectangle, clipped to the canvas.
func (c *Canvas) FillRect(x, y, w, h int, col color.RGBA) {
	for py := y; py < y+h; py++ {
		if py < 0 || py >= c.Height {
			continue
		}
		for px := x; px < x+w; px++ {
			if px < 0 || px >= c.Width {
				continue
			}
			c.Pixels[py*c.Width+px] = col
		}
	}
}

// At returns the pixel at (x, y), or zero when out of bounds.
func (c *Canvas) At(x, y int) color.RGBA {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return color.RGBA{}
	}
	return c.Pixels[y*c.Width+x]
}

// ToImage converts the canvas to an image.RGBA.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			img.SetRGBA(x, y, c.Pixels[y*c.Width+x])
		}
	}
	return img
}

func rgba(c css.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}
