package render

import (
	"image/color"
	"testing"

	"github.com/quadrant-newmedia/smart-position/dom"
	"github.com/quadrant-newmedia/smart-position/layout"
)

func paintDoc(t *testing.T, markup string, w, h int) *Canvas {
	t.Helper()
	doc, err := dom.ParseHTML(markup)
	if err != nil {
		t.Fatalf("ParseHTML failed: %v", err)
	}
	layout.NewEngine(doc, float64(w), float64(h)).Layout()
	c := NewCanvas(w, h)
	c.Paint(doc)
	return c
}

func TestNewCanvas_White(t *testing.T) {
	c := NewCanvas(10, 10)
	if got := c.At(5, 5); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white, got %v", got)
	}
}

func TestPaint_Background(t *testing.T) {
	c := paintDoc(t, `<body>
		<div style="width: 50px; height: 40px; background-color: red"></div>
	</body>`, 100, 100)

	red := color.RGBA{255, 0, 0, 255}
	if got := c.At(10, 10); got != red {
		t.Errorf("Expected red inside the box, got %v", got)
	}
	if got := c.At(60, 10); got == red {
		t.Error("Expected no red outside the box")
	}
}

func TestPaint_Borders(t *testing.T) {
	c := paintDoc(t, `<body>
		<div style="width: 40px; height: 40px; border-width: 2px; border-color: blue; background-color: white"></div>
	</body>`, 100, 100)

	blue := color.RGBA{0, 0, 255, 255}
	if got := c.At(0, 0); got != blue {
		t.Errorf("Expected blue border at the corner, got %v", got)
	}
	if got := c.At(20, 20); got == blue {
		t.Error("Expected interior not to be border colored")
	}
}

func TestPaint_LaterBoxesOnTop(t *testing.T) {
	c := paintDoc(t, `<body>
		<div style="position: absolute; left: 0px; top: 0px; width: 40px; height: 40px; background-color: red"></div>
		<div style="position: absolute; left: 10px; top: 10px; width: 40px; height: 40px; background-color: blue"></div>
	</body>`, 100, 100)

	if got := c.At(20, 20); got != (color.RGBA{0, 0, 255, 255}) {
		t.Errorf("Expected the later box to paint over the earlier one, got %v", got)
	}
}

func TestFillRect_Clips(t *testing.T) {
	c := NewCanvas(10, 10)
	// out-of-bounds fill must not panic or wrap
	c.FillRect(-5, -5, 30, 30, color.RGBA{1, 2, 3, 255})
	if got := c.At(0, 0); got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("Expected clipped fill to cover the canvas, got %v", got)
	}
}

func TestToImage(t *testing.T) {
	c := NewCanvas(4, 4)
	c.FillRect(1, 1, 1, 1, color.RGBA{9, 8, 7, 255})
	img := c.ToImage()
	if got := img.RGBAAt(1, 1); got != (color.RGBA{9, 8, 7, 255}) {
		t.Errorf("Expected pixel preserved, got %v", got)
	}
}
