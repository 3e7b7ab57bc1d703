package layout

import "strings"

// Fixed character metrics. The renderer draws glyph blocks on the same
// grid, so layout and paint agree about where text ends up.
const (
	CharWidth  = 8.0
	LineHeight = 16.0
)

// textLine is one laid-out line of text.
type textLine struct {
	words []string
	width float64
}

// wrapText breaks text into lines no wider than maxWidth using a greedy
// word-by-word fill. A single word wider than maxWidth gets a line of its
// own and overflows.
func wrapText(text string, maxWidth float64) []textLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []textLine
	var cur textLine
	for _, w := range words {
		wordWidth := float64(len([]rune(w))) * CharWidth
		lineWidth := cur.width
		if len(cur.words) > 0 {
			lineWidth += CharWidth // separating space
		}
		if len(cur.words) > 0 && lineWidth+wordWidth > maxWidth {
			lines = append(lines, cur)
			cur = textLine{}
			lineWidth = 0
		}
		if len(cur.words) > 0 {
			cur.width += CharWidth
		}
		cur.words = append(cur.words, w)
		cur.width += wordWidth
	}
	if len(cur.words) > 0 {
		lines = append(lines, cur)
	}
	return lines
}

// WrapLines returns the pixel widths of the lines text wraps into at
// maxWidth, for callers that draw on the same character grid.
func WrapLines(text string, maxWidth float64) []float64 {
	lines := wrapText(text, maxWidth)
	widths := make([]float64, len(lines))
	for i, l := range lines {
		widths[i] = l.width
	}
	return widths
}

// measureText returns the size of text wrapped to maxWidth.
func measureText(text string, maxWidth float64) (width, height float64) {
	lines := wrapText(text, maxWidth)
	for _, l := range lines {
		if l.width > width {
			width = l.width
		}
	}
	return width, float64(len(lines)) * LineHeight
}
