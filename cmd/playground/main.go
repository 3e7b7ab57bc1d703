// Command playground is a terminal sandbox for the alignment resolver: move
// the anchor around a simulated viewport and watch which alignments get
// picked as space runs out.
package main

import (
	"fmt"
	"math"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/quadrant-newmedia/smart-position/position"
)

const (
	viewportWidth  = 800.0
	viewportHeight = 600.0

	gridCols = 80
	gridRows = 24

	elementWidth  = 220.0
	elementHeight = 140.0
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#5F5FD7")).
			Padding(0, 1)

	anchorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	elementStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98"))
	gridStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#3A3A3A"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// preference presets the h/v keys cycle through; nil exercises the
// empty-list default.
var presets = []struct {
	name       string
	alignments []position.Alignment
}{
	{"after,before", []position.Alignment{position.After, position.Before}},
	{"before,after", []position.Alignment{position.Before, position.After}},
	{"start,end", []position.Alignment{position.Start, position.End}},
	{"end,start", []position.Alignment{position.End, position.Start}},
	{"center", []position.Alignment{position.Center}},
	{"(default)", nil},
}

type model struct {
	anchorX, anchorY float64
	margin           float64
	hPreset, vPreset int
}

func newModel() model {
	return model{anchorX: viewportWidth / 2, anchorY: viewportHeight / 2, margin: 10}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	const step = 20.0
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left":
			m.anchorX = math.Max(0, m.anchorX-step)
		case "right":
			m.anchorX = math.Min(viewportWidth, m.anchorX+step)
		case "up":
			m.anchorY = math.Max(0, m.anchorY-step)
		case "down":
			m.anchorY = math.Min(viewportHeight, m.anchorY+step)
		case "h":
			m.hPreset = (m.hPreset + 1) % len(presets)
		case "v":
			m.vPreset = (m.vPreset + 1) % len(presets)
		case "+", "=":
			m.margin += 5
		case "-":
			m.margin = math.Max(0, m.margin-5)
		}
	}
	return m, nil
}

// elementRect derives the element's viewport rect from a placement, the way
// a style engine would apply it.
func elementRect(pl position.Placement) (left, top, right, bottom float64) {
	w := math.Min(elementWidth, math.Max(0, pl.MaxWidth))
	h := math.Min(elementHeight, math.Max(0, pl.MaxHeight))

	if pl.X.Edge == position.EdgeLeft {
		left = pl.X.Value
	} else {
		left = viewportWidth - pl.X.Value - w
	}
	if pl.Y.Edge == position.EdgeTop {
		top = pl.Y.Value
	} else {
		top = viewportHeight - pl.Y.Value - h
	}
	left += pl.TranslateX / 100 * w
	top += pl.TranslateY / 100 * h
	return left, top, left + w, top + h
}

func (m model) View() string {
	anchor := position.Point{X: m.anchorX, Y: m.anchorY}
	pl := position.Resolve(position.Input{
		Anchor:          anchor.AnchorRect(),
		ContainingBlock: position.Rect{Right: viewportWidth, Bottom: viewportHeight},
		ViewportWidth:   viewportWidth,
		ViewportHeight:  viewportHeight,
		Width:           elementWidth,
		Height:          elementHeight,
		Horizontal:      presets[m.hPreset].alignments,
		Vertical:        presets[m.vPreset].alignments,
		Margin:          m.margin,
	})

	left, top, right, bottom := elementRect(pl)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("smart-position playground"))
	sb.WriteString("\n")

	cellW := viewportWidth / gridCols
	cellH := viewportHeight / gridRows
	anchorCol := int(m.anchorX / cellW)
	anchorRow := int(m.anchorY / cellH)

	for row := 0; row < gridRows; row++ {
		for col := 0; col < gridCols; col++ {
			cx := (float64(col) + 0.5) * cellW
			cy := (float64(row) + 0.5) * cellH
			switch {
			case row == anchorRow && col == anchorCol:
				sb.WriteString(anchorStyle.Render("A"))
			case cx >= left && cx < right && cy >= top && cy < bottom:
				sb.WriteString(elementStyle.Render("#"))
			default:
				sb.WriteString(gridStyle.Render("."))
			}
		}
		sb.WriteString("\n")
	}

	sb.WriteString(statusStyle.Render(fmt.Sprintf(
		"anchor (%g, %g)  margin %g  h[%s] -> %s  v[%s] -> %s",
		m.anchorX, m.anchorY, m.margin,
		presets[m.hPreset].name, pl.Horizontal,
		presets[m.vPreset].name, pl.Vertical)))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(fmt.Sprintf(
		"%s: %.0fpx  %s: %.0fpx  max-width %.0fpx  max-height %.0fpx  translate(%g%%, %g%%)",
		pl.X.Edge, pl.X.Value, pl.Y.Edge, pl.Y.Value,
		pl.MaxWidth, pl.MaxHeight, pl.TranslateX, pl.TranslateY)))
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("arrows: move anchor  h/v: cycle preferences  +/-: margin  q: quit"))
	return sb.String()
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
