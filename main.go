package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/quadrant-newmedia/smart-position/dom"
	"github.com/quadrant-newmedia/smart-position/layout"
	"github.com/quadrant-newmedia/smart-position/position"
	"github.com/quadrant-newmedia/smart-position/ui"
)

// demoPage is shown when no file argument is given: a dropdown-style
// overlay positioned against a button-like anchor by the page's own script.
const demoPage = `<!DOCTYPE html>
<html>
<body>
	<div style="padding: 20px">
		<span id="anchor" style="padding: 8px; border-width: 1px; background-color: silver">Open menu</span>
	</div>
	<div id="overlay" style="position: absolute; padding: 8px; border-width: 1px; background-color: yellow">
		The positioned overlay. It picks the alignment with enough room and
		never scrolls the page.
	</div>
	<script>
		smartPosition(
			document.getElementById('overlay'),
			document.getElementById('anchor'),
			{horizontal: ['start', 'end'], vertical: ['after', 'before'], margin: 4});
	</script>
</body>
</html>`

func main() {
	headless := false
	var file string
	for _, arg := range os.Args[1:] {
		if arg == "--headless" {
			headless = true
			continue
		}
		file = arg
	}

	if verbose := os.Getenv("SMARTPOSITION_DEBUG"); verbose != "" {
		l, err := zap.NewDevelopment()
		if err == nil {
			layout.SetLogger(l)
			defer l.Sync()
		}
	}

	markup := demoPage
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		markup = string(data)
	}

	doc, err := dom.ParseHTML(markup)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: parse: %v\n", err)
		os.Exit(1)
	}

	if headless {
		if err := runHeadless(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	ui.NewViewer(doc, 800, 600).Run()
}

// runHeadless lays out the document, positions the #overlay element against
// #anchor and prints the resulting placement.
func runHeadless(doc *dom.Document) error {
	engine := layout.NewEngine(doc, 800, 600)
	engine.Layout()

	overlay := doc.GetElementByID("overlay")
	anchor := doc.GetElementByID("anchor")
	if overlay == nil || anchor == nil {
		return fmt.Errorf("headless mode needs #overlay and #anchor elements")
	}

	positioner := position.NewPositioner(engine)
	pl := positioner.Position(overlay, position.ElementAnchor{Element: anchor}, position.Options{
		Horizontal: []position.Alignment{position.Start, position.End},
		Vertical:   []position.Alignment{position.After, position.Before},
		Margin:     4,
	})

	fmt.Printf("horizontal: %s\n", pl.Horizontal)
	fmt.Printf("vertical:   %s\n", pl.Vertical)
	fmt.Printf("%s: %gpx, %s: %gpx\n", pl.X.Edge, pl.X.Value, pl.Y.Edge, pl.Y.Value)
	fmt.Printf("max-width: %gpx, max-height: %gpx\n", pl.MaxWidth, pl.MaxHeight)
	fmt.Printf("style: %s\n", overlay.Style().CSSText())
	return nil
}
