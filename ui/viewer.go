// Package ui provides a small fyne viewer: it lays out a document, runs its
// scripts, paints the result and lets the user change the viewport size and
// reposition.
package ui

import (
	"image"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/quadrant-newmedia/smart-position/dom"
	"github.com/quadrant-newmedia/smart-position/js"
	"github.com/quadrant-newmedia/smart-position/layout"
	"github.com/quadrant-newmedia/smart-position/render"
)

// Viewer shows a rendered document in a window.
type Viewer struct {
	app    fyne.App
	window fyne.Window

	engine *layout.Engine
	rt     *js.Runtime
	binder *js.Binder

	image       *fynecanvas.Image
	widthEntry  *widget.Entry
	heightEntry *widget.Entry
}

// NewViewer creates a viewer for doc with an initial viewport size. The
// document's scripts run once against the first layout; the Reposition
// button reruns them, which is how pages re-invoke positioning after a
// viewport change.
func NewViewer(doc *dom.Document, width, height float64) *Viewer {
	v := &Viewer{
		app:    app.New(),
		engine: layout.NewEngine(doc, width, height),
		rt:     js.NewRuntime(),
	}
	v.window = v.app.NewWindow("smart-position viewer")
	v.binder = js.NewBinder(v.rt, v.engine)
	v.binder.Install()

	v.engine.Layout()
	v.binder.RunScripts()

	v.image = fynecanvas.NewImageFromImage(v.renderImage())
	v.image.FillMode = fynecanvas.ImageFillOriginal

	v.widthEntry = widget.NewEntry()
	v.widthEntry.SetText(strconv.Itoa(int(width)))
	v.heightEntry = widget.NewEntry()
	v.heightEntry.SetText(strconv.Itoa(int(height)))

	reposition := widget.NewButton("Reposition", v.reposition)

	controls := container.NewHBox(
		widget.NewLabel("Viewport:"),
		v.widthEntry,
		widget.NewLabel("x"),
		v.heightEntry,
		reposition,
	)
	v.window.SetContent(container.NewBorder(controls, nil, nil, nil, v.image))
	v.window.Resize(fyne.NewSize(float32(width), float32(height)+60))
	return v
}

// reposition applies the entered viewport size, relays and reruns the
// page's scripts so overlays follow their anchors.
func (v *Viewer) reposition() {
	if w, err := strconv.ParseFloat(v.widthEntry.Text, 64); err == nil && w > 0 {
		v.engine.ViewportWidth = w
	}
	if h, err := strconv.ParseFloat(v.heightEntry.Text, 64); err == nil && h > 0 {
		v.engine.ViewportHeight = h
	}
	v.engine.Layout()
	v.binder.RunScripts()
	v.image.Image = v.renderImage()
	v.image.Refresh()
}

func (v *Viewer) renderImage() *image.RGBA {
	w, h := v.engine.ViewportSize()
	canvas := render.NewCanvas(int(w), int(h))
	canvas.Paint(v.engine.Document())
	return canvas.ToImage()
}

// Run shows the window and enters the UI event loop.
func (v *Viewer) Run() {
	v.window.ShowAndRun()
}
