package js

import (
	"github.com/dop251/goja"

	"github.com/quadrant-newmedia/smart-position/dom"
	"github.com/quadrant-newmedia/smart-position/layout"
	"github.com/quadrant-newmedia/smart-position/position"
)

// Binder wires a document and layout engine into a runtime: document,
// window and the positioning entry points. Element wrappers are cached so
// scripts see a stable object identity per element.
type Binder struct {
	rt     *Runtime
	engine *layout.Engine

	objects  map[*dom.Element]*goja.Object
	elements map[*goja.Object]*dom.Element
}

// NewBinder creates a binder for the engine's document.
func NewBinder(rt *Runtime, engine *layout.Engine) *Binder {
	return &Binder{
		rt:       rt,
		engine:   engine,
		objects:  make(map[*dom.Element]*goja.Object),
		elements: make(map[*goja.Object]*dom.Element),
	}
}

// Install sets up the document and window globals and the positioning API.
func (b *Binder) Install() {
	vm := b.rt.VM()
	vm.Set("document", b.documentObject())
	vm.Set("window", b.windowObject())
	b.setupPositionAPI()
}

// RunScripts executes the text of every script element in the document, in
// tree order. Errors are collected on the runtime, not returned.
func (b *Binder) RunScripts() {
	for _, s := range b.engine.Document().GetElementsByTagName("script") {
		code := s.TextContent()
		if code == "" {
			continue
		}
		b.rt.Execute(code)
	}
}

// ElementObject returns the cached script wrapper for an element.
func (b *Binder) ElementObject(el *dom.Element) *goja.Object {
	if obj, ok := b.objects[el]; ok {
		return obj
	}
	vm := b.rt.VM()
	obj := vm.NewObject()

	obj.Set("tagName", el.TagName)
	obj.DefineAccessorProperty("id",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return vm.ToValue(el.ID()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("getAttribute", func(name string) goja.Value {
		if !el.HasAttribute(name) {
			return goja.Null()
		}
		return vm.ToValue(el.GetAttribute(name))
	})
	obj.Set("setAttribute", func(name, value string) {
		el.SetAttribute(name, value)
	})
	obj.Set("appendChild", func(child goja.Value) goja.Value {
		if childEl, ok := b.elementFor(child); ok {
			if err := el.AppendChildWithError(childEl); err != nil {
				panic(vm.NewGoError(err))
			}
		}
		return child
	})
	obj.Set("getBoundingClientRect", func() *goja.Object {
		return b.rectObject(el.GetBoundingClientRect())
	})

	obj.DefineAccessorProperty("textContent",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return vm.ToValue(el.TextContent()) }),
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) > 0 {
				el.SetTextContent(call.Arguments[0].String())
			}
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)

	obj.Set("style", b.styleObject(el))

	b.objects[el] = obj
	b.elements[obj] = el
	return obj
}

// elementFor maps a script value back to its element.
func (b *Binder) elementFor(v goja.Value) (*dom.Element, bool) {
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	el, ok := b.elements[obj]
	return el, ok
}

func (b *Binder) rectObject(r dom.Rect) *goja.Object {
	vm := b.rt.VM()
	obj := vm.NewObject()
	obj.Set("x", r.X)
	obj.Set("y", r.Y)
	obj.Set("width", r.Width)
	obj.Set("height", r.Height)
	obj.Set("top", r.Top())
	obj.Set("right", r.Right())
	obj.Set("bottom", r.Bottom())
	obj.Set("left", r.Left())
	return obj
}

// style properties exposed as direct accessors on the style wrapper, in
// addition to setProperty/getPropertyValue. camelCase names map onto the
// declaration's kebab-case properties.
var styleAccessorProperties = []string{
	"left", "right", "top", "bottom",
	"width", "height", "maxWidth", "maxHeight",
	"transform", "boxSizing", "position", "display",
}

func (b *Binder) styleObject(el *dom.Element) *goja.Object {
	vm := b.rt.VM()
	obj := vm.NewObject()
	for _, name := range styleAccessorProperties {
		prop := name
		obj.DefineAccessorProperty(prop,
			vm.ToValue(func(goja.FunctionCall) goja.Value {
				return vm.ToValue(el.Style().GetPropertyValue(prop))
			}),
			vm.ToValue(func(call goja.FunctionCall) goja.Value {
				if len(call.Arguments) > 0 {
					el.Style().SetProperty(prop, call.Arguments[0].String())
				}
				return goja.Undefined()
			}),
			goja.FLAG_FALSE, goja.FLAG_TRUE)
	}
	obj.Set("setProperty", func(prop, value string) {
		el.Style().SetProperty(prop, value)
	})
	obj.Set("getPropertyValue", func(prop string) string {
		return el.Style().GetPropertyValue(prop)
	})
	obj.Set("removeProperty", func(prop string) string {
		return el.Style().RemoveProperty(prop)
	})
	obj.DefineAccessorProperty("cssText",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return vm.ToValue(el.Style().CSSText()) }),
		vm.ToValue(func(call goja.FunctionCall) goja.Value {
			if len(call.Arguments) > 0 {
				el.Style().SetCSSText(call.Arguments[0].String())
			}
			return goja.Undefined()
		}),
		goja.FLAG_FALSE, goja.FLAG_TRUE)
	return obj
}

func (b *Binder) documentObject() *goja.Object {
	vm := b.rt.VM()
	doc := b.engine.Document()
	obj := vm.NewObject()
	obj.Set("getElementById", func(id string) goja.Value {
		el := doc.GetElementByID(id)
		if el == nil {
			return goja.Null()
		}
		return b.ElementObject(el)
	})
	obj.Set("createElement", func(tag string) *goja.Object {
		return b.ElementObject(doc.CreateElement(tag))
	})
	obj.DefineAccessorProperty("body",
		vm.ToValue(func(goja.FunctionCall) goja.Value { return b.ElementObject(doc.Body()) }),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	return obj
}

func (b *Binder) windowObject() *goja.Object {
	vm := b.rt.VM()
	obj := vm.NewObject()
	obj.DefineAccessorProperty("innerWidth",
		vm.ToValue(func(goja.FunctionCall) goja.Value {
			w, _ := b.engine.ViewportSize()
			return vm.ToValue(w)
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	obj.DefineAccessorProperty("innerHeight",
		vm.ToValue(func(goja.FunctionCall) goja.Value {
			_, h := b.engine.ViewportSize()
			return vm.ToValue(h)
		}),
		nil, goja.FLAG_FALSE, goja.FLAG_TRUE)
	return obj
}

// anchorFor interprets a script anchor value: an element, or an {x, y}
// point object.
func (b *Binder) anchorFor(v goja.Value) (position.Anchor, bool) {
	if el, ok := b.elementFor(v); ok {
		return position.ElementAnchor{Element: el}, true
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil, false
	}
	x := obj.Get("x")
	y := obj.Get("y")
	if x == nil || y == nil {
		return nil, false
	}
	return position.Point{X: x.ToFloat(), Y: y.ToFloat()}, true
}
