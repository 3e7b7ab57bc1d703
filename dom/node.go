package dom

import "strings"

// Node is one node in the element tree: either an *Element or a *Text.
type Node interface {
	Parent() *Element
	setParent(*Element)
}

// Text is a run of character data inside an element.
type Text struct {
	parent *Element
	Data   string
}

// NewText creates a text node with the given data.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// Parent returns the element containing this text node, or nil.
func (t *Text) Parent() *Element { return t.parent }

func (t *Text) setParent(p *Element) { t.parent = p }

// Attr is a single element attribute. Attribute order is preserved.
type Attr struct {
	Name  string
	Value string
}

// Element is an element node: tag, ordered attributes, inline style,
// children and the geometry the layout engine computed for it.
type Element struct {
	TagName string

	parent   *Element
	children []Node

	attrs []Attr
	style *CSSStyleDeclaration

	geometry     *Geometry
	offsetParent *Element
}

// NewElement creates a detached element with the given tag name, lowercased.
func NewElement(tag string) *Element {
	return &Element{TagName: strings.ToLower(tag)}
}

// Parent returns the parent element, or nil for a detached or root element.
func (e *Element) Parent() *Element { return e.parent }

func (e *Element) setParent(p *Element) { e.parent = p }

// Children returns the child nodes in order. The returned slice is the
// element's own; callers must not modify it.
func (e *Element) Children() []Node { return e.children }

// ChildElements returns only the element children, in order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			out = append(out, el)
		}
	}
	return out
}

// AppendChild adds n as the last child of e, detaching it from any previous
// parent first. Insertions that would produce a cycle are silently dropped;
// use AppendChildWithError to observe them.
func (e *Element) AppendChild(n Node) {
	e.AppendChildWithError(n)
}

// AppendChildWithError adds n as the last child of e. It returns a
// HierarchyRequestError if n is e or an ancestor of e, which would make the
// tree cyclic.
func (e *Element) AppendChildWithError(n Node) error {
	if el, ok := n.(*Element); ok && el.isInclusiveAncestor(e) {
		return ErrHierarchyRequest("the new child element contains the parent")
	}
	if p := n.Parent(); p != nil {
		p.RemoveChild(n)
	}
	n.setParent(e)
	e.children = append(e.children, n)
	return nil
}

// isInclusiveAncestor reports whether e is el or one of its ancestors.
func (e *Element) isInclusiveAncestor(el *Element) bool {
	for p := el; p != nil; p = p.Parent() {
		if p == e {
			return true
		}
	}
	return false
}

// RemoveChild detaches n from e. It returns a NotFoundError if n is not a
// child of e.
func (e *Element) RemoveChild(n Node) error {
	for i, c := range e.children {
		if c == n {
			e.children = append(e.children[:i], e.children[i+1:]...)
			n.setParent(nil)
			return nil
		}
	}
	return ErrNotFound("node to be removed is not a child of this element")
}

// TextContent returns the concatenated text data of the element's subtree.
func (e *Element) TextContent() string {
	var sb strings.Builder
	e.appendText(&sb)
	return sb.String()
}

func (e *Element) appendText(sb *strings.Builder) {
	for _, c := range e.children {
		switch n := c.(type) {
		case *Text:
			sb.WriteString(n.Data)
		case *Element:
			n.appendText(sb)
		}
	}
}

// SetTextContent replaces the element's children with a single text node.
// An empty string just empties the element.
func (e *Element) SetTextContent(data string) {
	for _, c := range e.children {
		c.setParent(nil)
	}
	e.children = nil
	if data != "" {
		e.AppendChild(NewText(data))
	}
}

// Walk calls fn for e and every descendant element, in tree order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		if el, ok := c.(*Element); ok {
			el.Walk(fn)
		}
	}
}

// GetAttribute returns the attribute's value, or "" when absent.
func (e *Element) GetAttribute(name string) string {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	name = strings.ToLower(name)
	for _, a := range e.attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// SetAttribute sets an attribute, replacing any existing value in place so
// attribute order is stable. Setting "style" re-parses the inline style
// declaration.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	found := false
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs[i].Value = value
			found = true
			break
		}
	}
	if !found {
		e.attrs = append(e.attrs, Attr{Name: name, Value: value})
	}
	if name == "style" && e.style != nil {
		e.style.parseInto(value)
	}
}

// RemoveAttribute removes an attribute if present.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i := range e.attrs {
		if e.attrs[i].Name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			break
		}
	}
	if name == "style" && e.style != nil {
		e.style.parseInto("")
	}
}

// Attributes returns the element's attributes in document order. The
// returned slice is the element's own; callers must not modify it.
func (e *Element) Attributes() []Attr { return e.attrs }

// ID returns the element's id attribute.
func (e *Element) ID() string { return e.GetAttribute("id") }

// Style returns the element's inline style declaration, creating it from
// the style attribute on first access.
func (e *Element) Style() *CSSStyleDeclaration {
	if e.style == nil {
		e.style = NewCSSStyleDeclaration(e)
	}
	return e.style
}

// Geometry returns the layout-computed geometry, or nil before layout.
func (e *Element) Geometry() *Geometry { return e.geometry }

// SetGeometry records the element's computed geometry. The layout engine
// calls this; nothing else should.
func (e *Element) SetGeometry(g *Geometry) { e.geometry = g }

// OffsetParent returns the nearest positioned ancestor as determined by the
// last layout, or nil.
func (e *Element) OffsetParent() *Element { return e.offsetParent }

// SetOffsetParent records the nearest positioned ancestor. Set by layout.
func (e *Element) SetOffsetParent(p *Element) { e.offsetParent = p }

// GetBoundingClientRect returns the element's border box in viewport
// coordinates. Before any layout it returns a zero rect.
func (e *Element) GetBoundingClientRect() Rect {
	if e.geometry == nil {
		return Rect{}
	}
	return e.geometry.BorderBox()
}
