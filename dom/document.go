package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document owns an element tree. The root is the html element; Body is the
// element layout and positioning operate inside.
type Document struct {
	root *Element
	body *Element
}

// NewDocument creates a document with an empty html/body skeleton.
func NewDocument() *Document {
	root := NewElement("html")
	body := NewElement("body")
	root.AppendChild(body)
	return &Document{root: root, body: body}
}

// DocumentElement returns the root html element.
func (d *Document) DocumentElement() *Element { return d.root }

// Body returns the body element.
func (d *Document) Body() *Element { return d.body }

// CreateElement creates a detached element owned by this document.
func (d *Document) CreateElement(tag string) *Element {
	return NewElement(tag)
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) *Text {
	return NewText(data)
}

// GetElementByID returns the first element in tree order whose id attribute
// matches, or nil.
func (d *Document) GetElementByID(id string) *Element {
	var found *Element
	d.root.Walk(func(e *Element) {
		if found == nil && e.ID() == id {
			found = e
		}
	})
	return found
}

// GetElementsByTagName returns all elements with the given tag, in tree
// order.
func (d *Document) GetElementsByTagName(tag string) []*Element {
	tag = strings.ToLower(tag)
	var out []*Element
	d.root.Walk(func(e *Element) {
		if e.TagName == tag {
			out = append(out, e)
		}
	})
	return out
}

// ParseHTML parses markup into a Document using the html5 parsing algorithm
// from golang.org/x/net/html, then converts the node tree into this
// package's element model. Comments, doctype and processing instructions
// are dropped; whitespace-only text between blocks is kept (layout decides
// what to do with it).
func ParseHTML(markup string) (*Document, error) {
	n, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, err
	}

	d := &Document{}
	var convert func(n *html.Node) Node
	convert = func(n *html.Node) Node {
		switch n.Type {
		case html.ElementNode:
			e := NewElement(n.Data)
			for _, a := range n.Attr {
				e.SetAttribute(a.Key, a.Val)
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if child := convert(c); child != nil {
					e.AppendChild(child)
				}
			}
			if n.DataAtom == atom.Body {
				d.body = e
			}
			return e
		case html.TextNode:
			return NewText(n.Data)
		}
		return nil
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if root, ok := convert(c).(*Element); ok {
				d.root = root
			}
		}
	}

	if d.root == nil {
		d.root = NewElement("html")
	}
	if d.body == nil {
		d.body = NewElement("body")
		d.root.AppendChild(d.body)
	}
	return d, nil
}
