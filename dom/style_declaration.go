package dom

import "strings"

// CSSStyleDeclaration represents an element's inline style. It keeps the
// declarations in the order they were set, and mirrors every change back
// into the element's style attribute.
type CSSStyleDeclaration struct {
	element *Element

	declarations  map[string]string
	propertyOrder []string
}

// NewCSSStyleDeclaration creates a style declaration for an element,
// initialized from its style attribute.
func NewCSSStyleDeclaration(element *Element) *CSSStyleDeclaration {
	sd := &CSSStyleDeclaration{
		element:      element,
		declarations: make(map[string]string),
	}
	if element != nil && element.HasAttribute("style") {
		sd.parseInto(element.GetAttribute("style"))
	}
	return sd
}

// CSSText returns the textual representation of the declaration block.
func (sd *CSSStyleDeclaration) CSSText() string {
	var parts []string
	for _, prop := range sd.propertyOrder {
		if v, ok := sd.declarations[prop]; ok {
			parts = append(parts, prop+": "+v)
		}
	}
	return strings.Join(parts, "; ")
}

// SetCSSText replaces all declarations with ones parsed from cssText.
func (sd *CSSStyleDeclaration) SetCSSText(cssText string) {
	sd.parseInto(cssText)
	sd.syncToAttribute()
}

// Length returns the number of properties set.
func (sd *CSSStyleDeclaration) Length() int {
	return len(sd.declarations)
}

// Item returns the property name at the given index, or "".
func (sd *CSSStyleDeclaration) Item(index int) string {
	if index < 0 || index >= len(sd.propertyOrder) {
		return ""
	}
	return sd.propertyOrder[index]
}

// GetPropertyValue returns the value of a CSS property, or "".
func (sd *CSSStyleDeclaration) GetPropertyValue(property string) string {
	return sd.declarations[normalizeCSSPropertyName(property)]
}

// SetProperty sets a CSS property. An empty value removes the property.
// Property names are normalized to kebab-case, so "maxWidth" and
// "max-width" address the same declaration.
func (sd *CSSStyleDeclaration) SetProperty(property, value string) {
	property = normalizeCSSPropertyName(property)
	if property == "" {
		return
	}
	if value == "" {
		sd.RemoveProperty(property)
		return
	}
	if _, exists := sd.declarations[property]; !exists {
		sd.propertyOrder = append(sd.propertyOrder, property)
	}
	sd.declarations[property] = value
	sd.syncToAttribute()
}

// RemoveProperty removes a CSS property and returns its old value.
func (sd *CSSStyleDeclaration) RemoveProperty(property string) string {
	property = normalizeCSSPropertyName(property)
	old, ok := sd.declarations[property]
	if !ok {
		return ""
	}
	delete(sd.declarations, property)
	for i, p := range sd.propertyOrder {
		if p == property {
			sd.propertyOrder = append(sd.propertyOrder[:i], sd.propertyOrder[i+1:]...)
			break
		}
	}
	sd.syncToAttribute()
	return old
}

// parseInto replaces the declarations with ones parsed from a style
// attribute value. It does not write back to the attribute.
func (sd *CSSStyleDeclaration) parseInto(text string) {
	sd.declarations = make(map[string]string)
	sd.propertyOrder = nil
	for _, decl := range strings.Split(text, ";") {
		decl = strings.TrimSpace(decl)
		if decl == "" {
			continue
		}
		colon := strings.Index(decl, ":")
		if colon < 0 {
			continue
		}
		prop := normalizeCSSPropertyName(strings.TrimSpace(decl[:colon]))
		value := strings.TrimSpace(decl[colon+1:])
		if prop == "" || value == "" {
			continue
		}
		if _, exists := sd.declarations[prop]; !exists {
			sd.propertyOrder = append(sd.propertyOrder, prop)
		}
		sd.declarations[prop] = value
	}
}

// syncToAttribute writes the serialized declarations into the element's
// style attribute without re-parsing them.
func (sd *CSSStyleDeclaration) syncToAttribute() {
	if sd.element == nil {
		return
	}
	text := sd.CSSText()
	e := sd.element
	for i := range e.attrs {
		if e.attrs[i].Name == "style" {
			e.attrs[i].Value = text
			return
		}
	}
	e.attrs = append(e.attrs, Attr{Name: "style", Value: text})
}

// normalizeCSSPropertyName lowercases kebab-case names and converts
// camelCase names to kebab-case ("maxWidth" -> "max-width").
func normalizeCSSPropertyName(name string) string {
	if name == "" {
		return ""
	}
	if strings.Contains(name, "-") {
		return strings.ToLower(name)
	}
	var result strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				result.WriteByte('-')
			}
			result.WriteByte(byte(r - 'A' + 'a'))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}
