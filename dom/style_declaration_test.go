package dom

import "testing"

func TestStyle_SetAndGet(t *testing.T) {
	el := NewElement("div")
	style := el.Style()

	style.SetProperty("max-width", "380px")
	style.SetProperty("left", "410px")

	if got := style.GetPropertyValue("max-width"); got != "380px" {
		t.Errorf("Expected 380px, got %q", got)
	}
	if got := style.Length(); got != 2 {
		t.Errorf("Expected 2 properties, got %d", got)
	}
}

func TestStyle_CamelCaseNormalization(t *testing.T) {
	el := NewElement("div")
	style := el.Style()

	style.SetProperty("maxWidth", "100px")
	if got := style.GetPropertyValue("max-width"); got != "100px" {
		t.Errorf("Expected camelCase and kebab-case to address the same property, got %q", got)
	}
	style.SetProperty("max-width", "200px")
	if got := style.GetPropertyValue("maxWidth"); got != "200px" {
		t.Errorf("Expected 200px, got %q", got)
	}
	if style.Length() != 1 {
		t.Errorf("Expected a single declaration, got %d", style.Length())
	}
}

func TestStyle_RemoveProperty(t *testing.T) {
	el := NewElement("div")
	style := el.Style()
	style.SetProperty("top", "10px")

	if old := style.RemoveProperty("top"); old != "10px" {
		t.Errorf("Expected old value 10px, got %q", old)
	}
	if got := style.GetPropertyValue("top"); got != "" {
		t.Errorf("Expected removed property to read empty, got %q", got)
	}
	if old := style.RemoveProperty("top"); old != "" {
		t.Errorf("Expected removing absent property to return empty, got %q", old)
	}
}

func TestStyle_EmptyValueRemoves(t *testing.T) {
	el := NewElement("div")
	style := el.Style()
	style.SetProperty("left", "5px")
	style.SetProperty("left", "")
	if style.Length() != 0 {
		t.Errorf("Expected empty value to remove the property, got %d declarations", style.Length())
	}
}

func TestStyle_CSSTextPreservesOrder(t *testing.T) {
	el := NewElement("div")
	style := el.Style()
	style.SetProperty("position", "absolute")
	style.SetProperty("left", "10px")
	style.SetProperty("top", "20px")

	want := "position: absolute; left: 10px; top: 20px"
	if got := style.CSSText(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStyle_SyncsToAttribute(t *testing.T) {
	el := NewElement("div")
	el.Style().SetProperty("left", "1px")
	if got := el.GetAttribute("style"); got != "left: 1px" {
		t.Errorf("Expected style attribute synced, got %q", got)
	}
}

func TestStyle_InitializedFromAttribute(t *testing.T) {
	el := NewElement("div")
	el.SetAttribute("style", "position: absolute; max-width: 50px")
	if got := el.Style().GetPropertyValue("position"); got != "absolute" {
		t.Errorf("Expected absolute, got %q", got)
	}
	if got := el.Style().GetPropertyValue("max-width"); got != "50px" {
		t.Errorf("Expected 50px, got %q", got)
	}
}

func TestStyle_SetCSSText(t *testing.T) {
	el := NewElement("div")
	style := el.Style()
	style.SetProperty("left", "1px")
	style.SetCSSText("top: 2px; right: 3px")

	if got := style.GetPropertyValue("left"); got != "" {
		t.Errorf("Expected old declarations dropped, got left=%q", got)
	}
	if got := style.GetPropertyValue("right"); got != "3px" {
		t.Errorf("Expected 3px, got %q", got)
	}
	if got := style.Item(0); got != "top" {
		t.Errorf("Expected first property top, got %q", got)
	}
}
