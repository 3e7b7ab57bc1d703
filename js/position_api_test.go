package js

import (
	"testing"

	"github.com/quadrant-newmedia/smart-position/position"
)

func TestValidateAlignmentsBinding(t *testing.T) {
	rt, _ := setupPage(t, `<body></body>`)

	v, err := rt.Execute(`
		var r = validateAlignments(['after', 'middle', 'before', 'bogus']);
		r.valid.join(',') + '|' + r.invalid.join(',')
	`)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if v.String() != "after,before|middle,bogus" {
		t.Errorf("Expected partition after,before|middle,bogus, got %q", v.String())
	}
}

func TestValidateAlignmentsBinding_NeverThrows(t *testing.T) {
	rt, _ := setupPage(t, `<body></body>`)
	if _, err := rt.Execute(`validateAlignments(['middle'])`); err != nil {
		t.Errorf("Expected no error for invalid tokens, got %v", err)
	}
	if _, err := rt.Execute(`validateAlignments([])`); err != nil {
		t.Errorf("Expected no error for an empty list, got %v", err)
	}
}

func TestSmartPosition_ElementAnchor(t *testing.T) {
	rt, binder := setupPage(t, `<body>
		<div style="height: 100px"></div>
		<span id="anchor" style="display: inline-block; width: 80px; height: 30px"></span>
		<div id="overlay" style="position: absolute">content here</div>
	</body>`)

	_, err := rt.Execute(`
		smartPosition(
			document.getElementById('overlay'),
			document.getElementById('anchor'),
			{horizontal: ['start'], vertical: ['after'], margin: 4})
	`)
	if err != nil {
		t.Fatalf("smartPosition failed: %v", err)
	}

	overlay := binder.engine.Document().GetElementByID("overlay")
	style := overlay.Style()
	if got := style.GetPropertyValue("box-sizing"); got != "border-box" {
		t.Errorf("Expected border-box sizing, got %q", got)
	}
	if style.GetPropertyValue("left") == "" || style.GetPropertyValue("right") != "" {
		t.Errorf("Expected a left offset only, got left=%q right=%q",
			style.GetPropertyValue("left"), style.GetPropertyValue("right"))
	}
	// after + margin 4: below the 130px anchor bottom
	if got := style.GetPropertyValue("top"); got != "134px" {
		t.Errorf("Expected top 134px, got %q", got)
	}
}

func TestSmartPosition_PointAnchor(t *testing.T) {
	rt, binder := setupPage(t, `<body>
		<div id="overlay" style="position: absolute">content</div>
	</body>`)

	_, err := rt.Execute(`
		smartPosition(
			document.getElementById('overlay'),
			{x: 400, y: 300},
			{horizontal: 'center', vertical: 'center'})
	`)
	if err != nil {
		t.Fatalf("smartPosition failed: %v", err)
	}

	style := binder.engine.Document().GetElementByID("overlay").Style()
	if got := style.GetPropertyValue("left"); got != "400px" {
		t.Errorf("Expected left 400px, got %q", got)
	}
	if got := style.GetPropertyValue("transform"); got != "translate(-50%, -50%)" {
		t.Errorf("Expected centering translate, got %q", got)
	}
}

func TestSmartPosition_InvalidTokensIgnored(t *testing.T) {
	rt, binder := setupPage(t, `<body>
		<div id="overlay" style="position: absolute">content</div>
	</body>`)

	// an invalid token is warned about and dropped, never thrown
	_, err := rt.Execute(`
		smartPosition(
			document.getElementById('overlay'),
			{x: 100, y: 100},
			{horizontal: ['middle', 'after'], vertical: ['after']})
	`)
	if err != nil {
		t.Fatalf("Expected invalid tokens to be ignored, got %v", err)
	}

	// the surviving preference is used: after puts the overlay's left edge
	// at the anchor
	style := binder.engine.Document().GetElementByID("overlay").Style()
	if got := style.GetPropertyValue("left"); got != "100px" {
		t.Errorf("Expected left 100px from the after alignment, got %q", got)
	}
}

func TestSmartPosition_BadArgumentsThrow(t *testing.T) {
	rt, _ := setupPage(t, `<body></body>`)
	if _, err := rt.Execute(`smartPosition()`); err == nil {
		t.Error("Expected a TypeError for missing arguments")
	}
	if _, err := rt.Execute(`smartPosition({}, {x: 0, y: 0}, {})`); err == nil {
		t.Error("Expected a TypeError for a non-element target")
	}
}

func TestAlignmentListParsing(t *testing.T) {
	rt, binder := setupPage(t, `<body></body>`)

	// space-separated string form
	got := binder.alignmentList(rt.VM().ToValue("after before"), "horizontal")
	if len(got) != 2 || got[0] != position.After || got[1] != position.Before {
		t.Errorf("Expected [after before], got %v", got)
	}

	if got := binder.alignmentList(nil, "vertical"); got != nil {
		t.Errorf("Expected nil for a missing option, got %v", got)
	}
}
