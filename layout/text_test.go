package layout

import "testing"

func TestWrapText_SingleLine(t *testing.T) {
	lines := wrapText("aaaa bbbb cccc", 200)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	// 3 words of 32px plus 2 spaces of 8px
	if lines[0].width != 112 {
		t.Errorf("Expected width 112, got %v", lines[0].width)
	}
}

func TestWrapText_Wraps(t *testing.T) {
	// two 32px words plus a space is 72px: over 70 they go one per line
	lines := wrapText("aaaa bbbb cccc", 70)
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	for i, l := range lines {
		if l.width != 32 {
			t.Errorf("Expected line %d width 32, got %v", i, l.width)
		}
	}
}

func TestWrapText_LongWordOverflows(t *testing.T) {
	lines := wrapText("abcdefghij", 40)
	if len(lines) != 1 {
		t.Fatalf("Expected 1 line, got %d", len(lines))
	}
	if lines[0].width != 80 {
		t.Errorf("Expected an unbreakable 80px word, got %v", lines[0].width)
	}
}

func TestWrapText_Whitespace(t *testing.T) {
	if lines := wrapText("  \n \t ", 100); lines != nil {
		t.Errorf("Expected no lines for whitespace, got %v", lines)
	}
}

func TestMeasureText(t *testing.T) {
	w, h := measureText("aaaa bbbb cccc", 70)
	if w != 32 {
		t.Errorf("Expected width 32, got %v", w)
	}
	if h != 3*LineHeight {
		t.Errorf("Expected height %v, got %v", 3*LineHeight, h)
	}
}
