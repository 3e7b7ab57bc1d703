package dom

import "testing"

func TestRect_Edges(t *testing.T) {
	rect := Rect{X: 10, Y: 20, Width: 100, Height: 50}
	if rect.Top() != 20 {
		t.Errorf("Expected Top=20, got %v", rect.Top())
	}
	if rect.Left() != 10 {
		t.Errorf("Expected Left=10, got %v", rect.Left())
	}
	if rect.Right() != 110 {
		t.Errorf("Expected Right=110, got %v", rect.Right())
	}
	if rect.Bottom() != 70 {
		t.Errorf("Expected Bottom=70, got %v", rect.Bottom())
	}
}

func TestRect_NegativeExtents(t *testing.T) {
	rect := Rect{X: 100, Y: 20, Width: -50, Height: 30}
	if rect.Left() != 50 {
		t.Errorf("Expected Left=50 (x + negative width), got %v", rect.Left())
	}
	if rect.Right() != 100 {
		t.Errorf("Expected Right=100 (x for negative width), got %v", rect.Right())
	}

	rect = Rect{X: 10, Y: 100, Width: 50, Height: -30}
	if rect.Top() != 70 {
		t.Errorf("Expected Top=70 (y + negative height), got %v", rect.Top())
	}
	if rect.Bottom() != 100 {
		t.Errorf("Expected Bottom=100, got %v", rect.Bottom())
	}
}

func TestGetBoundingClientRect_BeforeLayout(t *testing.T) {
	el := NewElement("div")
	r := el.GetBoundingClientRect()
	if r != (Rect{}) {
		t.Errorf("Expected zero rect before layout, got %+v", r)
	}
}

func TestGetBoundingClientRect_AfterLayout(t *testing.T) {
	el := NewElement("div")
	el.SetGeometry(&Geometry{X: 5, Y: 6, Width: 70, Height: 80})
	r := el.GetBoundingClientRect()
	if r.X != 5 || r.Y != 6 || r.Width != 70 || r.Height != 80 {
		t.Errorf("Expected 5,6,70,80, got %+v", r)
	}
}
