package canvas

import "testing"

func newStackedStore() *ShapeStore {
	st := NewShapeStore()
	st.Add(&Shape{ID: "a", Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100})
	st.Add(&Shape{ID: "b", Kind: KindRectangle, X: 50, Y: 50, Width: 100, Height: 100})
	return st
}

func TestHitTestPrefersTopmost(t *testing.T) {
	st := newStackedStore()

	hit := st.HitTest(Point{X: 75, Y: 75})
	if hit == nil || hit.ID != "b" {
		t.Errorf("hit test failed: expected b, got %v", hit)
	}

	hit = st.HitTest(Point{X: 10, Y: 10})
	if hit == nil || hit.ID != "a" {
		t.Errorf("hit test failed: expected a, got %v", hit)
	}

	if st.HitTest(Point{X: 500, Y: 500}) != nil {
		t.Errorf("hit test failed: expected nil on empty space")
	}
}

func TestBringToFrontChangesHitTest(t *testing.T) {
	st := newStackedStore()

	st.BringToFront("a")

	hit := st.HitTest(Point{X: 75, Y: 75})
	if hit == nil || hit.ID != "a" {
		t.Errorf("z-order change failed: expected a on top, got %v", hit)
	}
}

func TestSendToBack(t *testing.T) {
	st := newStackedStore()

	st.SendToBack("b")

	if st.Shapes()[0].ID != "b" {
		t.Errorf("send to back failed: got order %v, %v", st.Shapes()[0].ID, st.Shapes()[1].ID)
	}
	hit := st.HitTest(Point{X: 75, Y: 75})
	if hit == nil || hit.ID != "a" {
		t.Errorf("send to back failed: expected a on top, got %v", hit)
	}
}

func TestSelectIsExclusive(t *testing.T) {
	st := newStackedStore()

	if !st.Select("a") {
		t.Errorf("select failed: expected a change")
	}
	if !st.Select("b") {
		t.Errorf("select failed: expected a change switching to b")
	}

	if sel := st.Selected(); sel == nil || sel.ID != "b" {
		t.Errorf("select failed: expected b selected, got %v", sel)
	}
	if st.Get("a").Selected {
		t.Errorf("select failed: a still selected")
	}

	if st.Select("b") {
		t.Errorf("select failed: re-selecting b reported a change")
	}
}

func TestSelectUnknownClearsSelection(t *testing.T) {
	st := newStackedStore()
	st.Select("a")

	if !st.Select("nope") {
		t.Errorf("clearing via unknown ID should report a change")
	}
	if st.Selected() != nil {
		t.Errorf("expected empty selection, got %v", st.Selected())
	}
}

func TestRemoveMissingIsNoop(t *testing.T) {
	st := newStackedStore()

	st.Remove("missing")

	if st.Len() != 2 {
		t.Errorf("remove failed: expected 2 shapes, got %d", st.Len())
	}
}

func TestRemoveDropsShape(t *testing.T) {
	st := newStackedStore()

	st.Remove("a")

	if st.Len() != 1 || st.Get("a") != nil {
		t.Errorf("remove failed: a still present")
	}
}
