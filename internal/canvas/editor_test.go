package canvas

import "testing"

func TestEditorFiresEachCallbackAtMostOnce(t *testing.T) {
	e := NewEditor()

	var transforms, pointers int
	e.OnTransformChange = func(Transform) { transforms++ }
	e.OnPointerWorld = func(Point) { pointers++ }

	e.SetMode(ModePan)
	e.Handle(Event{Kind: EventPointerDown, X: 100, Y: 100})
	e.Handle(Event{Kind: EventPointerMove, X: 120, Y: 110})

	if transforms != 1 {
		t.Errorf("expected 1 transform callback, got %d", transforms)
	}
	if pointers != 1 {
		t.Errorf("expected 1 pointer callback, got %d", pointers)
	}
}

func TestEditorModeCallbackOnlyOnChange(t *testing.T) {
	e := NewEditor()

	var modes []Mode
	e.OnModeChange = func(m Mode) { modes = append(modes, m) }

	e.SetMode(ModeDraw)
	e.SetMode(ModeDraw)
	e.SetMode(ModeSelect)

	if len(modes) != 2 || modes[0] != ModeDraw || modes[1] != ModeSelect {
		t.Errorf("mode callbacks failed: got %v", modes)
	}
}

func TestEditorSelectionCallbackCarriesShape(t *testing.T) {
	e := NewEditor()
	e.Store().Add(&Shape{ID: "a", Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100})

	var gotSel []*Shape
	e.OnSelectionChange = func(s *Shape) { gotSel = append(gotSel, s) }

	e.Handle(Event{Kind: EventPointerDown, X: 50, Y: 50})
	e.Handle(Event{Kind: EventPointerUp})
	e.DeleteSelected()

	if len(gotSel) != 2 {
		t.Fatalf("expected 2 selection callbacks, got %d", len(gotSel))
	}
	if gotSel[0] == nil || gotSel[0].ID != "a" {
		t.Errorf("select callback failed: got %v", gotSel[0])
	}
	if gotSel[1] != nil {
		t.Errorf("delete callback should carry nil, got %v", gotSel[1])
	}
}

func TestDeleteSelectedWithoutSelectionIsNoop(t *testing.T) {
	e := NewEditor()
	e.Store().Add(&Shape{ID: "a", Kind: KindRectangle, X: 0, Y: 0, Width: 50, Height: 50})

	fired := false
	e.OnSelectionChange = func(*Shape) { fired = true }

	e.DeleteSelected()

	if e.Store().Len() != 1 || fired {
		t.Errorf("no-op delete failed: len=%d fired=%v", e.Store().Len(), fired)
	}
}

func TestApplyStyleToSelected(t *testing.T) {
	e := NewEditor()
	e.Store().Add(&Shape{ID: "a", Kind: KindRectangle, Width: 50, Height: 50, Style: Style{Fill: "#111111"}})
	e.Store().Add(&Shape{ID: "b", Kind: KindRectangle, Width: 50, Height: 50, Style: Style{Fill: "#111111"}})
	e.Store().Select("a")

	fill := "#ff0000"
	e.ApplyStyleToSelected(StylePatch{Fill: &fill})

	if e.Store().Get("a").Style.Fill != "#ff0000" {
		t.Errorf("selected style not applied")
	}
	if e.Store().Get("b").Style.Fill != "#111111" {
		t.Errorf("unselected shape was restyled")
	}
}

func TestResetViewFiresTransform(t *testing.T) {
	e := NewEditor()
	e.Viewport().SetTransform(Transform{Scale: 3, OffsetX: 10, OffsetY: 20})

	var got *Transform
	e.OnTransformChange = func(tr Transform) { got = &tr }

	e.ResetView()

	if got == nil || *got != (Transform{Scale: 1}) {
		t.Errorf("reset callback failed: got %v", got)
	}
}

func TestRestoreReplacesStateSilently(t *testing.T) {
	e := NewEditor()
	fired := false
	e.OnTransformChange = func(Transform) { fired = true }
	e.OnSelectionChange = func(*Shape) { fired = true }

	style := Style{Fill: "#abcdef", Stroke: "#000000", StrokeWidth: 1, Opacity: 0.8}
	shapes := []*Shape{{ID: "x", Kind: KindTriangle, Width: 40, Height: 40}}
	e.Restore(Transform{Scale: 2, OffsetX: 5, OffsetY: 6}, style, shapes)

	if fired {
		t.Errorf("restore should not fire callbacks")
	}
	if e.Viewport().Scale() != 2 || e.Store().Len() != 1 || e.DefaultStyle() != style {
		t.Errorf("restore failed: scale=%v len=%d style=%+v", e.Viewport().Scale(), e.Store().Len(), e.DefaultStyle())
	}
}

func TestDrawnShapesGetUniqueIDs(t *testing.T) {
	e := NewEditor()
	e.SetMode(ModeDraw)

	for i := 0; i < 2; i++ {
		e.Handle(Event{Kind: EventPointerDown, X: 0, Y: 0})
		e.Handle(Event{Kind: EventPointerMove, X: 50, Y: 50})
		e.Handle(Event{Kind: EventPointerUp})
		e.SetMode(ModeDraw)
	}

	shapes := e.Store().Shapes()
	if len(shapes) != 2 {
		t.Fatalf("expected 2 shapes, got %d", len(shapes))
	}
	if shapes[0].ID == shapes[1].ID || shapes[0].ID == "" {
		t.Errorf("IDs must be unique and non-empty: %q, %q", shapes[0].ID, shapes[1].ID)
	}
}
