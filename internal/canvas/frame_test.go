package canvas

import "testing"

func TestCompileFramePaintersOrder(t *testing.T) {
	e := NewEditor()
	e.Store().Add(&Shape{ID: "back", Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100})
	e.Store().Add(&Shape{ID: "front", Kind: KindEllipse, X: 50, Y: 50, Width: 100, Height: 100})

	frame := CompileFrame(e, 800, 600)

	if len(frame.Commands) != 2 {
		t.Fatalf("expected 2 commands, got %d", len(frame.Commands))
	}
	if frame.Commands[0].ObjectID != "back" || frame.Commands[1].ObjectID != "front" {
		t.Errorf("painter's order failed: got %v, %v", frame.Commands[0].ObjectID, frame.Commands[1].ObjectID)
	}
}

func TestCompileFrameAppendsSelectionHandles(t *testing.T) {
	e := NewEditor()
	e.Store().Add(&Shape{ID: "a", Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100})
	e.Store().Select("a")

	frame := CompileFrame(e, 800, 600)

	last := frame.Commands[len(frame.Commands)-1]
	if last.Op != "handles" || last.ObjectID != "a" {
		t.Errorf("expected trailing handles command for a, got %+v", last)
	}
	if len(last.Points) != 8 {
		t.Errorf("expected 8 handle points, got %d", len(last.Points))
	}
}

func TestCompileFrameFloorsInProgressDrawing(t *testing.T) {
	e := NewEditor()
	e.SetMode(ModeDraw)

	e.Handle(Event{Kind: EventPointerDown, X: 10, Y: 10})
	e.Handle(Event{Kind: EventPointerMove, X: 14, Y: 13})

	frame := CompileFrame(e, 800, 600)

	if len(frame.Commands) != 1 {
		t.Fatalf("expected 1 command, got %d", len(frame.Commands))
	}
	cmd := frame.Commands[0]
	if cmd.Width != MinShapeSize || cmd.Height != MinShapeSize {
		t.Errorf("live preview should be floored: got w=%v h=%v", cmd.Width, cmd.Height)
	}

	// The stored shape keeps the raw extent; only the preview is floored.
	s := e.Store().Shapes()[0]
	if s.Width != 4 || s.Height != 3 {
		t.Errorf("stored extent should be raw: got w=%v h=%v", s.Width, s.Height)
	}
}

func TestCompileFrameCarriesViewState(t *testing.T) {
	e := NewEditor()
	e.Viewport().SetTransform(Transform{Scale: 2, OffsetX: 100, OffsetY: 50})

	frame := CompileFrame(e, 800, 600)

	expected := []float64{2, 0, 0, 2, 100, 50}
	for i, v := range expected {
		if frame.Transform[i] != v {
			t.Errorf("transform[%d] failed: expected %v, got %v", i, v, frame.Transform[i])
		}
	}
	if frame.Bounds != (Rect{X: -50, Y: -25, Width: 400, Height: 300}) {
		t.Errorf("bounds failed: got %+v", frame.Bounds)
	}
	if frame.Grid.Main != 50 || frame.Grid.TickSpacing != 50 {
		t.Errorf("grid failed: main=%v tick=%v", frame.Grid.Main, frame.Grid.TickSpacing)
	}
}
