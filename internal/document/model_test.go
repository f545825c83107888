package document

import (
	"testing"

	"github.com/driftboard/driftboard/internal/canvas"
)

func TestApplyCaptureRoundTrip(t *testing.T) {
	b := NewEmptyBoard("board_test", "Test Board")
	b.View = canvas.Transform{Scale: 2, OffsetX: 40, OffsetY: -10}
	b.Shapes = []canvas.Shape{
		{ID: "s1", Kind: canvas.KindRectangle, X: 0, Y: 0, Width: 100, Height: 50},
		{ID: "s2", Kind: canvas.KindEllipse, X: 200, Y: 100, Width: 80, Height: 80},
	}

	e := canvas.NewEditor()
	b.Apply(e)

	if e.Viewport().Transform() != b.View {
		t.Errorf("apply failed: transform %+v", e.Viewport().Transform())
	}
	if e.Store().Len() != 2 {
		t.Fatalf("apply failed: %d shapes", e.Store().Len())
	}

	e.Store().Get("s1").MoveBy(5, 5)

	out := NewEmptyBoard("board_test", "Test Board")
	out.Capture(e)

	if out.Shapes[0].X != 5 || out.Shapes[0].Y != 5 {
		t.Errorf("capture failed: got x=%v y=%v", out.Shapes[0].X, out.Shapes[0].Y)
	}
	if out.View != b.View {
		t.Errorf("capture failed: transform %+v", out.View)
	}
	if out.Meta.Version != 2 {
		t.Errorf("capture should bump the version: got %d", out.Meta.Version)
	}
}

func TestApplyClearsPersistedSelection(t *testing.T) {
	b := NewEmptyBoard("board_test", "Test Board")
	b.Shapes = []canvas.Shape{
		{ID: "s1", Kind: canvas.KindRectangle, Width: 50, Height: 50, Selected: true},
	}

	e := canvas.NewEditor()
	b.Apply(e)

	if e.Store().Selected() != nil {
		t.Errorf("selection must not survive a document load")
	}
}

func TestCaptureClearsSelection(t *testing.T) {
	e := canvas.NewEditor()
	e.Store().Add(&canvas.Shape{ID: "s1", Kind: canvas.KindRectangle, Width: 50, Height: 50})
	e.Store().Select("s1")

	b := NewEmptyBoard("board_test", "Test Board")
	b.Capture(e)

	if b.Shapes[0].Selected {
		t.Errorf("selection must not be persisted")
	}
}

func TestParseMarshalRoundTrip(t *testing.T) {
	b := NewSampleBoard("board_sample")

	data, err := b.Marshal()
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	got, err := Parse(data)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if got.Meta.ID != b.Meta.ID || len(got.Shapes) != len(b.Shapes) {
		t.Errorf("round trip failed: got %+v", got.Meta)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse([]byte("{not json")); err == nil {
		t.Errorf("expected a parse error")
	}
}
