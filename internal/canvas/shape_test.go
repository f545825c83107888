package canvas

import "testing"

func TestRectangleContainsPoint(t *testing.T) {
	s := &Shape{Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 50}

	if !s.ContainsPoint(Point{X: 50, Y: 25}) {
		t.Errorf("rectangle containment failed: expected (50, 25) inside")
	}
	if !s.ContainsPoint(Point{X: 0, Y: 0}) {
		t.Errorf("rectangle containment failed: expected boundary (0, 0) inside")
	}
	if s.ContainsPoint(Point{X: 150, Y: 25}) {
		t.Errorf("rectangle containment failed: expected (150, 25) outside")
	}
}

func TestEllipseContainsPoint(t *testing.T) {
	s := &Shape{Kind: KindEllipse, X: 0, Y: 0, Width: 100, Height: 100}

	if !s.ContainsPoint(Point{X: 50, Y: 50}) {
		t.Errorf("ellipse containment failed: expected center (50, 50) inside")
	}
	if !s.ContainsPoint(Point{X: 100, Y: 50}) {
		t.Errorf("ellipse containment failed: expected rim (100, 50) inside")
	}
	// Bounding-box corner area lies outside the ellipse.
	if s.ContainsPoint(Point{X: 99, Y: 99}) {
		t.Errorf("ellipse containment failed: expected corner (99, 99) outside")
	}
}

func TestDegenerateEllipseContainsNothing(t *testing.T) {
	s := &Shape{Kind: KindEllipse, X: 10, Y: 10, Width: 0, Height: 40}

	if s.ContainsPoint(Point{X: 10, Y: 30}) {
		t.Errorf("degenerate ellipse should contain nothing")
	}
}

func TestTriangleContainsPoint(t *testing.T) {
	// Apex at top-center, base along the bottom edge.
	s := &Shape{Kind: KindTriangle, X: 0, Y: 0, Width: 100, Height: 100}

	if !s.ContainsPoint(Point{X: 50, Y: 50}) {
		t.Errorf("triangle containment failed: expected (50, 50) inside")
	}
	if !s.ContainsPoint(Point{X: 50, Y: 1}) {
		t.Errorf("triangle containment failed: expected (50, 1) under the apex inside")
	}
	// Upper corners of the bounding box are outside the triangle.
	if s.ContainsPoint(Point{X: 5, Y: 5}) {
		t.Errorf("triangle containment failed: expected (5, 5) outside")
	}
	if s.ContainsPoint(Point{X: 95, Y: 5}) {
		t.Errorf("triangle containment failed: expected (95, 5) outside")
	}
}

func TestHandlesDerivedFromBounds(t *testing.T) {
	s := &Shape{Kind: KindEllipse, X: 10, Y: 20, Width: 100, Height: 60}

	expected := map[Handle]Point{
		HandleTopLeft:      {10, 20},
		HandleTopCenter:    {60, 20},
		HandleTopRight:     {110, 20},
		HandleMiddleLeft:   {10, 50},
		HandleMiddleRight:  {110, 50},
		HandleBottomLeft:   {10, 80},
		HandleBottomCenter: {60, 80},
		HandleBottomRight:  {110, 80},
	}

	for _, hp := range s.Handles() {
		if hp.Point != expected[hp.Handle] {
			t.Errorf("handle %s failed: expected %v, got %v", hp.Handle, expected[hp.Handle], hp.Point)
		}
	}
}

func TestHandleAt(t *testing.T) {
	s := &Shape{Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100}

	h, ok := s.HandleAt(Point{X: 103, Y: 98}, 8)
	if !ok || h != HandleBottomRight {
		t.Errorf("handle hit failed: expected bottom-right, got %q (%v)", h, ok)
	}

	if _, ok := s.HandleAt(Point{X: 50, Y: 50}, 8); ok {
		t.Errorf("handle hit failed: center of the shape is not a handle")
	}

	if _, ok := s.HandleAt(Point{X: 120, Y: 120}, 8); ok {
		t.Errorf("handle hit failed: point outside tolerance matched")
	}
}

func TestResizeByHandleGrows(t *testing.T) {
	s := &Shape{Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100}

	s.ResizeByHandle(HandleBottomRight, 50, 60)

	if s.X != 0 || s.Y != 0 || s.Width != 150 || s.Height != 160 {
		t.Errorf("grow failed: got x=%v y=%v w=%v h=%v", s.X, s.Y, s.Width, s.Height)
	}
}

func TestResizeByHandleLeftMovesOrigin(t *testing.T) {
	s := &Shape{Kind: KindRectangle, X: 100, Y: 100, Width: 80, Height: 80}

	s.ResizeByHandle(HandleTopLeft, -20, -10)

	if s.X != 80 || s.Y != 90 || s.Width != 100 || s.Height != 90 {
		t.Errorf("top-left resize failed: got x=%v y=%v w=%v h=%v", s.X, s.Y, s.Width, s.Height)
	}
}

func TestResizeClampKeepsOppositeCornerFixed(t *testing.T) {
	s := &Shape{Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100}

	// Drag the bottom-right handle far past the top-left corner. The
	// shape clamps to the minimum size with the top-left corner fixed.
	s.ResizeByHandle(HandleBottomRight, -200, -200)

	if s.X != 0 || s.Y != 0 || s.Width != MinShapeSize || s.Height != MinShapeSize {
		t.Errorf("clamp failed: got x=%v y=%v w=%v h=%v", s.X, s.Y, s.Width, s.Height)
	}
}

func TestResizeClampKeepsRightEdgeFixedForLeftHandles(t *testing.T) {
	s := &Shape{Kind: KindRectangle, X: 0, Y: 0, Width: 100, Height: 100}

	s.ResizeByHandle(HandleMiddleLeft, 300, 0)

	if s.Width != MinShapeSize {
		t.Errorf("clamp failed: expected width %v, got %v", MinShapeSize, s.Width)
	}
	if s.X != 100-MinShapeSize {
		t.Errorf("clamp failed: right edge moved, x=%v", s.X)
	}
}

func TestStylePatchApply(t *testing.T) {
	s := Style{Fill: "#111111", Stroke: "#222222", StrokeWidth: 2, Opacity: 1}

	fill := "#ff0000"
	opacity := 0.5
	StylePatch{Fill: &fill, Opacity: &opacity}.Apply(&s)

	if s.Fill != "#ff0000" || s.Opacity != 0.5 {
		t.Errorf("patch failed: got %+v", s)
	}
	if s.Stroke != "#222222" || s.StrokeWidth != 2 {
		t.Errorf("patch touched unset fields: got %+v", s)
	}
}
