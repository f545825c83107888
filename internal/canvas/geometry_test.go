package canvas

import (
	"math"
	"testing"
)

func TestMatrixMultiplyOrder(t *testing.T) {
	// Translate then scale vs scale then translate are different.
	m := Translate(10, 20).Multiply(Scale(2))

	x, y := m.TransformPoint(5, 5)
	if x != 20 || y != 30 {
		t.Errorf("multiply order failed: expected (20, 30), got (%v, %v)", x, y)
	}
}

func TestMatrixInvertRoundTrip(t *testing.T) {
	m := Translate(37, -14).Multiply(Scale(2.5))
	inv := m.Invert()

	x, y := inv.TransformPoint(m.TransformPoint(12, -7))
	if math.Abs(x-12) > 1e-10 || math.Abs(y+7) > 1e-10 {
		t.Errorf("invert round trip failed: got (%v, %v)", x, y)
	}

	prod := m.Multiply(inv)
	ident := Identity()
	for i := range prod {
		if math.Abs(prod[i]-ident[i]) > 1e-10 {
			t.Errorf("m * m^-1 should be identity, got %v", prod)
			break
		}
	}
}

func TestSingularMatrixInvertsToIdentity(t *testing.T) {
	if got := Scale(0).Invert(); got != Identity() {
		t.Errorf("singular invert failed: got %v", got)
	}
}

func TestTransformMatrixMatchesWorldToScreen(t *testing.T) {
	v := NewViewport()
	v.SetTransform(Transform{Scale: 2, OffsetX: 100, OffsetY: 50})

	m := v.Transform().Matrix()
	x, y := m.TransformPoint(10, 20)
	p := v.WorldToScreen(Point{X: 10, Y: 20})

	if x != p.X || y != p.Y {
		t.Errorf("matrix disagrees with viewport: matrix (%v, %v), viewport %v", x, y, p)
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	b := Rect{X: 20, Y: 5, Width: 10, Height: 30}

	got := a.Union(b)
	expected := Rect{X: 0, Y: 0, Width: 30, Height: 35}
	if got != expected {
		t.Errorf("union failed: expected %+v, got %+v", expected, got)
	}

	if a.Union(Rect{}) != a {
		t.Errorf("union with empty should return the non-empty rect")
	}
}
