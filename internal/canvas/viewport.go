package canvas

import "math"

const (
	// MinScale and MaxScale bound the viewport zoom level.
	MinScale = 0.1
	MaxScale = 10.0
)

// Transform maps world coordinates to screen coordinates:
// screen = world*scale + offset, so world = (screen - offset) / scale.
type Transform struct {
	Scale   float64 `json:"scale"`
	OffsetX float64 `json:"offsetX"`
	OffsetY float64 `json:"offsetY"`
}

// Matrix returns the transform as a Canvas2D-style affine matrix
// suitable for setTransform on the frontend.
func (t Transform) Matrix() Matrix2D {
	return Translate(t.OffsetX, t.OffsetY).Multiply(Scale(t.Scale))
}

// Viewport owns the scale/offset transform between world and screen space.
// It is the only mutator of the transform; everything else reads it.
type Viewport struct {
	t Transform
}

// NewViewport creates a viewport at scale 1 with the origin at the
// screen origin.
func NewViewport() *Viewport {
	return &Viewport{t: Transform{Scale: 1}}
}

// Transform returns the current transform.
func (v *Viewport) Transform() Transform {
	return v.t
}

// SetTransform restores a previously saved transform, clamping scale
// to the valid range.
func (v *Viewport) SetTransform(t Transform) {
	t.Scale = clampScale(t.Scale)
	v.t = t
}

// Scale returns the current zoom level.
func (v *Viewport) Scale() float64 {
	return v.t.Scale
}

// ScreenToWorld converts a screen-space point to world space by
// inverting the transform matrix. The scale clamp keeps the matrix
// invertible.
func (v *Viewport) ScreenToWorld(p Point) Point {
	x, y := v.t.Matrix().Invert().TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// WorldToScreen converts a world-space point to screen space.
func (v *Viewport) WorldToScreen(p Point) Point {
	x, y := v.t.Matrix().TransformPoint(p.X, p.Y)
	return Point{X: x, Y: y}
}

// ZoomAt zooms by factor anchored at a screen point: the world point
// under the cursor stays under the cursor. Non-finite or non-positive
// factors (e.g. from a degenerate pinch distance) are ignored.
func (v *Viewport) ZoomAt(screen Point, factor float64) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return
	}

	// Anchor must be computed against the old scale.
	anchor := v.ScreenToWorld(screen)

	v.t.Scale = clampScale(v.t.Scale * factor)

	// Recompute offset so worldToScreen(anchor) == screen still holds.
	v.t.OffsetX = screen.X - anchor.X*v.t.Scale
	v.t.OffsetY = screen.Y - anchor.Y*v.t.Scale
}

// PanBy shifts the viewport by raw screen deltas. Deliberately
// scale-independent so panning speed matches pointer movement at any
// zoom level.
func (v *Viewport) PanBy(dx, dy float64) {
	v.t.OffsetX += dx
	v.t.OffsetY += dy
}

// Reset returns the viewport to scale 1 with the default origin placement.
func (v *Viewport) Reset() {
	v.t = Transform{Scale: 1}
}

// VisibleBounds derives the world-space rectangle visible on a canvas of
// the given pixel size from its four corners.
func (v *Viewport) VisibleBounds(canvasW, canvasH float64) Rect {
	corners := [4]Point{
		v.ScreenToWorld(Point{0, 0}),
		v.ScreenToWorld(Point{canvasW, 0}),
		v.ScreenToWorld(Point{0, canvasH}),
		v.ScreenToWorld(Point{canvasW, canvasH}),
	}

	minX, minY := corners[0].X, corners[0].Y
	maxX, maxY := minX, minY
	for _, c := range corners[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
		maxY = max(maxY, c.Y)
	}

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func clampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}
