package canvas

// MinShapeSize is the minimum width/height of a shape in world units.
// Every mutation clamps dimensions to this floor.
const MinShapeSize = 10.0

// Kind identifies the geometry variant of a shape. The set is closed:
// all kinds share the bounding-box contract and differ only in
// containment and rendering.
type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindTriangle  Kind = "triangle"
)

// Style holds the visual attributes of a shape.
type Style struct {
	Fill        string  `json:"fill"`
	Stroke      string  `json:"stroke"`
	StrokeWidth float64 `json:"strokeWidth"`
	Opacity     float64 `json:"opacity"`
}

// StylePatch is a partial style update; nil fields are left unchanged.
type StylePatch struct {
	Fill        *string  `json:"fill,omitempty"`
	Stroke      *string  `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"strokeWidth,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
}

// Apply merges the patch into a style.
func (p StylePatch) Apply(s *Style) {
	if p.Fill != nil {
		s.Fill = *p.Fill
	}
	if p.Stroke != nil {
		s.Stroke = *p.Stroke
	}
	if p.StrokeWidth != nil {
		s.StrokeWidth = *p.StrokeWidth
	}
	if p.Opacity != nil {
		s.Opacity = *p.Opacity
	}
}

// Handle names one of the 8 bounding-box anchors used to drive a
// directional resize. Handles are derived on demand, never stored.
type Handle string

const (
	HandleTopLeft      Handle = "top-left"
	HandleTopCenter    Handle = "top-center"
	HandleTopRight     Handle = "top-right"
	HandleMiddleLeft   Handle = "middle-left"
	HandleMiddleRight  Handle = "middle-right"
	HandleBottomLeft   Handle = "bottom-left"
	HandleBottomCenter Handle = "bottom-center"
	HandleBottomRight  Handle = "bottom-right"
)

// handleOrder fixes the iteration order for Handles and HandleAt.
var handleOrder = [8]Handle{
	HandleTopLeft, HandleTopCenter, HandleTopRight,
	HandleMiddleLeft, HandleMiddleRight,
	HandleBottomLeft, HandleBottomCenter, HandleBottomRight,
}

// Shape is a primitive vector shape on the board. Geometry is defined
// in world coordinates. Rotation is carried for document compatibility
// but has no behavior yet.
type Shape struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Style    Style   `json:"style"`
	Selected bool    `json:"selected"`
}

// Bounds returns the shape's bounding box.
func (s *Shape) Bounds() Rect {
	return Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// ContainsPoint reports whether a world point is inside the shape,
// using the per-kind geometric predicate.
func (s *Shape) ContainsPoint(p Point) bool {
	switch s.Kind {
	case KindEllipse:
		rx := s.Width / 2
		ry := s.Height / 2
		if rx == 0 || ry == 0 {
			// A degenerate ellipse contains nothing.
			return false
		}
		nx := (p.X - (s.X + rx)) / rx
		ny := (p.Y - (s.Y + ry)) / ry
		return nx*nx+ny*ny <= 1

	case KindTriangle:
		apex := Point{X: s.X + s.Width/2, Y: s.Y}
		left := Point{X: s.X, Y: s.Y + s.Height}
		right := Point{X: s.X + s.Width, Y: s.Y + s.Height}

		d1 := edgeSign(p, apex, left)
		d2 := edgeSign(p, left, right)
		d3 := edgeSign(p, right, apex)

		hasNeg := d1 < 0 || d2 < 0 || d3 < 0
		hasPos := d1 > 0 || d2 > 0 || d3 > 0
		return !(hasNeg && hasPos)

	default: // rectangle
		return s.Bounds().Contains(p.X, p.Y)
	}
}

// edgeSign returns which side of edge ab the point p lies on.
func edgeSign(p, a, b Point) float64 {
	return (p.X-b.X)*(a.Y-b.Y) - (a.X-b.X)*(p.Y-b.Y)
}

// HandlePoint pairs a handle name with its world position.
type HandlePoint struct {
	Handle Handle `json:"handle"`
	Point  Point  `json:"point"`
}

// Handles returns the 8 resize anchors derived from the bounding box.
// Identical for every kind.
func (s *Shape) Handles() [8]HandlePoint {
	left, top := s.X, s.Y
	midX, midY := s.X+s.Width/2, s.Y+s.Height/2
	right, bottom := s.X+s.Width, s.Y+s.Height

	positions := map[Handle]Point{
		HandleTopLeft:      {left, top},
		HandleTopCenter:    {midX, top},
		HandleTopRight:     {right, top},
		HandleMiddleLeft:   {left, midY},
		HandleMiddleRight:  {right, midY},
		HandleBottomLeft:   {left, bottom},
		HandleBottomCenter: {midX, bottom},
		HandleBottomRight:  {right, bottom},
	}

	var out [8]HandlePoint
	for i, h := range handleOrder {
		out[i] = HandlePoint{Handle: h, Point: positions[h]}
	}
	return out
}

// HandleAt returns the handle whose anchor lies within tolerance
// (world units) of the point, if any.
func (s *Shape) HandleAt(p Point, tolerance float64) (Handle, bool) {
	for _, hp := range s.Handles() {
		dx := p.X - hp.Point.X
		dy := p.Y - hp.Point.Y
		if dx >= -tolerance && dx <= tolerance && dy >= -tolerance && dy <= tolerance {
			return hp.Handle, true
		}
	}
	return "", false
}

// MoveBy translates the shape by a world-space delta.
func (s *Shape) MoveBy(dx, dy float64) {
	s.X += dx
	s.Y += dy
}

// ResizeByHandle resizes the shape by a world-space delta applied at the
// given handle. The side or corner opposite the handle stays anchored,
// including when the minimum-size clamp kicks in.
func (s *Shape) ResizeByHandle(h Handle, dx, dy float64) {
	right := s.X + s.Width
	bottom := s.Y + s.Height

	switch h {
	case HandleTopLeft, HandleMiddleLeft, HandleBottomLeft:
		s.X += dx
		s.Width -= dx
	case HandleTopRight, HandleMiddleRight, HandleBottomRight:
		s.Width += dx
	}

	switch h {
	case HandleTopLeft, HandleTopCenter, HandleTopRight:
		s.Y += dy
		s.Height -= dy
	case HandleBottomLeft, HandleBottomCenter, HandleBottomRight:
		s.Height += dy
	}

	if s.Width < MinShapeSize {
		switch h {
		case HandleTopLeft, HandleMiddleLeft, HandleBottomLeft:
			// Keep the right edge fixed while the clamp grows the shape back.
			s.X = right - MinShapeSize
		}
		s.Width = MinShapeSize
	}
	if s.Height < MinShapeSize {
		switch h {
		case HandleTopLeft, HandleTopCenter, HandleTopRight:
			s.Y = bottom - MinShapeSize
		}
		s.Height = MinShapeSize
	}
}
