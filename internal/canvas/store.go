package canvas

// ShapeStore owns the ordered shape collection. Slice order is z-order:
// later shapes render on top and are hit-tested first.
type ShapeStore struct {
	shapes []*Shape
}

// NewShapeStore creates an empty store.
func NewShapeStore() *ShapeStore {
	return &ShapeStore{}
}

// Shapes returns the shapes in painter's order (back to front).
func (st *ShapeStore) Shapes() []*Shape {
	return st.shapes
}

// Len returns the number of shapes.
func (st *ShapeStore) Len() int {
	return len(st.shapes)
}

// Get returns the shape with the given ID, or nil.
func (st *ShapeStore) Get(id string) *Shape {
	for _, s := range st.shapes {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// Add appends a shape on top of the stack.
func (st *ShapeStore) Add(s *Shape) {
	st.shapes = append(st.shapes, s)
}

// Remove deletes the shape with the given ID. Missing IDs are a no-op.
func (st *ShapeStore) Remove(id string) {
	for i, s := range st.shapes {
		if s.ID == id {
			st.shapes = append(st.shapes[:i], st.shapes[i+1:]...)
			return
		}
	}
}

// Replace swaps the entire collection, e.g. when loading a document.
func (st *ShapeStore) Replace(shapes []*Shape) {
	st.shapes = shapes
}

// HitTest returns the topmost shape containing the world point, or nil.
// Scans front to back; first match wins.
func (st *ShapeStore) HitTest(p Point) *Shape {
	for i := len(st.shapes) - 1; i >= 0; i-- {
		if st.shapes[i].ContainsPoint(p) {
			return st.shapes[i]
		}
	}
	return nil
}

// Selected returns the currently selected shape, or nil.
func (st *ShapeStore) Selected() *Shape {
	for _, s := range st.shapes {
		if s.Selected {
			return s
		}
	}
	return nil
}

// Select marks the shape with the given ID as the single selection.
// An empty or unknown ID clears the selection. Returns true if the
// selection changed.
func (st *ShapeStore) Select(id string) bool {
	changed := false
	for _, s := range st.shapes {
		sel := s.ID == id && id != ""
		if s.Selected != sel {
			s.Selected = sel
			changed = true
		}
	}
	return changed
}

// ClearSelection deselects all shapes. Returns true if anything was
// selected.
func (st *ShapeStore) ClearSelection() bool {
	return st.Select("")
}

// BringToFront moves the shape to the top of the z-order.
func (st *ShapeStore) BringToFront(id string) {
	for i, s := range st.shapes {
		if s.ID == id {
			st.shapes = append(st.shapes[:i], st.shapes[i+1:]...)
			st.shapes = append(st.shapes, s)
			return
		}
	}
}

// SendToBack moves the shape to the bottom of the z-order.
func (st *ShapeStore) SendToBack(id string) {
	for i, s := range st.shapes {
		if s.ID == id {
			st.shapes = append(st.shapes[:i], st.shapes[i+1:]...)
			st.shapes = append([]*Shape{s}, st.shapes...)
			return
		}
	}
}
