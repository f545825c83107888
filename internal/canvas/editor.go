package canvas

import "github.com/driftboard/driftboard/internal/typeid"

// Editor is the facade over the canvas core: it owns the viewport, the
// shape store and the interaction machine, exposes the command surface
// the UI layer calls, and reports changes through synchronous callbacks.
// Each callback fires at most once per triggering event.
type Editor struct {
	view    *Viewport
	store   *ShapeStore
	machine *Machine

	OnTransformChange func(Transform)
	OnPointerWorld    func(Point)
	OnModeChange      func(Mode)
	OnSelectionChange func(*Shape)
}

// NewEditor creates an editor with an empty board and default view.
func NewEditor() *Editor {
	view := NewViewport()
	store := NewShapeStore()
	return &Editor{
		view:    view,
		store:   store,
		machine: NewMachine(store, view, typeid.NewShapeID),
	}
}

// Viewport returns the editor's viewport.
func (e *Editor) Viewport() *Viewport {
	return e.view
}

// Store returns the editor's shape store.
func (e *Editor) Store() *ShapeStore {
	return e.store
}

// Mode returns the current gesture mode.
func (e *Editor) Mode() Mode {
	return e.machine.Mode()
}

// DefaultStyle returns the style applied to newly drawn shapes.
func (e *Editor) DefaultStyle() Style {
	return e.machine.Style()
}

// DrawKind returns the shape kind new draw gestures create.
func (e *Editor) DrawKind() Kind {
	return e.machine.DrawKind()
}

// Handle feeds one normalized input event through the interaction
// machine and fires the resulting callbacks. It reports whether the
// event changed persisted state (shape geometry or the view transform),
// so callers can tell real edits from hover and no-op input.
func (e *Editor) Handle(ev Event) bool {
	u := e.machine.Handle(ev)
	e.fire(u)
	return u.shapes || u.transform
}

// --- Commands (UI layer → editor) ---

// SetMode switches the gesture mode.
func (e *Editor) SetMode(mode Mode) {
	if e.machine.SetMode(mode) {
		e.fire(update{mode: true})
	}
}

// SetShapeType selects the kind for shapes created in draw mode.
func (e *Editor) SetShapeType(k Kind) {
	e.machine.SetDrawKind(k)
}

// SetStyle merges a partial style into the default style for new shapes.
func (e *Editor) SetStyle(p StylePatch) {
	e.machine.PatchStyle(p)
}

// ApplyStyleToSelected applies a partial style to the selected shape.
// No-op without a selection.
func (e *Editor) ApplyStyleToSelected(p StylePatch) {
	if sel := e.store.Selected(); sel != nil {
		p.Apply(&sel.Style)
	}
}

// DeleteSelected removes the selected shape. No-op without a selection.
func (e *Editor) DeleteSelected() {
	if sel := e.store.Selected(); sel != nil {
		e.store.Remove(sel.ID)
		e.fire(update{selection: true})
	}
}

// ResetView returns the viewport to the default origin at scale 1.
func (e *Editor) ResetView() {
	e.view.Reset()
	e.fire(update{transform: true})
}

// BringToFront promotes a shape to the top of the z-order.
func (e *Editor) BringToFront(id string) {
	e.store.BringToFront(id)
}

// SendToBack demotes a shape to the bottom of the z-order.
func (e *Editor) SendToBack(id string) {
	e.store.SendToBack(id)
}

// --- State restore (document layer → editor) ---

// Restore replaces the editor state with a saved transform, default
// style and shape list, without firing callbacks.
func (e *Editor) Restore(t Transform, style Style, shapes []*Shape) {
	e.view.SetTransform(t)
	e.machine.style = style
	e.store.Replace(shapes)
}

func (e *Editor) fire(u update) {
	if u.transform && e.OnTransformChange != nil {
		e.OnTransformChange(e.view.Transform())
	}
	if u.pointer != nil && e.OnPointerWorld != nil {
		e.OnPointerWorld(*u.pointer)
	}
	if u.mode && e.OnModeChange != nil {
		e.OnModeChange(e.machine.Mode())
	}
	if u.selection && e.OnSelectionChange != nil {
		e.OnSelectionChange(e.store.Selected())
	}
}
