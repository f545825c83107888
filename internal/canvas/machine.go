package canvas

import "math"

// HandleTolerancePx is the on-screen hit radius for resize handles.
// Divided by the current scale it yields a constant-size target at any
// zoom level.
const HandleTolerancePx = 8.0

// wheelZoomRate converts wheel delta to an exponential zoom factor.
const wheelZoomRate = 0.001

// gestureState is the active interaction; exactly one at a time.
type gestureState int

const (
	stateIdle gestureState = iota
	stateDragging
	stateResizing
	stateDrawing
	statePanning
)

// Machine turns normalized pointer/keyboard events into shape-store and
// viewport mutations. Gestures are delimited by pointer-up/leave; a new
// pointer-down is not expected mid-gesture.
type Machine struct {
	store *ShapeStore
	view  *Viewport

	mode     Mode
	drawKind Kind
	style    Style

	state       gestureState
	gestureID   string
	handle      Handle
	lastWorld   Point
	anchorWorld Point
	lastScreen  Point

	newID func() string
}

// NewMachine creates an idle machine in select mode drawing rectangles.
// newID supplies IDs for shapes created by draw gestures.
func NewMachine(store *ShapeStore, view *Viewport, newID func() string) *Machine {
	return &Machine{
		store:    store,
		view:     view,
		mode:     ModeSelect,
		drawKind: KindRectangle,
		style: Style{
			Fill:        "#3b82f6",
			Stroke:      "#1e3a8a",
			StrokeWidth: 2,
			Opacity:     1,
		},
		newID: newID,
	}
}

// Mode returns the current gesture mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// SetMode switches the gesture mode. Returns true if it changed.
func (m *Machine) SetMode(mode Mode) bool {
	if m.mode == mode {
		return false
	}
	m.mode = mode
	return true
}

// DrawKind returns the shape kind new draw gestures create.
func (m *Machine) DrawKind() Kind {
	return m.drawKind
}

// SetDrawKind sets the shape kind for new draw gestures.
func (m *Machine) SetDrawKind(k Kind) {
	m.drawKind = k
}

// Style returns the default style applied to new shapes.
func (m *Machine) Style() Style {
	return m.style
}

// PatchStyle merges a partial style into the default style.
func (m *Machine) PatchStyle(p StylePatch) {
	p.Apply(&m.style)
}

// DrawingShapeID returns the ID of the shape being drawn, or "" when no
// draw gesture is active. The renderer uses it to floor the live
// preview at the minimum shape size.
func (m *Machine) DrawingShapeID() string {
	if m.state == stateDrawing {
		return m.gestureID
	}
	return ""
}

// Handle consumes one event and returns the set of externally visible
// changes it caused. Replaying the same event sequence yields the same
// state.
func (m *Machine) Handle(ev Event) update {
	switch ev.Kind {
	case EventPointerDown:
		return m.pointerDown(Point{X: ev.X, Y: ev.Y})
	case EventPointerMove:
		return m.pointerMove(Point{X: ev.X, Y: ev.Y})
	case EventPointerUp, EventPointerLeave:
		return m.pointerEnd()
	case EventKeyDown:
		return m.keyDown(ev.Key)
	case EventWheel:
		before := m.view.Transform()
		m.view.ZoomAt(Point{X: ev.X, Y: ev.Y}, math.Exp(-ev.DeltaY*wheelZoomRate))
		// A wheel at an already-clamped zoom level changes nothing.
		return update{transform: m.view.Transform() != before}
	}
	return update{}
}

func (m *Machine) pointerDown(screen Point) update {
	var u update
	world := m.view.ScreenToWorld(screen)

	switch m.mode {
	case ModePan:
		m.state = statePanning
		m.lastScreen = screen

	case ModeDraw:
		s := &Shape{
			ID:     m.newID(),
			Kind:   m.drawKind,
			X:      world.X,
			Y:      world.Y,
			Width:  1,
			Height: 1,
			Style:  m.style,
		}
		m.store.Add(s)
		m.state = stateDrawing
		m.gestureID = s.ID
		m.anchorWorld = world
		u.shapes = true

	default: // select
		if sel := m.store.Selected(); sel != nil {
			tolerance := HandleTolerancePx / m.view.Scale()
			if h, ok := sel.HandleAt(world, tolerance); ok {
				m.state = stateResizing
				m.gestureID = sel.ID
				m.handle = h
				m.lastWorld = world
				return u
			}
		}
		if hit := m.store.HitTest(world); hit != nil {
			u.selection = m.store.Select(hit.ID)
			m.state = stateDragging
			m.gestureID = hit.ID
			m.lastWorld = world
		} else {
			u.selection = m.store.ClearSelection()
			m.state = statePanning
			m.lastScreen = screen
		}
	}

	return u
}

func (m *Machine) pointerMove(screen Point) update {
	world := m.view.ScreenToWorld(screen)
	u := update{pointer: &world}

	switch m.state {
	case stateDragging:
		if s := m.store.Get(m.gestureID); s != nil {
			dx, dy := world.X-m.lastWorld.X, world.Y-m.lastWorld.Y
			if dx != 0 || dy != 0 {
				s.MoveBy(dx, dy)
				u.shapes = true
			}
		}
		m.lastWorld = world

	case stateResizing:
		if s := m.store.Get(m.gestureID); s != nil {
			dx, dy := world.X-m.lastWorld.X, world.Y-m.lastWorld.Y
			if dx != 0 || dy != 0 {
				s.ResizeByHandle(m.handle, dx, dy)
				u.shapes = true
			}
		}
		m.lastWorld = world

	case stateDrawing:
		if s := m.store.Get(m.gestureID); s != nil {
			// Flip around the anchor on negative-extent drags. The raw
			// extent is kept so the commit check at pointer-up sees the
			// true drag size.
			s.X = min(m.anchorWorld.X, world.X)
			s.Y = min(m.anchorWorld.Y, world.Y)
			s.Width = math.Abs(world.X - m.anchorWorld.X)
			s.Height = math.Abs(world.Y - m.anchorWorld.Y)
			u.shapes = true
		}

	case statePanning:
		// Raw screen deltas, not world deltas: panning speed must stay
		// zoom-independent.
		dx, dy := screen.X-m.lastScreen.X, screen.Y-m.lastScreen.Y
		if dx != 0 || dy != 0 {
			m.view.PanBy(dx, dy)
			u.transform = true
		}
		m.lastScreen = screen
	}

	return u
}

func (m *Machine) pointerEnd() update {
	var u update

	if m.state == stateDrawing {
		if s := m.store.Get(m.gestureID); s != nil {
			u.shapes = true
			if s.Width < MinShapeSize || s.Height < MinShapeSize {
				// Too small to keep; mode stays draw for the next attempt.
				m.store.Remove(s.ID)
				u.selection = false
			} else {
				u.selection = m.store.Select(s.ID)
				if m.mode != ModeSelect {
					m.mode = ModeSelect
					u.mode = true
				}
			}
		}
	}

	// Always reset, even without a matching pointer-down.
	m.state = stateIdle
	m.gestureID = ""
	m.handle = ""

	return u
}

func (m *Machine) keyDown(key string) update {
	var u update

	switch key {
	case "Delete", "Backspace":
		if sel := m.store.Selected(); sel != nil {
			m.store.Remove(sel.ID)
			u.selection = true
			u.shapes = true
		}
	case "Escape":
		if sel := m.store.Selected(); sel != nil {
			u.selection = m.store.ClearSelection()
			if m.mode != ModeSelect {
				m.mode = ModeSelect
				u.mode = true
			}
		}
	}

	return u
}
