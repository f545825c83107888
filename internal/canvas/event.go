package canvas

// EventKind discriminates normalized input events.
type EventKind string

const (
	EventPointerDown  EventKind = "pointerdown"
	EventPointerMove  EventKind = "pointermove"
	EventPointerUp    EventKind = "pointerup"
	EventPointerLeave EventKind = "pointerleave"
	EventKeyDown      EventKind = "keydown"
	EventWheel        EventKind = "wheel"
)

// Event is a normalized input event, decoupled from any UI runtime so
// gesture sequences can be replayed headlessly. Pointer coordinates are
// canvas-local pixels; DeltaY carries wheel movement.
type Event struct {
	Kind   EventKind `json:"kind"`
	X      float64   `json:"x,omitempty"`
	Y      float64   `json:"y,omitempty"`
	DeltaY float64   `json:"deltaY,omitempty"`
	Key    string    `json:"key,omitempty"`
}

// Mode is the persistent user-selected gesture family. It governs what
// a pointer-down initiates and survives across gestures.
type Mode string

const (
	ModeSelect Mode = "select"
	ModePan    Mode = "pan"
	ModeDraw   Mode = "draw"
)

// update summarizes the externally visible effects of one event, so the
// editor can fire each callback at most once per triggering event.
type update struct {
	transform bool
	selection bool
	mode      bool
	shapes    bool
	pointer   *Point
}
