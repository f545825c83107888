package session

import (
	"encoding/json"

	"github.com/driftboard/driftboard/internal/canvas"
)

// Message is the envelope for everything on the session socket.
type Message struct {
	Type    string          `json:"type"`
	BoardID string          `json:"boardId,omitempty"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

const (
	// Client → server
	TypeInput   = "input"   // payload: canvas.Event
	TypeCommand = "command" // payload: Command
	TypeRender  = "render"  // payload: RenderRequest

	// Server → client
	TypeWelcome   = "welcome"    // payload: WelcomePayload
	TypeBoardSync = "board.sync" // payload: document.Board
	TypeFrame     = "frame"      // payload: canvas.Frame
	TypeTransform = "transform"  // payload: canvas.Transform
	TypeCursor    = "cursor"     // payload: canvas.Point (world coordinates)
	TypeMode      = "mode"       // payload: ModePayload
	TypeSelection = "selection"  // payload: SelectionPayload
	TypeError     = "error"      // payload: ErrorPayload
)

// Command is a discrete editor command from the UI layer.
type Command struct {
	Name     string             `json:"name"`
	Mode     canvas.Mode        `json:"mode,omitempty"`
	Kind     canvas.Kind        `json:"kind,omitempty"`
	Style    *canvas.StylePatch `json:"style,omitempty"`
	ObjectID string             `json:"objectId,omitempty"`
}

// Command names.
const (
	CmdSetMode              = "setMode"
	CmdSetShapeType         = "setShapeType"
	CmdSetStyle             = "setStyle"
	CmdApplyStyleToSelected = "applyStyleToSelected"
	CmdDeleteSelected       = "deleteSelected"
	CmdResetView            = "resetView"
	CmdBringToFront         = "bringToFront"
	CmdSendToBack           = "sendToBack"
)

// RenderRequest asks for one compiled frame for the given canvas size.
type RenderRequest struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type WelcomePayload struct {
	SessionID string `json:"sessionId"`
	BoardID   string `json:"boardId"`
}

type ModePayload struct {
	Mode canvas.Mode `json:"mode"`
}

type SelectionPayload struct {
	Shape *canvas.Shape `json:"shape"` // nil when nothing is selected
}

type ErrorPayload struct {
	Message string `json:"message"`
}
