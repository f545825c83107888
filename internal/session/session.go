package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/driftboard/driftboard/internal/canvas"
	"github.com/driftboard/driftboard/internal/document"
)

// Session is one client editing one board. Messages arrive from a
// single read pump, but snapshot can be called from the manager during
// shutdown while input is still flowing, so a mutex guards the editor
// and the dirty flag.
type Session struct {
	ID      string
	BoardID string

	client *Client
	editor *canvas.Editor
	doc    *document.Board

	mu    sync.Mutex
	dirty bool
}

func newSession(id string, client *Client, doc *document.Board) *Session {
	s := &Session{
		ID:      id,
		BoardID: client.BoardID,
		client:  client,
		editor:  canvas.NewEditor(),
		doc:     doc,
	}
	doc.Apply(s.editor)

	// Editor callbacks fire synchronously, at most once per event; each
	// becomes one push to the client.
	s.editor.OnTransformChange = func(t canvas.Transform) {
		s.push(TypeTransform, t)
	}
	s.editor.OnPointerWorld = func(p canvas.Point) {
		s.push(TypeCursor, p)
	}
	s.editor.OnModeChange = func(m canvas.Mode) {
		s.push(TypeMode, ModePayload{Mode: m})
	}
	s.editor.OnSelectionChange = func(sh *canvas.Shape) {
		s.push(TypeSelection, SelectionPayload{Shape: sh})
	}

	return s
}

// handleMessage processes one client message.
func (s *Session) handleMessage(msg *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch msg.Type {
	case TypeInput:
		var ev canvas.Event
		if err := json.Unmarshal(msg.Payload, &ev); err != nil {
			s.pushError("invalid input event")
			return
		}
		if s.editor.Handle(ev) {
			s.dirty = true
		}

	case TypeCommand:
		var cmd Command
		if err := json.Unmarshal(msg.Payload, &cmd); err != nil {
			s.pushError("invalid command")
			return
		}
		s.handleCommand(cmd)

	case TypeRender:
		var req RenderRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			s.pushError("invalid render request")
			return
		}
		s.push(TypeFrame, canvas.CompileFrame(s.editor, req.Width, req.Height))

	default:
		slog.Warn("unknown message type", "type", msg.Type, "session", s.ID)
	}
}

func (s *Session) handleCommand(cmd Command) {
	switch cmd.Name {
	case CmdSetMode:
		s.editor.SetMode(cmd.Mode)
	case CmdSetShapeType:
		s.editor.SetShapeType(cmd.Kind)
	case CmdSetStyle:
		if cmd.Style != nil {
			s.editor.SetStyle(*cmd.Style)
		}
	case CmdApplyStyleToSelected:
		if cmd.Style != nil {
			s.editor.ApplyStyleToSelected(*cmd.Style)
			s.dirty = true
		}
	case CmdDeleteSelected:
		s.editor.DeleteSelected()
		s.dirty = true
	case CmdResetView:
		s.editor.ResetView()
	case CmdBringToFront:
		s.editor.BringToFront(cmd.ObjectID)
		s.dirty = true
	case CmdSendToBack:
		s.editor.SendToBack(cmd.ObjectID)
		s.dirty = true
	default:
		s.pushError("unknown command: " + cmd.Name)
	}
}

// snapshot captures the editor state back into the board document.
// Returns nil when nothing changed since the last save. Safe to call
// concurrently with handleMessage.
func (s *Session) snapshot() *document.Board {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.dirty {
		return nil
	}
	s.doc.Capture(s.editor)
	s.dirty = false
	return s.doc
}

func (s *Session) push(msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		slog.Error("marshal payload", "type", msgType, "error", err)
		return
	}
	s.client.Send(&Message{Type: msgType, BoardID: s.BoardID, Payload: data})
}

func (s *Session) pushError(text string) {
	s.push(TypeError, ErrorPayload{Message: text})
}
