package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/driftboard/driftboard/internal/document"
	"github.com/driftboard/driftboard/internal/typeid"
)

// LoadFunc fetches the latest board document for a board ID.
type LoadFunc func(boardID string) (*document.Board, error)

// SaveFunc stores a new snapshot of the board document.
type SaveFunc func(boardID string, doc *document.Board) error

// Manager owns the live editing sessions. Each connected client gets
// its own session and editor; nothing is shared between clients.
type Manager struct {
	mu         sync.RWMutex
	sessions   map[string]*Session // clientID -> session
	register   chan *Client
	unregister chan *Client
	load       LoadFunc
	save       SaveFunc
}

func NewManager(load LoadFunc, save SaveFunc) *Manager {
	return &Manager{
		sessions:   make(map[string]*Session),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		load:       load,
		save:       save,
	}
}

func (m *Manager) Run() {
	for {
		select {
		case client := <-m.register:
			m.attach(client)
		case client := <-m.unregister:
			m.detach(client)
		}
	}
}

func (m *Manager) Register(client *Client) {
	m.register <- client
}

// Stop saves every dirty session. Called on server shutdown.
func (m *Manager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, s := range m.sessions {
		if doc := s.snapshot(); doc != nil {
			if err := m.save(s.BoardID, doc); err != nil {
				slog.Error("save board on shutdown", "board", s.BoardID, "error", err)
			}
		}
	}
}

func (m *Manager) attach(client *Client) {
	doc, err := m.load(client.BoardID)
	if err != nil {
		slog.Error("load board", "board", client.BoardID, "error", err)
		client.Send(&Message{Type: TypeError, BoardID: client.BoardID,
			Payload: mustMarshal(ErrorPayload{Message: "board unavailable"})})
		close(client.send)
		return
	}

	s := newSession(typeid.NewSessionID(), client, doc)

	m.mu.Lock()
	m.sessions[client.ClientID] = s
	m.mu.Unlock()

	s.push(TypeWelcome, WelcomePayload{SessionID: s.ID, BoardID: s.BoardID})
	s.push(TypeBoardSync, doc)

	slog.Info("session opened", "session", s.ID, "board", s.BoardID, "user", client.UserID)
}

func (m *Manager) detach(client *Client) {
	m.mu.Lock()
	s, ok := m.sessions[client.ClientID]
	if ok {
		delete(m.sessions, client.ClientID)
	}
	m.mu.Unlock()
	if !ok {
		return
	}

	close(client.send)

	if doc := s.snapshot(); doc != nil {
		if err := m.save(s.BoardID, doc); err != nil {
			slog.Error("save board", "board", s.BoardID, "error", err)
		}
	}

	slog.Info("session closed", "session", s.ID, "board", s.BoardID, "user", client.UserID)
}

// handleMessage routes a client message to its session. It runs on the
// client's read goroutine, which is the only goroutine touching that
// session's editor.
func (m *Manager) handleMessage(client *Client, msg *Message) {
	m.mu.RLock()
	s, ok := m.sessions[client.ClientID]
	m.mu.RUnlock()
	if !ok {
		return
	}
	s.handleMessage(msg)
}

func mustMarshal(v interface{}) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		return []byte(`{}`)
	}
	return data
}
