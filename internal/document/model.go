package document

import (
	"encoding/json"
	"fmt"

	"github.com/driftboard/driftboard/internal/canvas"
)

// Board is the persisted form of a drawing board: metadata, the saved
// view transform, the default style and the ordered shape list (slice
// order is z-order, later on top).
type Board struct {
	Meta         Meta             `json:"meta"`
	View         canvas.Transform `json:"view"`
	DefaultStyle canvas.Style     `json:"defaultStyle"`
	Shapes       []canvas.Shape   `json:"shapes"`
}

// Meta is board-level metadata.
type Meta struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// NewEmptyBoard creates an empty board for a new project.
func NewEmptyBoard(boardID, name string) *Board {
	return &Board{
		Meta: Meta{
			ID:      boardID,
			Name:    name,
			Version: 1,
		},
		View: canvas.Transform{Scale: 1},
		DefaultStyle: canvas.Style{
			Fill:        "#3b82f6",
			Stroke:      "#1e3a8a",
			StrokeWidth: 2,
			Opacity:     1,
		},
		Shapes: []canvas.Shape{},
	}
}

// Parse decodes a board document from JSON.
func Parse(data []byte) (*Board, error) {
	var b Board
	if err := json.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse board document: %w", err)
	}
	return &b, nil
}

// Marshal encodes the board document as JSON.
func (b *Board) Marshal() ([]byte, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("marshal board document: %w", err)
	}
	return data, nil
}

// Apply loads the board into an editor, replacing its state.
func (b *Board) Apply(e *canvas.Editor) {
	shapes := make([]*canvas.Shape, len(b.Shapes))
	for i := range b.Shapes {
		s := b.Shapes[i]
		s.Selected = false
		shapes[i] = &s
	}
	e.Restore(b.View, b.DefaultStyle, shapes)
}

// Capture copies the editor state back into the board, bumping the
// document version.
func (b *Board) Capture(e *canvas.Editor) {
	b.View = e.Viewport().Transform()
	b.DefaultStyle = e.DefaultStyle()

	stored := e.Store().Shapes()
	b.Shapes = make([]canvas.Shape, len(stored))
	for i, s := range stored {
		b.Shapes[i] = *s
		b.Shapes[i].Selected = false
	}

	b.Meta.Version++
}
