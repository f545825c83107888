package document

import "github.com/driftboard/driftboard/internal/canvas"

// NewSampleBoard creates a small demo board used by the playground and
// by manual frontend testing.
func NewSampleBoard(boardID string) *Board {
	b := NewEmptyBoard(boardID, "Sample Board")

	b.Shapes = []canvas.Shape{
		{
			ID:     "shape_sample_rect",
			Kind:   canvas.KindRectangle,
			X:      80,
			Y:      60,
			Width:  220,
			Height: 140,
			Style: canvas.Style{
				Fill:        "#3b82f6",
				Stroke:      "#1e3a8a",
				StrokeWidth: 2,
				Opacity:     1,
			},
		},
		{
			ID:     "shape_sample_ellipse",
			Kind:   canvas.KindEllipse,
			X:      360,
			Y:      120,
			Width:  160,
			Height: 160,
			Style: canvas.Style{
				Fill:        "#f59e0b",
				Stroke:      "#92400e",
				StrokeWidth: 2,
				Opacity:     0.9,
			},
		},
		{
			ID:     "shape_sample_triangle",
			Kind:   canvas.KindTriangle,
			X:      200,
			Y:      260,
			Width:  180,
			Height: 150,
			Style: canvas.Style{
				Fill:        "#10b981",
				Stroke:      "#064e3b",
				StrokeWidth: 2,
				Opacity:     1,
			},
		},
	}

	return b
}
