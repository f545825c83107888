package canvas

import "encoding/json"

// DrawCommand is a single drawing operation for the frontend renderer
// to execute on a Canvas2D context. Geometry is in world units; the
// frame transform maps it to screen space.
type DrawCommand struct {
	Op          string  `json:"op"` // "shape" or "handles"
	ObjectID    string  `json:"objectId,omitempty"`
	Kind        Kind    `json:"kind,omitempty"`
	X           float64 `json:"x,omitempty"`
	Y           float64 `json:"y,omitempty"`
	Width       float64 `json:"width,omitempty"`
	Height      float64 `json:"height,omitempty"`
	Fill        string  `json:"fill,omitempty"`
	Stroke      string  `json:"stroke,omitempty"`
	StrokeWidth float64 `json:"strokeWidth,omitempty"`
	Opacity     float64 `json:"opacity,omitempty"`
	Selected    bool    `json:"selected,omitempty"`
	Points      []Point `json:"points,omitempty"`
}

// GridInfo bundles the zoom-dependent metrics the renderer needs for
// the grid and the axis labels.
type GridInfo struct {
	GridMetrics
	TickSpacing float64 `json:"tickSpacing"`
}

// Frame is everything the renderer reads for one pass. Compiling a
// frame never mutates core state.
type Frame struct {
	Transform []float64     `json:"transform"`
	Bounds    Rect          `json:"bounds"`
	Grid      GridInfo      `json:"grid"`
	Commands  []DrawCommand `json:"commands"`
}

// CompileFrame builds the draw-command buffer for the current editor
// state in painter's order (back to front), followed by the selection
// handles. The shape of an in-progress draw gesture is floored at the
// minimum size so the live preview never collapses.
func CompileFrame(e *Editor, canvasW, canvasH float64) Frame {
	t := e.view.Transform()
	scale := t.Scale

	frame := Frame{
		Transform: t.Matrix().ToSlice(),
		Bounds:    e.view.VisibleBounds(canvasW, canvasH),
		Grid: GridInfo{
			GridMetrics: AdaptiveGrid(scale),
			TickSpacing: TickSpacing(scale),
		},
	}

	drawingID := e.machine.DrawingShapeID()
	for _, s := range e.store.Shapes() {
		cmd := DrawCommand{
			Op:          "shape",
			ObjectID:    s.ID,
			Kind:        s.Kind,
			X:           s.X,
			Y:           s.Y,
			Width:       s.Width,
			Height:      s.Height,
			Fill:        s.Style.Fill,
			Stroke:      s.Style.Stroke,
			StrokeWidth: s.Style.StrokeWidth,
			Opacity:     s.Style.Opacity,
			Selected:    s.Selected,
		}
		if s.ID == drawingID {
			if cmd.Width < MinShapeSize {
				cmd.Width = MinShapeSize
			}
			if cmd.Height < MinShapeSize {
				cmd.Height = MinShapeSize
			}
		}
		frame.Commands = append(frame.Commands, cmd)
	}

	if sel := e.store.Selected(); sel != nil {
		handles := sel.Handles()
		points := make([]Point, len(handles))
		for i, hp := range handles {
			points[i] = hp.Point
		}
		frame.Commands = append(frame.Commands, DrawCommand{
			Op:       "handles",
			ObjectID: sel.ID,
			Points:   points,
		})
	}

	return frame
}

// ToJSON serializes the frame for the wire.
func (f Frame) ToJSON() (string, error) {
	data, err := json.Marshal(f)
	if err != nil {
		return "{}", err
	}
	return string(data), nil
}
