package export

import (
	"bytes"
	"fmt"
	"html"

	"github.com/driftboard/driftboard/internal/canvas"
	"github.com/driftboard/driftboard/internal/document"
)

const boardPadding = 40.0

// BoardSVG renders a board document as a standalone SVG image. The
// viewBox is the union of all shape bounds plus padding, so the export
// is zoom-independent.
func BoardSVG(b *document.Board) []byte {
	var bounds canvas.Rect
	for i := range b.Shapes {
		bounds = bounds.Union(shapeBounds(&b.Shapes[i]))
	}
	if bounds.IsEmpty() {
		bounds = canvas.Rect{X: 0, Y: 0, Width: 800, Height: 600}
	}
	bounds.X -= boardPadding
	bounds.Y -= boardPadding
	bounds.Width += 2 * boardPadding
	bounds.Height += 2 * boardPadding

	var svg bytes.Buffer
	fmt.Fprintf(&svg, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%.2f %.2f %.2f %.2f">`+"\n",
		bounds.X, bounds.Y, bounds.Width, bounds.Height)

	for i := range b.Shapes {
		writeShape(&svg, &b.Shapes[i])
	}

	svg.WriteString("</svg>\n")
	return svg.Bytes()
}

func shapeBounds(s *canvas.Shape) canvas.Rect {
	return canvas.Rect{X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

func writeShape(svg *bytes.Buffer, s *canvas.Shape) {
	// Color strings come from client-posted documents and must not be
	// able to break out of the attribute.
	style := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%.2f" opacity="%.3f"`,
		html.EscapeString(s.Style.Fill), html.EscapeString(s.Style.Stroke),
		s.Style.StrokeWidth, s.Style.Opacity)

	switch s.Kind {
	case canvas.KindEllipse:
		fmt.Fprintf(svg, `  <ellipse cx="%.2f" cy="%.2f" rx="%.2f" ry="%.2f" %s/>`+"\n",
			s.X+s.Width/2, s.Y+s.Height/2, s.Width/2, s.Height/2, style)
	case canvas.KindTriangle:
		fmt.Fprintf(svg, `  <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" %s/>`+"\n",
			s.X+s.Width/2, s.Y, s.X, s.Y+s.Height, s.X+s.Width, s.Y+s.Height, style)
	default:
		fmt.Fprintf(svg, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" %s/>`+"\n",
			s.X, s.Y, s.Width, s.Height, style)
	}
}
