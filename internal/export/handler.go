package export

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/driftboard/driftboard/internal/document"
)

const maxDocumentSize = 10 << 20 // 10MB

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// ExportSVG renders the board document posted in the request body as an
// SVG attachment.
func (h *Handler) ExportSVG(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		http.Error(w, "request too large", http.StatusBadRequest)
		return
	}

	doc, err := document.Parse(body)
	if err != nil {
		http.Error(w, "invalid board document", http.StatusBadRequest)
		return
	}

	name := doc.Meta.Name
	if name == "" {
		name = "board"
	}
	name = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			return r
		}
		return '-'
	}, name)

	svg := BoardSVG(doc)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s.svg"`, name))
	w.Write(svg)

	slog.Info("export complete", "board", doc.Meta.ID, "shapes", len(doc.Shapes), "size", len(svg))
}
