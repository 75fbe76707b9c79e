package handlers

import (
	"context"
	"net/http"

	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/transform"
)

// Info handles POST /api/info. Read-only: no artifact is produced.
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpInfo); err != nil {
		h.writeError(w, err)
		return
	}
	up, closeFile, err := h.filePart(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer closeFile()
	if err := requirePDF(up); err != nil {
		h.writeError(w, err)
		return
	}

	var info *domain.DocumentInfo
	err = h.pipeline.Inspect(r.Context(), domain.OpInfo, "Read PDF info", up,
		func(ctx context.Context, input string) error {
			var err error
			info, err = transform.Info(input)
			return err
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, info)
}
