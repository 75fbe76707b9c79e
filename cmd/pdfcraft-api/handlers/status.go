package handlers

import (
	"net/http"

	"github.com/pdfcraft/pdfcraft/internal/domain"
)

// StatusResponse is the capability report served by /api/status.
type StatusResponse struct {
	Status         string   `json:"status"`
	PDFCPU         bool     `json:"pdfcpu"`
	Imaging        bool     `json:"imaging"`
	MuPDF          bool     `json:"mupdf"`
	ToolsAvailable []string `json:"tools_available"`
}

// Status handles GET /api/status.
func (h *Handler) Status(w http.ResponseWriter, r *http.Request) {
	libs := h.registry.Libraries()
	h.writeJSON(w, StatusResponse{
		Status:         "online",
		PDFCPU:         libs[domain.LibPDFCPU],
		Imaging:        libs[domain.LibImaging],
		MuPDF:          libs[domain.LibMuPDF],
		ToolsAvailable: h.registry.AvailableOperations(),
	})
}
