// Package handlers provides HTTP handlers for the PDFCraft API.
package handlers

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/pdfcraft/pdfcraft/internal/capability"
	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/observability"
	"github.com/pdfcraft/pdfcraft/internal/pipeline"
	"github.com/pdfcraft/pdfcraft/internal/store"
)

// multipartMemory is the in-memory threshold for multipart parsing; larger
// parts spill to the OS temp dir until the pipeline stores them properly.
const multipartMemory = 16 << 20

// Handler carries the dependencies shared by every endpoint.
type Handler struct {
	logger   *observability.Logger
	pipeline *pipeline.Pipeline
	registry *capability.Registry
}

// New creates a Handler.
func New(logger *observability.Logger, p *pipeline.Pipeline, registry *capability.Registry) *Handler {
	return &Handler{logger: logger, pipeline: p, registry: registry}
}

// writeError maps a domain error onto the JSON error body.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := domain.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Msg("Request failed")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": domain.ClientMessage(err)})
}

// writeJSON writes a 200 JSON response.
func (h *Handler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// sendArtifact streams a generated file as an attachment. The artifact
// stays in the output area afterwards; the sweeper expires it.
func (h *Handler) sendArtifact(w http.ResponseWriter, r *http.Request, art *store.Artifact) {
	w.Header().Set("Content-Type", art.MimeType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", art.DownloadName))
	http.ServeFile(w, r, art.Path)
}

// filePart returns the single upload named "file". The caller must invoke
// the returned closer once the pipeline has consumed the stream.
func (h *Handler) filePart(r *http.Request) (pipeline.Upload, func(), error) {
	f, header, err := r.FormFile("file")
	if err != nil {
		return pipeline.Upload{}, nil, domain.NotFoundError("No file uploaded.")
	}
	return pipeline.Upload{Reader: f, Filename: header.Filename}, func() { f.Close() }, nil
}

// fileParts returns every upload under the "files" field, in form order.
func (h *Handler) fileParts(r *http.Request) ([]pipeline.Upload, func(), error) {
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		return nil, nil, domain.ValidationError("Could not parse upload.", err)
	}
	var headers []*multipart.FileHeader
	if r.MultipartForm != nil {
		headers = r.MultipartForm.File["files"]
	}
	if len(headers) == 0 {
		return nil, nil, domain.NotFoundError("No files uploaded.")
	}

	uploads := make([]pipeline.Upload, 0, len(headers))
	var open []multipart.File
	closeAll := func() {
		for _, f := range open {
			f.Close()
		}
	}
	for _, header := range headers {
		f, err := header.Open()
		if err != nil {
			closeAll()
			return nil, nil, domain.StorageError("Failed to read uploaded file.", err)
		}
		open = append(open, f)
		uploads = append(uploads, pipeline.Upload{Reader: f, Filename: header.Filename})
	}
	return uploads, closeAll, nil
}

// requirePDF rejects uploads whose filename does not end in .pdf.
func requirePDF(uploads ...pipeline.Upload) error {
	for _, up := range uploads {
		if !strings.HasSuffix(strings.ToLower(up.Filename), ".pdf") {
			return domain.ValidationError(fmt.Sprintf("%q is not a PDF file.", up.Filename), nil)
		}
	}
	return nil
}

var pdfOutput = func(name string) pipeline.Output {
	return pipeline.Output{Ext: ".pdf", MimeType: "application/pdf", DownloadName: name}
}

var zipOutput = func(name string) pipeline.Output {
	return pipeline.Output{Ext: ".zip", MimeType: "application/zip", DownloadName: name}
}
