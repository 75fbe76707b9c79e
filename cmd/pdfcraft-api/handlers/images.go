package handlers

import (
	"context"
	"net/http"

	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/pipeline"
	"github.com/pdfcraft/pdfcraft/internal/transform"
)

// ImagesToPDF handles POST /api/images-to-pdf. Each image becomes one page
// in upload order.
func (h *Handler) ImagesToPDF(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpImagesToPDF); err != nil {
		h.writeError(w, err)
		return
	}
	uploads, closeAll, err := h.fileParts(r)
	if err != nil {
		if domain.TypeOf(err) == domain.ErrorTypeNotFound {
			err = domain.NotFoundError("No images uploaded.")
		}
		h.writeError(w, err)
		return
	}
	defer closeAll()

	art, err := h.pipeline.Run(r.Context(), domain.OpImagesToPDF, "Image to PDF", uploads, pdfOutput("images.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			return transform.ImagesToPDF(inputs, outPath)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// PDFToJPG handles POST /api/pdf-to-jpg.
func (h *Handler) PDFToJPG(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpPDFToJPG); err != nil {
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

	art, err := h.pipeline.Run(r.Context(), domain.OpPDFToJPG, "PDF to JPG", []pipeline.Upload{up}, zipOutput("pdf_pages.zip"),
		func(ctx context.Context, inputs []string, outPath string) error {
			return transform.RasterizeToZip(ctx, inputs[0], outPath)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}
