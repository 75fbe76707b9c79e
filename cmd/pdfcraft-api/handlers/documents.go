package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/pages"
	"github.com/pdfcraft/pdfcraft/internal/pipeline"
	"github.com/pdfcraft/pdfcraft/internal/transform"
)

// Merge handles POST /api/merge.
func (h *Handler) Merge(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpMerge); err != nil {
		h.writeError(w, err)
		return
	}
	uploads, closeAll, err := h.fileParts(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	defer closeAll()
	if len(uploads) < 2 {
		h.writeError(w, domain.ValidationError("Please upload at least 2 PDF files to merge.", nil))
		return
	}
	if err := requirePDF(uploads...); err != nil {
		h.writeError(w, err)
		return
	}

	art, err := h.pipeline.Run(r.Context(), domain.OpMerge, "Merge", uploads, pdfOutput("merged.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			return transform.Merge(inputs, outPath)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// Split handles POST /api/split. mode=all splits every page into its own
// document inside a zip; mode=range keeps the selected pages in one
// document.
func (h *Handler) Split(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpSplit); err != nil {
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

	mode := r.FormValue("mode")
	if mode == "" {
		mode = "all"
	}
	rangeExpr := r.FormValue("range")

	var out pipeline.Output
	var fn pipeline.Transform
	if mode == "all" {
		out = zipOutput("split_pages.zip")
		fn = func(ctx context.Context, inputs []string, outPath string) error {
			return transform.SplitAll(inputs[0], outPath)
		}
	} else {
		out = pdfOutput("split.pdf")
		fn = func(ctx context.Context, inputs []string, outPath string) error {
			total, err := transform.PageCount(inputs[0])
			if err != nil {
				return err
			}
			sel, err := pages.Parse(rangeExpr, total)
			if err != nil {
				return err
			}
			return transform.Collect(inputs[0], outPath, sel)
		}
	}

	art, err := h.pipeline.Run(r.Context(), domain.OpSplit, "Split", []pipeline.Upload{up}, out, fn)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// Compress handles POST /api/compress. Size headers report the effect.
func (h *Handler) Compress(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpCompress); err != nil {
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

	var stats domain.CompressionStats
	art, err := h.pipeline.Run(r.Context(), domain.OpCompress, "Compress", []pipeline.Upload{up}, pdfOutput("compressed.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			var err error
			stats, err = transform.Compress(inputs[0], outPath)
			return err
		})
	if err != nil {
		h.writeError(w, err)
		return
	}

	w.Header().Set("X-Original-Size", strconv.FormatInt(stats.OriginalSize, 10))
	w.Header().Set("X-Compressed-Size", strconv.FormatInt(stats.CompressedSize, 10))
	w.Header().Set("X-Reduction-Percent", strconv.FormatFloat(stats.ReductionPercent(), 'f', 1, 64))
	h.sendArtifact(w, r, art)
}

// Rotate handles POST /api/rotate.
func (h *Handler) Rotate(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpRotate); err != nil {
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

	angleStr := r.FormValue("angle")
	if angleStr == "" {
		angleStr = "90"
	}
	angle, err := strconv.Atoi(angleStr)
	if err != nil || (angle != 90 && angle != 180 && angle != 270) {
		h.writeError(w, domain.ValidationError("Angle must be 90, 180, or 270.", nil))
		return
	}

	art, err := h.pipeline.Run(r.Context(), domain.OpRotate, "Rotate", []pipeline.Upload{up}, pdfOutput("rotated.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			return transform.Rotate(inputs[0], outPath, angle)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// Extract handles POST /api/extract. Selection order and duplicates carry
// through to the output document.
func (h *Handler) Extract(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpExtract); err != nil {
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

	rangeExpr := r.FormValue("range")
	if rangeExpr == "" {
		rangeExpr = "1"
	}

	art, err := h.pipeline.Run(r.Context(), domain.OpExtract, "Extract", []pipeline.Upload{up}, pdfOutput("extracted.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			total, err := transform.PageCount(inputs[0])
			if err != nil {
				return err
			}
			sel, err := pages.Parse(rangeExpr, total)
			if err != nil {
				return err
			}
			return transform.Collect(inputs[0], outPath, sel)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// RemovePages handles POST /api/remove-pages.
func (h *Handler) RemovePages(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpRemovePages); err != nil {
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

	pagesExpr := r.FormValue("pages")

	art, err := h.pipeline.Run(r.Context(), domain.OpRemovePages, "Remove pages", []pipeline.Upload{up}, pdfOutput("removed_pages.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			total, err := transform.PageCount(inputs[0])
			if err != nil {
				return err
			}
			sel, err := pages.Parse(pagesExpr, total)
			if err != nil {
				return err
			}
			return transform.Remove(inputs[0], outPath, sel)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// PageNumbers handles POST /api/page-numbers.
func (h *Handler) PageNumbers(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpPageNumbers); err != nil {
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

	position := r.FormValue("position")
	if position == "" {
		position = "bottom-center"
	}
	if !transform.ValidPosition(position) {
		h.writeError(w, domain.ValidationError("Position must be bottom-center, bottom-right, bottom-left, or top-center.", nil))
		return
	}

	art, err := h.pipeline.Run(r.Context(), domain.OpPageNumbers, "Page numbers", []pipeline.Upload{up}, pdfOutput("page_numbers.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			return transform.PageNumbers(inputs[0], outPath, position)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// Watermark handles POST /api/watermark.
func (h *Handler) Watermark(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpWatermark); err != nil {
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

	text := r.FormValue("text")
	if text == "" {
		text = "CONFIDENTIAL"
	}
	opacity := 0.3
	if v := r.FormValue("opacity"); v != "" {
		opacity, err = strconv.ParseFloat(v, 64)
		if err != nil || opacity < 0 || opacity > 1 {
			h.writeError(w, domain.ValidationError("Opacity must be a number between 0 and 1.", nil))
			return
		}
	}

	art, err := h.pipeline.Run(r.Context(), domain.OpWatermark, "Watermark", []pipeline.Upload{up}, pdfOutput("watermarked.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			return transform.Watermark(inputs[0], outPath, text, opacity)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// Protect handles POST /api/protect.
func (h *Handler) Protect(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpProtect); err != nil {
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

	password := r.FormValue("password")
	if password == "" {
		h.writeError(w, domain.ValidationError("Please provide a password.", nil))
		return
	}

	art, err := h.pipeline.Run(r.Context(), domain.OpProtect, "Protect", []pipeline.Upload{up}, pdfOutput("protected.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			return transform.Protect(inputs[0], outPath, password)
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}

// Unlock handles POST /api/unlock.
func (h *Handler) Unlock(w http.ResponseWriter, r *http.Request) {
	if err := h.registry.Check(domain.OpUnlock); err != nil {
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

	password := r.FormValue("password")

	art, err := h.pipeline.Run(r.Context(), domain.OpUnlock, "Unlock", []pipeline.Upload{up}, pdfOutput("unlocked.pdf"),
		func(ctx context.Context, inputs []string, outPath string) error {
			if err := transform.Unlock(inputs[0], outPath, password); err != nil {
				if strings.Contains(strings.ToLower(err.Error()), "password") {
					return domain.ValidationError("Wrong password. Please enter the correct password.", nil)
				}
				return err
			}
			return nil
		})
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.sendArtifact(w, r, art)
}
