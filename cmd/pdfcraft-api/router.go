// Package main provides the API router setup.
package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pdfcraft/pdfcraft/cmd/pdfcraft-api/handlers"
	"github.com/pdfcraft/pdfcraft/cmd/pdfcraft-api/middleware"
	"github.com/pdfcraft/pdfcraft/internal/capability"
	"github.com/pdfcraft/pdfcraft/internal/config"
	"github.com/pdfcraft/pdfcraft/internal/observability"
	"github.com/pdfcraft/pdfcraft/internal/pipeline"
	"github.com/pdfcraft/pdfcraft/internal/store"
)

// NewRouter creates the main API router with all routes configured.
func NewRouter(logger *observability.Logger, cfg *config.Config, st *store.Store, registry *capability.Registry) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORS([]string{"*"}))
	r.Use(middleware.MaxBody(cfg.Server.MaxUploadBytes))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy","service":"pdfcraft"}`))
	})

	p := pipeline.New(st, registry, logger)
	h := handlers.New(logger, p, registry)

	r.Route("/api", func(r chi.Router) {
		r.Get("/status", h.Status)

		r.Post("/merge", h.Merge)
		r.Post("/split", h.Split)
		r.Post("/compress", h.Compress)
		r.Post("/rotate", h.Rotate)
		r.Post("/extract", h.Extract)
		r.Post("/remove-pages", h.RemovePages)
		r.Post("/page-numbers", h.PageNumbers)
		r.Post("/watermark", h.Watermark)
		r.Post("/protect", h.Protect)
		r.Post("/unlock", h.Unlock)
		r.Post("/images-to-pdf", h.ImagesToPDF)
		r.Post("/pdf-to-jpg", h.PDFToJPG)
		r.Post("/info", h.Info)
	})

	return r
}
