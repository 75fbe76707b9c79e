// Package transform delegates every document operation to the external
// document libraries. Nothing here parses PDF structure itself; each
// function is a single-pass call into pdfcpu or MuPDF with the scratch
// paths the pipeline hands it.
package transform

import (
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// conf returns a fresh pdfcpu configuration per call. Configurations carry
// per-operation state (passwords), so they are never shared.
func conf() *model.Configuration {
	return model.NewDefaultConfiguration()
}

// PageCount reports the number of pages in the document at path.
func PageCount(path string) (int, error) {
	return api.PageCountFile(path)
}
