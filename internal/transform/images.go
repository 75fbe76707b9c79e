package transform

import "github.com/pdfcpu/pdfcpu/pkg/api"

// ImagesToPDF assembles the input images into a document, one full-size
// page per image, in the order given.
func ImagesToPDF(inputs []string, outPath string) error {
	return api.ImportImagesFile(inputs, outPath, nil, conf())
}
