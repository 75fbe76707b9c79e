package transform

import "github.com/pdfcpu/pdfcpu/pkg/api"

// Merge concatenates the input documents into outPath in the order given.
func Merge(inputs []string, outPath string) error {
	return api.MergeCreateFile(inputs, outPath, false, conf())
}
