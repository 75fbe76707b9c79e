package transform

import (
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdfcraft/pdfcraft/internal/pages"
)

// Collect writes a new document containing exactly the selected pages, in
// selection order, duplicates included.
func Collect(input, outPath string, sel pages.Selection) error {
	return api.CollectFile(input, outPath, sel.OneBased(), conf())
}

// Remove writes a new document with the selected pages dropped. Order and
// duplicates in the selection are irrelevant here; only membership counts.
func Remove(input, outPath string, sel pages.Selection) error {
	set := sel.Set()
	selected := make([]string, 0, len(set))
	for p := range set {
		selected = append(selected, strconv.Itoa(p+1))
	}
	return api.RemovePagesFile(input, outPath, selected, conf())
}

// Rotate rotates every page clockwise by angle degrees. Callers validate
// the angle; pdfcpu accepts multiples of 90.
func Rotate(input, outPath string, angle int) error {
	return api.RotateFile(input, outPath, angle, nil, conf())
}
