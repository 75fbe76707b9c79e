package transform

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// anchors maps the request-facing position names onto the stamp anchors
// the document library understands.
var anchors = map[string]string{
	"bottom-center": "bc",
	"bottom-right":  "br",
	"bottom-left":   "bl",
	"top-center":    "tc",
}

// ValidPosition reports whether position is a supported page-number anchor.
func ValidPosition(position string) bool {
	_, ok := anchors[position]
	return ok
}

// PageNumbers stamps "N / TOTAL" onto every page at the given position.
// The library substitutes %p and %P with the page number and page count.
func PageNumbers(input, outPath, position string) error {
	anchor, ok := anchors[position]
	if !ok {
		anchor = "bc"
	}
	desc := fmt.Sprintf(
		"fontname:Helvetica, points:10, scalefactor:1 abs, position:%s, offset:0 15, fillcolor:#666666, rotation:0",
		anchor)
	wm, err := api.TextWatermark("%p / %P", desc, true, false, types.POINTS)
	if err != nil {
		return err
	}
	return api.AddWatermarksFile(input, outPath, nil, wm, conf())
}

// Watermark stamps a translucent diagonal text overlay onto every page.
func Watermark(input, outPath, text string, opacity float64) error {
	desc := fmt.Sprintf(
		"fontname:Helvetica-Bold, points:48, scalefactor:1 abs, opacity:%.2f, fillcolor:#999999, diagonal:1",
		opacity)
	wm, err := api.TextWatermark(text, desc, true, false, types.POINTS)
	if err != nil {
		return err
	}
	return api.AddWatermarksFile(input, outPath, nil, wm, conf())
}
