package transform

import (
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pdfcraft/pdfcraft/internal/domain"
)

// Compress rewrites the document with optimized content streams and
// reports the before/after sizes.
func Compress(input, outPath string) (domain.CompressionStats, error) {
	var stats domain.CompressionStats

	in, err := os.Stat(input)
	if err != nil {
		return stats, err
	}

	if err := api.OptimizeFile(input, outPath, conf()); err != nil {
		return stats, err
	}

	out, err := os.Stat(outPath)
	if err != nil {
		return stats, err
	}

	stats.OriginalSize = in.Size()
	stats.CompressedSize = out.Size()
	return stats, nil
}
