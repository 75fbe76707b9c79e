package transform

import (
	"context"
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/gen2brain/go-fitz"
)

const (
	rasterDPI     = 150
	rasterQuality = 85
)

// RasterizeToZip renders every page of the document to a JPEG at 150 DPI
// and bundles the images into a zip at outPath, entries named
// page_1.jpg .. page_N.jpg.
func RasterizeToZip(ctx context.Context, input, outPath string) error {
	doc, err := fitz.New(input)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	pageCount := doc.NumPage()
	if pageCount == 0 {
		return fmt.Errorf("document has no pages")
	}

	dir, err := os.MkdirTemp(filepath.Dir(outPath), "raster-*")
	if err != nil {
		return fmt.Errorf("create raster work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	entries := make([]ZipEntry, 0, pageCount)
	for pageNum := 0; pageNum < pageCount; pageNum++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		img, err := doc.ImageDPI(pageNum, rasterDPI)
		if err != nil {
			return fmt.Errorf("render page %d: %w", pageNum+1, err)
		}

		pagePath := filepath.Join(dir, fmt.Sprintf("page_%d.jpg", pageNum+1))
		out, err := os.Create(pagePath)
		if err != nil {
			return fmt.Errorf("create image for page %d: %w", pageNum+1, err)
		}
		err = jpeg.Encode(out, img, &jpeg.Options{Quality: rasterQuality})
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("encode page %d: %w", pageNum+1, err)
		}

		entries = append(entries, ZipEntry{Name: filepath.Base(pagePath), Path: pagePath})
	}

	return WriteZip(outPath, entries)
}
