package transform

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

var splitPageNum = regexp.MustCompile(`_(\d+)\.pdf$`)

// SplitAll splits the document into one file per page and bundles them
// into a zip at outPath, entries named page_1.pdf .. page_N.pdf.
func SplitAll(input, outPath string) error {
	dir, err := os.MkdirTemp(filepath.Dir(outPath), "split-*")
	if err != nil {
		return fmt.Errorf("create split work dir: %w", err)
	}
	defer os.RemoveAll(dir)

	if err := api.SplitFile(input, dir, 1, conf()); err != nil {
		return err
	}

	parts, err := filepath.Glob(filepath.Join(dir, "*.pdf"))
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return fmt.Errorf("split produced no pages")
	}

	// pdfcpu names parts <base>_<page>.pdf; order them numerically.
	sort.Slice(parts, func(i, j int) bool {
		return splitIndex(parts[i]) < splitIndex(parts[j])
	})

	entries := make([]ZipEntry, len(parts))
	for i, part := range parts {
		entries[i] = ZipEntry{Name: fmt.Sprintf("page_%d.pdf", i+1), Path: part}
	}
	return WriteZip(outPath, entries)
}

func splitIndex(path string) int {
	m := splitPageNum.FindStringSubmatch(path)
	if m == nil {
		return 0
	}
	n, _ := strconv.Atoi(m[1])
	return n
}
