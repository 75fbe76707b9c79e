package transform

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
)

// ZipEntry names one file to place into an archive.
type ZipEntry struct {
	Name string
	Path string
}

// WriteZip writes a deflate-compressed archive of the entries to outPath.
func WriteZip(outPath string, entries []ZipEntry) error {
	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	zw := zip.NewWriter(out)

	write := func(entry ZipEntry) error {
		src, err := os.Open(entry.Path)
		if err != nil {
			return err
		}
		defer src.Close()
		dst, err := zw.Create(entry.Name)
		if err != nil {
			return err
		}
		_, err = io.Copy(dst, src)
		return err
	}

	for _, entry := range entries {
		if err := write(entry); err != nil {
			zw.Close()
			out.Close()
			os.Remove(outPath)
			return fmt.Errorf("archive %s: %w", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}
	return out.Close()
}
