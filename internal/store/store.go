// Package store manages the scratch filesystem areas for uploaded inputs
// and generated outputs.
package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/observability"
)

// Upload identifies one saved input file. It is owned exclusively by the
// request that created it and released when the request finishes.
type Upload struct {
	ID           string
	OriginalName string
	Path         string
	CreatedAt    time.Time
}

// Artifact identifies one generated output file. It outlives the request
// that produced it; the background sweeper expires it later.
type Artifact struct {
	ID           string
	Path         string
	MimeType     string
	DownloadName string
	CreatedAt    time.Time
}

// Store owns the uploads and outputs scratch directories.
type Store struct {
	uploadDir string
	outputDir string
	logger    *observability.Logger
}

// New creates the scratch directories if needed and returns a Store.
func New(uploadDir, outputDir string, logger *observability.Logger) (*Store, error) {
	for _, dir := range []string{uploadDir, outputDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create scratch dir %s: %w", dir, err)
		}
	}
	return &Store{uploadDir: uploadDir, outputDir: outputDir, logger: logger}, nil
}

// Save writes the stream into the uploads area under a fresh identifier.
// Only the lowercase extension of originalName survives into the stored
// path, so a hostile filename can never escape the scratch area.
func (s *Store) Save(r io.Reader, originalName string) (*Upload, error) {
	id := uuid.NewString()
	ext := strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.uploadDir, id+ext)

	f, err := os.Create(path)
	if err != nil {
		return nil, domain.StorageError("Failed to store uploaded file.", err)
	}
	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		s.Release(path)
		return nil, domain.StorageError("Failed to store uploaded file.", err)
	}

	return &Upload{
		ID:           id,
		OriginalName: originalName,
		Path:         path,
		CreatedAt:    time.Now(),
	}, nil
}

// AllocateOutput reserves an identifier and path in the outputs area.
// Writing the file is the transform's responsibility.
func (s *Store) AllocateOutput(ext, mimeType, downloadName string) *Artifact {
	id := uuid.NewString()
	return &Artifact{
		ID:           id,
		Path:         filepath.Join(s.outputDir, id+ext),
		MimeType:     mimeType,
		DownloadName: downloadName,
		CreatedAt:    time.Now(),
	}
}

// Release deletes the file at path if it still exists. It is idempotent:
// a file already gone, including one the sweeper raced us to, is success.
func (s *Store) Release(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Warn().Str("path", path).Err(err).Msg("Failed to release scratch file")
	}
}

// Dirs returns the scratch directories, in the order uploads, outputs.
func (s *Store) Dirs() []string {
	return []string{s.uploadDir, s.outputDir}
}
