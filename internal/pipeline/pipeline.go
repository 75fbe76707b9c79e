// Package pipeline drives every transform request through one uniform
// lifecycle: capability check, upload storage, transform, cleanup.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/pdfcraft/pdfcraft/internal/capability"
	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/observability"
	"github.com/pdfcraft/pdfcraft/internal/store"
)

// Upload is one inbound file part, not yet persisted.
type Upload struct {
	Reader   io.Reader
	Filename string
}

// Output describes the artifact a transform will produce.
type Output struct {
	Ext          string
	MimeType     string
	DownloadName string
}

// Transform runs one external library call. inputs are the stored upload
// paths in request order; the result must be written to outPath.
type Transform func(ctx context.Context, inputs []string, outPath string) error

// Pipeline wires the capability registry and scratch store into the
// request lifecycle.
type Pipeline struct {
	store    *store.Store
	registry *capability.Registry
	logger   *observability.Logger
}

// New creates a Pipeline.
func New(st *store.Store, registry *capability.Registry, logger *observability.Logger) *Pipeline {
	return &Pipeline{store: st, registry: registry, logger: logger}
}

// Run executes one transform request end to end.
//
// Uploads are persisted to the scratch area and released on every exit
// path, success or failure. The output artifact is retained on success so
// the response body can be streamed from it; the background sweeper expires
// it later. On failure the partial output is released immediately.
//
// Errors coming out of fn that already carry a domain type (range
// validation, for example) pass through untouched; anything else is tagged
// as a transform failure under "<label> failed".
func (p *Pipeline) Run(ctx context.Context, op, label string, uploads []Upload, out Output, fn Transform) (*store.Artifact, error) {
	if err := p.registry.Check(op); err != nil {
		return nil, err
	}

	started := time.Now()
	log := p.logger.WithOperation(op)

	saved := make([]*store.Upload, 0, len(uploads))
	defer func() {
		for _, u := range saved {
			p.store.Release(u.Path)
		}
	}()

	inputs := make([]string, 0, len(uploads))
	for _, up := range uploads {
		h, err := p.store.Save(up.Reader, up.Filename)
		if err != nil {
			return nil, err
		}
		saved = append(saved, h)
		inputs = append(inputs, h.Path)
	}

	artifact := p.store.AllocateOutput(out.Ext, out.MimeType, out.DownloadName)

	if err := fn(ctx, inputs, artifact.Path); err != nil {
		p.store.Release(artifact.Path)
		log.Warn().Err(err).Dur("elapsed", time.Since(started)).Msg("Transform failed")
		if domain.TypeOf(err) != "" {
			return nil, err
		}
		return nil, domain.TransformError(fmt.Sprintf("%s failed", label), err)
	}

	log.Info().
		Int("inputs", len(inputs)).
		Str("artifact", artifact.ID).
		Dur("elapsed", time.Since(started)).
		Msg("Transform complete")
	return artifact, nil
}

// Inspect executes a read-only operation against a single upload: same
// lifecycle as Run but without an output artifact.
func (p *Pipeline) Inspect(ctx context.Context, op, label string, up Upload, fn func(ctx context.Context, input string) error) error {
	if err := p.registry.Check(op); err != nil {
		return err
	}

	h, err := p.store.Save(up.Reader, up.Filename)
	if err != nil {
		return err
	}
	defer p.store.Release(h.Path)

	if err := fn(ctx, h.Path); err != nil {
		if domain.TypeOf(err) != "" {
			return err
		}
		return domain.TransformError(fmt.Sprintf("%s failed", label), err)
	}
	return nil
}
