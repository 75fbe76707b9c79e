package store

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pdfcraft/pdfcraft/internal/observability"
)

// Sweeper deletes scratch files whose last-modified time is older than the
// retention window. It is a best-effort safety net behind the per-request
// release path, so every failure mode is tolerated and logged at most.
type Sweeper struct {
	store     *Store
	interval  time.Duration
	retention time.Duration
	logger    *observability.Logger
}

// NewSweeper creates a sweeper over the store's scratch areas.
func NewSweeper(store *Store, interval, retention time.Duration, logger *observability.Logger) *Sweeper {
	return &Sweeper{
		store:     store,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Run sweeps on the configured interval until ctx is cancelled. It is meant
// to be started once, as a goroutine owned by the process supervisor.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().
		Dur("interval", s.interval).
		Dur("retention", s.retention).
		Msg("Scratch sweeper started")

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("Scratch sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(time.Now())
		}
	}
}

// SweepOnce deletes every expired file in both scratch areas. Files that
// vanish between listing and removal are fine; another request or a
// concurrent sweep got there first.
func (s *Sweeper) SweepOnce(now time.Time) int {
	removed := 0
	for _, dir := range s.store.Dirs() {
		entries, err := os.ReadDir(dir)
		if err != nil {
			s.logger.Warn().Str("dir", dir).Err(err).Msg("Sweep could not list scratch dir")
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			info, err := entry.Info()
			if err != nil {
				continue
			}
			if now.Sub(info.ModTime()) <= s.retention {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				s.logger.Warn().Str("path", path).Err(err).Msg("Sweep failed to remove file")
				continue
			}
			removed++
		}
	}
	if removed > 0 {
		s.logger.Info().Int("removed", removed).Msg("Swept expired scratch files")
	}
	return removed
}
