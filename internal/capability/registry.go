// Package capability tracks which document libraries initialized at startup
// and which operations they make available.
package capability

import (
	"fmt"
	"sort"

	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/observability"
)

// installHint names the module to install for each library, used in the
// fixed "not installed" error message.
var installHint = map[string]string{
	domain.LibPDFCPU:  "github.com/pdfcpu/pdfcpu",
	domain.LibImaging: "image/png and image/jpeg codecs",
	domain.LibMuPDF:   "github.com/gen2brain/go-fitz (requires the MuPDF shared objects)",
}

// requires maps each operation to every library it depends on. An operation
// is available only if all of its libraries probed successfully.
var requires = map[string][]string{
	domain.OpMerge:       {domain.LibPDFCPU},
	domain.OpSplit:       {domain.LibPDFCPU},
	domain.OpCompress:    {domain.LibPDFCPU},
	domain.OpRotate:      {domain.LibPDFCPU},
	domain.OpExtract:     {domain.LibPDFCPU},
	domain.OpRemovePages: {domain.LibPDFCPU},
	domain.OpPageNumbers: {domain.LibPDFCPU},
	domain.OpWatermark:   {domain.LibPDFCPU},
	domain.OpProtect:     {domain.LibPDFCPU},
	domain.OpUnlock:      {domain.LibPDFCPU},
	domain.OpImagesToPDF: {domain.LibImaging, domain.LibPDFCPU},
	domain.OpJPGToPDF:    {domain.LibImaging, domain.LibPDFCPU},
	domain.OpPDFToJPG:    {domain.LibMuPDF, domain.LibImaging},
	domain.OpInfo:        {domain.LibPDFCPU},
}

// Registry is the process-wide capability set. It is computed once at
// startup and never mutated afterwards, so concurrent reads need no
// synchronization.
type Registry struct {
	libs map[string]bool
}

// Probe is one library initialization check.
type Probe func() error

// NewRegistry runs every probe once and records the outcome.
func NewRegistry(probes map[string]Probe, logger *observability.Logger) *Registry {
	libs := make(map[string]bool, len(probes))
	for name, probe := range probes {
		err := probe()
		libs[name] = err == nil
		if err != nil {
			logger.Warn().Str("library", name).Err(err).Msg("Library probe failed, dependent operations disabled")
		} else {
			logger.Info().Str("library", name).Msg("Library ready")
		}
	}
	return &Registry{libs: libs}
}

// NewDefaultRegistry probes the real document libraries.
func NewDefaultRegistry(logger *observability.Logger) *Registry {
	return NewRegistry(map[string]Probe{
		domain.LibPDFCPU:  ProbePDFCPU,
		domain.LibImaging: ProbeImaging,
		domain.LibMuPDF:   ProbeMuPDF,
	}, logger)
}

// Available reports whether every library the operation needs is ready.
func (r *Registry) Available(op string) bool {
	deps, ok := requires[op]
	if !ok {
		return false
	}
	for _, lib := range deps {
		if !r.libs[lib] {
			return false
		}
	}
	return true
}

// Check returns nil if op is available, or a capability error naming the
// first missing dependency. It runs before any file I/O.
func (r *Registry) Check(op string) error {
	deps, ok := requires[op]
	if !ok {
		return domain.CapabilityError(fmt.Sprintf("Unknown operation %q.", op), nil)
	}
	for _, lib := range deps {
		if !r.libs[lib] {
			return domain.CapabilityError(
				fmt.Sprintf("%s not installed. Required: %s", lib, installHint[lib]), nil)
		}
	}
	return nil
}

// AvailableOperations lists every operation whose dependencies are all
// ready, sorted for stable status responses.
func (r *Registry) AvailableOperations() []string {
	ops := make([]string, 0, len(requires))
	for op := range requires {
		if r.Available(op) {
			ops = append(ops, op)
		}
	}
	sort.Strings(ops)
	return ops
}

// Libraries reports the per-library probe outcomes.
func (r *Registry) Libraries() map[string]bool {
	out := make(map[string]bool, len(r.libs))
	for name, ok := range r.libs {
		out[name] = ok
	}
	return out
}
