package capability

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/observability"
)

func testRegistry(pdfcpuOK, imagingOK, mupdfOK bool) *Registry {
	probe := func(ok bool) Probe {
		return func() error {
			if ok {
				return nil
			}
			return errors.New("probe failed")
		}
	}
	return NewRegistry(map[string]Probe{
		domain.LibPDFCPU:  probe(pdfcpuOK),
		domain.LibImaging: probe(imagingOK),
		domain.LibMuPDF:   probe(mupdfOK),
	}, observability.NewTestLogger())
}

func TestAvailableRequiresAllLibraries(t *testing.T) {
	r := testRegistry(true, true, false)

	assert.True(t, r.Available(domain.OpMerge))
	assert.True(t, r.Available(domain.OpImagesToPDF))
	assert.False(t, r.Available(domain.OpPDFToJPG), "rasterization needs mupdf")
	assert.False(t, r.Available("no_such_op"))
}

func TestCheckNamesMissingDependency(t *testing.T) {
	r := testRegistry(false, true, true)

	err := r.Check(domain.OpMerge)
	assert.Equal(t, domain.ErrorTypeCapability, domain.TypeOf(err))
	assert.Contains(t, err.Error(), "pdfcpu not installed")

	assert.NoError(t, r.Check(domain.OpPDFToJPG))
}

func TestAvailableOperationsExcludesDisabled(t *testing.T) {
	r := testRegistry(true, false, false)

	ops := r.AvailableOperations()
	assert.Contains(t, ops, domain.OpSplit)
	assert.Contains(t, ops, domain.OpWatermark)
	assert.NotContains(t, ops, domain.OpImagesToPDF)
	assert.NotContains(t, ops, domain.OpPDFToJPG)
	assert.IsNonDecreasing(t, ops, "status list must be stable")
}

func TestLibrariesReportsProbeOutcomes(t *testing.T) {
	r := testRegistry(true, true, false)

	libs := r.Libraries()
	assert.True(t, libs[domain.LibPDFCPU])
	assert.True(t, libs[domain.LibImaging])
	assert.False(t, libs[domain.LibMuPDF])
}

func TestProbePDFCPU(t *testing.T) {
	assert.NoError(t, ProbePDFCPU())
}

func TestProbeImaging(t *testing.T) {
	assert.NoError(t, ProbeImaging())
}
