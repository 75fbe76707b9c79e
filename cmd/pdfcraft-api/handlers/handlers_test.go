package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdfcraft/pdfcraft/internal/capability"
	"github.com/pdfcraft/pdfcraft/internal/domain"
	"github.com/pdfcraft/pdfcraft/internal/observability"
	"github.com/pdfcraft/pdfcraft/internal/pipeline"
	"github.com/pdfcraft/pdfcraft/internal/store"
)

// newTestHandler builds a Handler on a temp scratch store with the given
// library availability.
func newTestHandler(t *testing.T, libs map[string]bool) *Handler {
	t.Helper()
	logger := observability.NewTestLogger()

	probes := make(map[string]capability.Probe, len(libs))
	for lib, ok := range libs {
		ok := ok
		probes[lib] = func() error {
			if ok {
				return nil
			}
			return errors.New("probe failed")
		}
	}
	registry := capability.NewRegistry(probes, logger)

	dir := t.TempDir()
	st, err := store.New(filepath.Join(dir, "uploads"), filepath.Join(dir, "outputs"), logger)
	require.NoError(t, err)

	return New(logger, pipeline.New(st, registry, logger), registry)
}

func allLibs() map[string]bool {
	return map[string]bool{
		domain.LibPDFCPU:  true,
		domain.LibImaging: true,
		domain.LibMuPDF:   true,
	}
}

type part struct {
	field    string
	filename string
	content  string
}

// multipartRequest builds a POST with file parts and plain form fields.
func multipartRequest(t *testing.T, url string, parts []part, fields map[string]string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for _, p := range parts {
		fw, err := w.CreateFormFile(p.field, p.filename)
		require.NoError(t, err)
		_, err = fw.Write([]byte(p.content))
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, url, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func errorBody(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body["error"]
}

func TestStatusReportsAllLibraries(t *testing.T) {
	h := newTestHandler(t, allLibs())

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.True(t, resp.PDFCPU)
	assert.True(t, resp.Imaging)
	assert.True(t, resp.MuPDF)
	assert.Contains(t, resp.ToolsAvailable, domain.OpMerge)
	assert.Contains(t, resp.ToolsAvailable, domain.OpPDFToJPG)
}

func TestStatusDegradedWithoutMuPDF(t *testing.T) {
	libs := allLibs()
	libs[domain.LibMuPDF] = false
	h := newTestHandler(t, libs)

	rec := httptest.NewRecorder()
	h.Status(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

	var resp StatusResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "online", resp.Status)
	assert.False(t, resp.MuPDF)
	assert.NotContains(t, resp.ToolsAvailable, domain.OpPDFToJPG)
	assert.Contains(t, resp.ToolsAvailable, domain.OpMerge)
}

func TestMergeRequiresAtLeastTwoFiles(t *testing.T) {
	h := newTestHandler(t, allLibs())

	req := multipartRequest(t, "/api/merge", []part{
		{"files", "one.pdf", "%PDF-1.4"},
	}, nil)
	rec := httptest.NewRecorder()
	h.Merge(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please upload at least 2 PDF files to merge.", errorBody(t, rec))
}

func TestMergeRejectsNonPDFFilename(t *testing.T) {
	h := newTestHandler(t, allLibs())

	req := multipartRequest(t, "/api/merge", []part{
		{"files", "a.pdf", "%PDF-1.4"},
		{"files", "notes.txt", "plain text"},
	}, nil)
	rec := httptest.NewRecorder()
	h.Merge(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, `"notes.txt" is not a PDF file.`, errorBody(t, rec))
}

func TestMergeWithoutFiles(t *testing.T) {
	h := newTestHandler(t, allLibs())

	req := multipartRequest(t, "/api/merge", nil, map[string]string{"unused": "1"})
	rec := httptest.NewRecorder()
	h.Merge(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No files uploaded.", errorBody(t, rec))
}

func TestCompressWithoutFilePart(t *testing.T) {
	h := newTestHandler(t, allLibs())

	req := multipartRequest(t, "/api/compress", nil, map[string]string{"unused": "1"})
	rec := httptest.NewRecorder()
	h.Compress(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded.", errorBody(t, rec))
}

func TestRotateRejectsBadAngle(t *testing.T) {
	h := newTestHandler(t, allLibs())

	for _, angle := range []string{"45", "-90", "360", "ninety"} {
		req := multipartRequest(t, "/api/rotate", []part{
			{"file", "doc.pdf", "%PDF-1.4"},
		}, map[string]string{"angle": angle})
		rec := httptest.NewRecorder()
		h.Rotate(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "angle %s", angle)
		assert.Equal(t, "Angle must be 90, 180, or 270.", errorBody(t, rec))
	}
}

func TestWatermarkRejectsBadOpacity(t *testing.T) {
	h := newTestHandler(t, allLibs())

	for _, opacity := range []string{"1.5", "-0.3", "opaque"} {
		req := multipartRequest(t, "/api/watermark", []part{
			{"file", "doc.pdf", "%PDF-1.4"},
		}, map[string]string{"opacity": opacity})
		rec := httptest.NewRecorder()
		h.Watermark(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "opacity %s", opacity)
		assert.Equal(t, "Opacity must be a number between 0 and 1.", errorBody(t, rec))
	}
}

func TestWatermarkAcceptsZeroOpacity(t *testing.T) {
	h := newTestHandler(t, allLibs())

	// Not a readable document, so the request fails later in the
	// transform; opacity 0 itself must get past validation.
	req := multipartRequest(t, "/api/watermark", []part{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, map[string]string{"opacity": "0"})
	rec := httptest.NewRecorder()
	h.Watermark(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.NotEqual(t, "Opacity must be a number between 0 and 1.", errorBody(t, rec))
	assert.Contains(t, errorBody(t, rec), "Watermark failed")
}

func TestPageNumbersRejectsUnknownPosition(t *testing.T) {
	h := newTestHandler(t, allLibs())

	req := multipartRequest(t, "/api/page-numbers", []part{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, map[string]string{"position": "middle"})
	rec := httptest.NewRecorder()
	h.PageNumbers(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Position must be bottom-center, bottom-right, bottom-left, or top-center.", errorBody(t, rec))
}

func TestProtectRequiresPassword(t *testing.T) {
	h := newTestHandler(t, allLibs())

	req := multipartRequest(t, "/api/protect", []part{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, nil)
	rec := httptest.NewRecorder()
	h.Protect(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Please provide a password.", errorBody(t, rec))
}

func TestMergeUnavailableWithoutPDFCPU(t *testing.T) {
	libs := allLibs()
	libs[domain.LibPDFCPU] = false
	h := newTestHandler(t, libs)

	req := multipartRequest(t, "/api/merge", []part{
		{"files", "a.pdf", "%PDF-1.4"},
		{"files", "b.pdf", "%PDF-1.4"},
	}, nil)
	rec := httptest.NewRecorder()
	h.Merge(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "pdfcpu not installed. Required: github.com/pdfcpu/pdfcpu", errorBody(t, rec))
}

func TestImagesToPDFWithoutImages(t *testing.T) {
	h := newTestHandler(t, allLibs())

	req := multipartRequest(t, "/api/images-to-pdf", nil, map[string]string{"unused": "1"})
	rec := httptest.NewRecorder()
	h.ImagesToPDF(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No images uploaded.", errorBody(t, rec))
}

func TestPDFToJPGUnavailableWithoutMuPDF(t *testing.T) {
	libs := allLibs()
	libs[domain.LibMuPDF] = false
	h := newTestHandler(t, libs)

	req := multipartRequest(t, "/api/pdf-to-jpg", []part{
		{"file", "doc.pdf", "%PDF-1.4"},
	}, nil)
	rec := httptest.NewRecorder()
	h.PDFToJPG(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, errorBody(t, rec), "mupdf not installed")
}
