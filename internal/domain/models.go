package domain

// Operation names reported by the status endpoint and checked against the
// capability registry before any file I/O happens.
const (
	OpMerge       = "merge"
	OpSplit       = "split"
	OpCompress    = "compress"
	OpRotate      = "rotate"
	OpExtract     = "extract"
	OpRemovePages = "remove_pages"
	OpPageNumbers = "page_numbers"
	OpWatermark   = "watermark"
	OpProtect     = "protect"
	OpUnlock      = "unlock"
	OpImagesToPDF = "images_to_pdf"
	OpJPGToPDF    = "jpg_to_pdf"
	OpPDFToJPG    = "pdf_to_jpg"
	OpInfo        = "info"
)

// Library names as probed at startup and reported by /api/status.
const (
	LibPDFCPU  = "pdfcpu"
	LibImaging = "imaging"
	LibMuPDF   = "mupdf"
)

// DocumentMetadata holds the subset of the PDF info dictionary exposed by
// the info endpoint.
type DocumentMetadata struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Creator string `json:"creator"`
	Subject string `json:"subject"`
}

// DocumentInfo describes one uploaded document.
type DocumentInfo struct {
	Pages     int              `json:"pages"`
	Encrypted bool             `json:"encrypted"`
	Metadata  DocumentMetadata `json:"metadata"`
	Width     float64          `json:"width,omitempty"`
	Height    float64          `json:"height,omitempty"`
	FileSize  int64            `json:"file_size"`
}

// CompressionStats reports the size effect of recompressing a document.
type CompressionStats struct {
	OriginalSize   int64
	CompressedSize int64
}

// ReductionPercent returns the size reduction rounded to one decimal place.
// Negative values mean the output grew.
func (s CompressionStats) ReductionPercent() float64 {
	if s.OriginalSize == 0 {
		return 0
	}
	pct := (1 - float64(s.CompressedSize)/float64(s.OriginalSize)) * 100
	scaled := pct * 10
	if scaled >= 0 {
		scaled += 0.5
	} else {
		scaled -= 0.5
	}
	return float64(int(scaled)) / 10
}
