package capability

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/gen2brain/go-fitz"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// probePDF is a structurally minimal single-page document used to exercise
// each PDF library once at startup.
var probePDF = []byte("%PDF-1.4\n" +
	"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n" +
	"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n" +
	"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n" +
	"xref\n0 4\n" +
	"0000000000 65535 f \n" +
	"0000000009 00000 n \n" +
	"0000000058 00000 n \n" +
	"0000000115 00000 n \n" +
	"trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n203\n%%EOF\n")

// probePNG is a 1x1 image exercising the PNG decoder.
var probePNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0d, 0x49, 0x44, 0x41, 0x54, 0x78, 0xda, 0x63, 0x64, 0x60, 0xf8, 0x5f,
	0x0f, 0x00, 0x02, 0x87, 0x01, 0x80, 0xeb, 0x47, 0xba, 0x92, 0x00, 0x00,
	0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

// ProbePDFCPU verifies the document-mutation library can read a document.
func ProbePDFCPU() error {
	n, err := api.PageCount(bytes.NewReader(probePDF), model.NewDefaultConfiguration())
	if err != nil {
		return err
	}
	if n != 1 {
		return fmt.Errorf("probe document reported %d pages", n)
	}
	return nil
}

// ProbeImaging verifies the image codecs decode.
func ProbeImaging() error {
	_, err := png.Decode(bytes.NewReader(probePNG))
	return err
}

// ProbeMuPDF verifies the rasterizer opens a document. go-fitz crosses a
// cgo boundary, so a broken installation can panic rather than error; the
// recover keeps a missing rasterizer from taking the process down.
func ProbeMuPDF() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("mupdf initialization panicked: %v", r)
		}
	}()
	doc, err := fitz.NewFromMemory(probePDF)
	if err != nil {
		return err
	}
	defer doc.Close()
	if doc.NumPage() < 1 {
		return fmt.Errorf("probe document reported no pages")
	}
	return nil
}
