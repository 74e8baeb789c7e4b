package ocr

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// maxPDFPages caps text extraction on very large PDFs.
const maxPDFPages = 50

// PDFSource extracts the embedded text layer from PDF uploads. Scanned PDFs
// with no text layer don't fail: they produce a readable placeholder telling
// the user to re-upload as an image so full OCR can run.
type PDFSource struct{}

func NewPDFSource() *PDFSource { return &PDFSource{} }

func (s *PDFSource) ExtractRawText(_ context.Context, filename string, data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("error opening PDF: %w", err)
	}

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return noTextPlaceholder(filename), nil
	}
	return text, nil
}

func (s *PDFSource) Close() error { return nil }

// noTextPlaceholder is returned instead of an error when a PDF has no
// embedded text layer.
func noTextPlaceholder(filename string) string {
	return fmt.Sprintf("PDF Processing: %s\nDocument detected but no embedded text layer was found.\nPlease upload as image for full OCR processing.", filename)
}
