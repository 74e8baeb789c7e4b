package ocr

import (
	"bytes"
	"context"
	"strings"
)

// TextSource turns an uploaded file into best-effort raw text. It is the
// pipeline's only external collaborator and its only slow call; the caller
// owns the lifecycle (create it once, Close it when done).
type TextSource interface {
	ExtractRawText(ctx context.Context, filename string, data []byte) (string, error)
	Close() error
}

var pdfMagic = []byte("%PDF")

// IsPDF sniffs whether an upload is a PDF, by magic bytes first and file
// extension second.
func IsPDF(filename string, data []byte) bool {
	if bytes.HasPrefix(data, pdfMagic) {
		return true
	}
	return strings.HasSuffix(strings.ToLower(filename), ".pdf")
}

// Composite routes PDFs to the PDF text extractor and everything else to the
// image OCR source.
type Composite struct {
	Image TextSource
	PDF   TextSource
}

func (c *Composite) ExtractRawText(ctx context.Context, filename string, data []byte) (string, error) {
	if IsPDF(filename, data) {
		return c.PDF.ExtractRawText(ctx, filename, data)
	}
	return c.Image.ExtractRawText(ctx, filename, data)
}

func (c *Composite) Close() error {
	if err := c.Image.Close(); err != nil {
		_ = c.PDF.Close()
		return err
	}
	return c.PDF.Close()
}
