package ocr

import (
	"context"
	"strings"
	"testing"
)

type fakeSource struct {
	text   string
	called bool
}

func (f *fakeSource) ExtractRawText(context.Context, string, []byte) (string, error) {
	f.called = true
	return f.text, nil
}
func (f *fakeSource) Close() error { return nil }

func TestIsPDF(t *testing.T) {
	if !IsPDF("doc.bin", []byte("%PDF-1.7 rest")) {
		t.Error("magic bytes should mark a PDF")
	}
	if !IsPDF("scan.PDF", []byte("not really")) {
		t.Error("extension should mark a PDF")
	}
	if IsPDF("photo.jpg", []byte{0xFF, 0xD8, 0xFF}) {
		t.Error("jpeg misdetected as PDF")
	}
}

func TestComposite_Routing(t *testing.T) {
	img := &fakeSource{text: "from image"}
	pdf := &fakeSource{text: "from pdf"}
	c := &Composite{Image: img, PDF: pdf}

	text, err := c.ExtractRawText(context.Background(), "a.pdf", []byte("%PDF"))
	if err != nil || text != "from pdf" {
		t.Fatalf("expected pdf path, got %q err=%v", text, err)
	}
	if !pdf.called || img.called {
		t.Error("pdf upload routed to wrong source")
	}

	pdf.called = false
	text, err = c.ExtractRawText(context.Background(), "a.jpg", []byte("jpegdata"))
	if err != nil || text != "from image" {
		t.Fatalf("expected image path, got %q err=%v", text, err)
	}
	if !img.called || pdf.called {
		t.Error("image upload routed to wrong source")
	}
}

func TestPDFSource_PlaceholderMentionsFilename(t *testing.T) {
	got := noTextPlaceholder("scan.pdf")
	if got == "" {
		t.Fatal("placeholder must not be empty")
	}
	if want := "scan.pdf"; !strings.Contains(got, want) {
		t.Errorf("placeholder should mention %q: %q", want, got)
	}
}
