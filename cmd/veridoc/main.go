package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"

	"veridoc/internal/ocr"
	"veridoc/internal/pipeline"
	"veridoc/internal/roster"
	"veridoc/internal/validate"
)

// textFileSource feeds a plain .txt file straight through, for running the
// pipeline on already-extracted text without OCR credentials.
type textFileSource struct{}

func (textFileSource) ExtractRawText(_ context.Context, _ string, data []byte) (string, error) {
	return string(data), nil
}
func (textFileSource) Close() error { return nil }

func main() {
	rosterPath := flag.String("roster", "roster.yaml", "roster file (YAML or CSV)")
	filePath := flag.String("file", "", "document to verify (image, PDF or .txt)")
	quiet := flag.Bool("quiet", false, "suppress progress output")
	flag.Parse()

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	profiles, err := roster.Load(*rosterPath)
	if err != nil {
		log.Fatal("roster load failed: ", err)
	}

	data, err := os.ReadFile(*filePath)
	if err != nil {
		log.Fatal("read file: ", err)
	}

	ctx := context.Background()
	source, err := pickSource(ctx, *filePath, data)
	if err != nil {
		log.Fatal(err)
	}
	defer source.Close()

	proc := pipeline.New(source, profiles)

	var onProgress pipeline.ProgressFunc
	if !*quiet {
		onProgress = func(p pipeline.Progress) {
			fmt.Printf("[%3d%%] %s\n", p.Percent, p.Stage)
		}
	}

	rec, err := proc.Process(ctx, *filePath, data, onProgress)
	if err != nil {
		color.Red("error: %v", err)
		os.Exit(1)
	}

	printRecord(rec)
	if rec.Status != validate.StatusComplete {
		os.Exit(1)
	}
}

func pickSource(ctx context.Context, path string, data []byte) (ocr.TextSource, error) {
	if strings.HasSuffix(strings.ToLower(path), ".txt") {
		return textFileSource{}, nil
	}
	if ocr.IsPDF(path, data) {
		return ocr.NewPDFSource(), nil
	}
	src, err := ocr.NewVisionSource(ctx)
	if err != nil {
		return nil, fmt.Errorf("vision client init failed (set GOOGLE_APPLICATION_CREDENTIALS, or use a .txt/.pdf input): %w", err)
	}
	return src, nil
}

func printRecord(rec pipeline.Record) {
	fmt.Println()
	switch rec.Status {
	case validate.StatusComplete:
		color.Green("status: %s", rec.Status)
	default:
		color.Red("status: %s", rec.Status)
	}

	fmt.Printf("document type: %s\n", rec.Fields.DocumentType)
	fmt.Printf("name:          %s\n", orDash(rec.Fields.Name))
	fmt.Printf("date of birth: %s\n", dateOrDash(rec.Fields.DateOfBirth))
	fmt.Printf("blood group:   %s\n", orDash(rec.Fields.BloodGroup))
	fmt.Printf("issue date:    %s\n", dateOrDash(rec.Fields.IssueDate))
	fmt.Printf("expiry date:   %s\n", dateOrDash(rec.Fields.ExpiryDate))

	if rec.Match.Matched != nil {
		color.Green("identity:      %s (%s)", rec.Match.Matched.FullName, rec.Match.Matched.Department)
	} else if len(rec.Match.Suggestions) > 0 {
		color.Yellow("identity:      no match; did you mean %s?", strings.Join(rec.Match.Suggestions, ", "))
	} else {
		color.Red("identity:      no match")
	}

	fmt.Printf("confidence:    %.0f%%\n", rec.Outcome.Confidence*100)
	fmt.Println(rec.Comment)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dateOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}
