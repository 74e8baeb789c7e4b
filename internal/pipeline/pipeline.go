package pipeline

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"veridoc/internal/extract"
	"veridoc/internal/match"
	"veridoc/internal/ocr"
	"veridoc/internal/roster"
	"veridoc/internal/validate"
)

// ErrProcessingFailed is the single error surfaced for any stage failure.
// The underlying cause is logged, not returned; partial results are never
// handed back.
var ErrProcessingFailed = errors.New("failed to process document, please ensure the image is clear and try again")

// Progress is one checkpoint report. Checkpoints fire at fixed percentages
// and are not evenly spaced in time.
type Progress struct {
	Stage   string `json:"stage"`
	Percent int    `json:"progress"`
}

// ProgressFunc receives checkpoint reports synchronously during Process.
type ProgressFunc func(Progress)

// Record is the final verification result for one document. It aggregates
// extraction, matching and validation; built once, never mutated.
type Record struct {
	ID          string           `json:"id"`
	FileName    string           `json:"file_name"`
	Fields      extract.Fields   `json:"fields"`
	Match       match.Result     `json:"match"`
	Outcome     validate.Outcome `json:"validation"`
	Status      validate.Status  `json:"status"`
	Comment     string           `json:"comment"`
	ProcessedAt time.Time        `json:"processed_at"`
	RawExcerpt  string           `json:"raw_excerpt,omitempty"`
}

// rawExcerptLen bounds how much raw text is kept on the record for
// debugging.
const rawExcerptLen = 500

// Processor runs the verification flow: raw text in, normalized fields,
// identity match, validation, record out. One Process call is one
// sequential flow; a Processor holds no mutable state, so concurrent calls
// on the same instance are fine as long as the TextSource allows it.
type Processor struct {
	source   ocr.TextSource
	profiles []roster.Profile
}

// New builds a Processor around an injected text source and a read-only
// roster.
func New(source ocr.TextSource, profiles []roster.Profile) *Processor {
	return &Processor{source: source, profiles: profiles}
}

// Process verifies one uploaded document. The optional onProgress callback
// is invoked at five fixed checkpoints. Any stage failure surfaces as
// ErrProcessingFailed with no partial record.
func (p *Processor) Process(ctx context.Context, filename string, data []byte, onProgress ProgressFunc) (Record, error) {
	report := func(stage string, pct int) {
		if onProgress != nil {
			onProgress(Progress{Stage: stage, Percent: pct})
		}
	}

	report("Initializing OCR engine...", 10)

	report("Extracting text from document...", 30)
	raw, err := p.source.ExtractRawText(ctx, filename, data)
	if err != nil || raw == "" {
		log.Printf("pipeline: text extraction failed for %s: %v", filename, err)
		return Record{}, ErrProcessingFailed
	}

	report("Analyzing document content...", 60)
	fields := extract.Extract(raw)
	if fields.Name == "" && extract.LLMEnabled() {
		// Last-resort name recovery; failure here just means no name.
		if name, lerr := extract.NameViaGemini(ctx, raw); lerr == nil && extract.IsValidName(name) {
			fields.Name = extract.TitleCase(name)
		} else if lerr != nil {
			log.Printf("pipeline: gemini name fallback failed: %v", lerr)
		}
	}
	res := match.Match(fields.Name, p.profiles)

	report("Validating document information...", 80)
	outcome := validate.Evaluate(fields, res)
	status := validate.DeriveStatus(outcome)

	report("Finalizing verification...", 100)
	excerpt := raw
	if len(excerpt) > rawExcerptLen {
		excerpt = excerpt[:rawExcerptLen]
	}
	return Record{
		ID:          uuid.NewString(),
		FileName:    filename,
		Fields:      fields,
		Match:       res,
		Outcome:     outcome,
		Status:      status,
		Comment:     buildComment(outcome, res),
		ProcessedAt: time.Now(),
		RawExcerpt:  excerpt,
	}, nil
}
