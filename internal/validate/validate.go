package validate

import (
	"math"
	"strings"
	"time"

	"veridoc/internal/extract"
	"veridoc/internal/match"
)

// Status of a processed document. Pending and PendingReview exist for a
// future manual-review flow; the current decision rule only ever produces
// Complete or Rejected.
type Status string

const (
	StatusPending       Status = "Pending"
	StatusPendingReview Status = "Pending Review"
	StatusComplete      Status = "Complete"
	StatusRejected      Status = "Rejected"
)

// Confidence weights for each verification signal. They sum to 1.0.
const (
	weightIdentityFound = 0.4
	weightValidName     = 0.3
	weightNotExpired    = 0.2
	weightKnownDocType  = 0.1
)

// Outcome holds the pass/fail predicates derived from extraction and
// matching, plus the combined confidence score. Built once, never mutated.
type Outcome struct {
	HasRequiredFields bool    `json:"has_required_fields"`
	IsValidName       bool    `json:"is_valid_name"`
	IsNotExpired      bool    `json:"is_not_expired"`
	IdentityFound     bool    `json:"identity_found"`
	Confidence        float64 `json:"confidence_score"`
}

// Evaluate combines extracted fields and the match result into the four
// verification predicates and the weighted confidence score.
func Evaluate(fields extract.Fields, res match.Result) Outcome {
	o := Outcome{
		HasRequiredFields: strings.TrimSpace(fields.Name) != "" && fields.DocumentType != "",
		IsValidName:       extract.IsValidName(fields.Name),
		IsNotExpired:      fields.ExpiryDate != nil && fields.ExpiryDate.After(time.Now()),
		IdentityFound:     res.Found(),
	}
	o.Confidence = confidence(o, fields.DocumentType != extract.DocUnknown && fields.DocumentType != "")
	return o
}

// confidence is a deterministic weighted sum of the verification signals,
// rounded to two decimals.
func confidence(o Outcome, knownDocType bool) float64 {
	score := 0.0
	if o.IdentityFound {
		score += weightIdentityFound
	}
	if o.IsValidName {
		score += weightValidName
	}
	if o.IsNotExpired {
		score += weightNotExpired
	}
	if knownDocType {
		score += weightKnownDocType
	}
	return math.Round(score*100) / 100
}

// DeriveStatus applies the decision rule: missing required fields always
// reject; otherwise a valid, unexpired document completes and anything else
// rejects.
func DeriveStatus(o Outcome) Status {
	if !o.HasRequiredFields {
		return StatusRejected
	}
	if o.IsValidName && o.IsNotExpired {
		return StatusComplete
	}
	return StatusRejected
}
