package models

import (
	"strings"
	"time"

	"veridoc/internal/pipeline"
	"veridoc/internal/roster"
)

// IdentityProfile is the persisted form of a roster entry.
type IdentityProfile struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FullName   string    `gorm:"index" json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	EmployeeID string    `gorm:"uniqueIndex" json:"employee_id"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToProfile converts the DB row into the read-only roster entry the matcher
// works with.
func (p IdentityProfile) ToProfile() roster.Profile {
	return roster.Profile{
		ID:         p.ID,
		FullName:   p.FullName,
		Email:      p.Email,
		Department: p.Department,
		EmployeeID: p.EmployeeID,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
	}
}

// FromProfile builds a DB row from a roster entry (used when seeding the
// table from a roster file).
func FromProfile(p roster.Profile) IdentityProfile {
	return IdentityProfile{
		ID:         p.ID,
		FullName:   p.FullName,
		Email:      p.Email,
		Department: p.Department,
		EmployeeID: p.EmployeeID,
		IsActive:   p.IsActive,
		CreatedAt:  p.CreatedAt,
	}
}

// VerificationRecord is the stored result of one processed document. The
// server keeps these so uploads can be listed and deleted later; the row is
// written once and never updated.
type VerificationRecord struct {
	ID                string     `gorm:"primaryKey" json:"id"`
	FileName          string     `json:"file_name"`
	DocumentType      string     `json:"document_type"`
	ExtractedName     string     `json:"extracted_name"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	BloodGroup        string     `json:"blood_group,omitempty"`
	IssueDate         *time.Time `json:"issue_date,omitempty"`
	ExpiryDate        *time.Time `json:"expiry_date,omitempty"`
	MatchedName       string     `json:"matched_name,omitempty"`
	MatchedDepartment string     `json:"matched_department,omitempty"`
	Suggestions       string     `json:"suggestions,omitempty"`
	HasRequiredFields bool       `json:"has_required_fields"`
	IsValidName       bool       `json:"is_valid_name"`
	IsNotExpired      bool       `json:"is_not_expired"`
	IdentityFound     bool       `json:"identity_found"`
	Confidence        float64    `json:"confidence_score"`
	Status            string     `json:"status"`
	Comment           string     `json:"comment"`
	ProcessedAt       time.Time  `json:"processed_at"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NewVerificationRecord flattens a pipeline record into its storage row.
func NewVerificationRecord(rec pipeline.Record) VerificationRecord {
	row := VerificationRecord{
		ID:                rec.ID,
		FileName:          rec.FileName,
		DocumentType:      rec.Fields.DocumentType,
		ExtractedName:     rec.Fields.Name,
		DateOfBirth:       rec.Fields.DateOfBirth,
		BloodGroup:        rec.Fields.BloodGroup,
		IssueDate:         rec.Fields.IssueDate,
		ExpiryDate:        rec.Fields.ExpiryDate,
		Suggestions:       strings.Join(rec.Match.Suggestions, ", "),
		HasRequiredFields: rec.Outcome.HasRequiredFields,
		IsValidName:       rec.Outcome.IsValidName,
		IsNotExpired:      rec.Outcome.IsNotExpired,
		IdentityFound:     rec.Outcome.IdentityFound,
		Confidence:        rec.Outcome.Confidence,
		Status:            string(rec.Status),
		Comment:           rec.Comment,
		ProcessedAt:       rec.ProcessedAt,
	}
	if rec.Match.Matched != nil {
		row.MatchedName = rec.Match.Matched.FullName
		row.MatchedDepartment = rec.Match.Matched.Department
	}
	return row
}
