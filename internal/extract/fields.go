package extract

import "time"

// Document type labels as they are shown to callers and stored on records.
const (
	DocPassport         = "Passport"
	DocDriverLicense    = "Driver License"
	DocIDCard           = "ID Card"
	DocBirthCertificate = "Birth Certificate"
	DocCertificate      = "Certificate"
	DocUnknown          = "Unknown"
)

// Fields holds everything the extractor managed to pull out of one
// document's raw text. Absent fields stay at their zero value; a Fields
// value is built once per document and never mutated afterwards.
type Fields struct {
	DocumentType string     `json:"document_type"`
	Name         string     `json:"extracted_name,omitempty"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	BloodGroup   string     `json:"blood_group,omitempty"`
	IssueDate    *time.Time `json:"issue_date,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}
