package extract

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectDocumentType(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"REPUBLIC OF INDIA PASSPORT", DocPassport},
		{"driver license no 12345", DocDriverLicense},
		{"DRIVING LICENCE", DocDriverLicense},
		{"NATIONAL IDENTITY DOCUMENT", DocIDCard},
		{"this is an id card", DocIDCard},
		{"CERTIFICATE OF BIRTH", DocBirthCertificate},
		{"COURSE COMPLETION CERTIFICATE", DocCertificate},
		{"some random receipt", DocUnknown},
		{"", DocUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, detectDocumentType(tt.text), "text=%q", tt.text)
	}
}

func TestDetectDocumentType_BirthBeforeGenericCertificate(t *testing.T) {
	// Both keywords present; the birth-specific rule must win.
	assert.Equal(t, DocBirthCertificate, detectDocumentType("BIRTH CERTIFICATE"))
}

func TestExtractName_UppercaseLine(t *testing.T) {
	f := Extract("Name\nJOHN MICHAEL DOE\n")
	assert.Equal(t, "John Michael Doe", f.Name)
}

func TestExtractName_SkipsInstitutionalWords(t *testing.T) {
	text := "UNION OF INDIA\nDRIVING LICENCE\nJOHN DOE\n"
	f := Extract(text)
	assert.Equal(t, "John Doe", f.Name)
}

func TestExtractName_LabeledField(t *testing.T) {
	f := Extract("Full Name: Jane Smith\nsome other line")
	assert.Equal(t, "Jane Smith", f.Name)
}

func TestExtractName_HolderFallback(t *testing.T) {
	f := Extract("holder: mike johnson\n")
	assert.Equal(t, "Mike Johnson", f.Name)
}

func TestExtractName_NotFound(t *testing.T) {
	f := Extract("1234 5678\n9999\n")
	assert.Empty(t, f.Name)
}

func TestIsValidName(t *testing.T) {
	assert.True(t, IsValidName("John Doe"))
	assert.True(t, IsValidName("John Michael Peter Doe"))
	assert.False(t, IsValidName("John"))        // one word
	assert.False(t, IsValidName("A B C D E"))   // five words
	assert.False(t, IsValidName("John Doe 42")) // digits
	assert.False(t, IsValidName(""))
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "John Doe", TitleCase("JOHN DOE"))
	assert.Equal(t, "John Doe", TitleCase("john doe"))
	assert.Equal(t, "John Doe", TitleCase("jOhN dOe"))
}

func TestExtractDateOfBirth(t *testing.T) {
	f := Extract("DOB: 01-01-1990")
	require.NotNil(t, f.DateOfBirth)
	assert.Equal(t, 1990, f.DateOfBirth.Year())
	assert.Equal(t, time.January, f.DateOfBirth.Month())
	assert.Equal(t, 1, f.DateOfBirth.Day())
}

func TestExtractDateOfBirth_Labels(t *testing.T) {
	for _, text := range []string{
		"DATE OF BIRTH: 15/06/1985",
		"Birth Date 15.06.1985",
		"D.O.B. 15-06-1985",
		"born on: 15/06/1985",
	} {
		f := Extract(text)
		require.NotNil(t, f.DateOfBirth, "text=%q", text)
		assert.Equal(t, 1985, f.DateOfBirth.Year(), "text=%q", text)
	}
}

func TestExtractDateOfBirth_RejectsRecentDates(t *testing.T) {
	// A date implying an age under 10 years cannot be a birth date.
	recent := time.Now().AddDate(-2, 0, 0)
	f := Extract(fmt.Sprintf("DOB: 01-01-%d", recent.Year()))
	assert.Nil(t, f.DateOfBirth)
}

func TestExtractDateOfBirth_RejectsAncientDates(t *testing.T) {
	f := Extract("DOB: 01-01-1850")
	assert.Nil(t, f.DateOfBirth)
}

func TestExtractBloodGroup(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"Blood Group O+ VE", "O+"},
		{"Blood Group: AB-", "AB-"},
		{"BLOOD TYPE B +", "B+"},
		{"BG: A", "A"},
		{"Blood Group A POSITIVE", "A+"},
		{"Blood Group B -VE", "B-"},
		{"no blood info here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, extractBloodGroup(tt.text), "text=%q", tt.text)
	}
}

func TestExtractIssueExpiry_SingleDate(t *testing.T) {
	issue, expiry := extractIssueExpiry("valid from 15/06/2022 only")
	require.NotNil(t, issue)
	require.NotNil(t, expiry)
	assert.Equal(t, *issue, *expiry)
	assert.Equal(t, 2022, issue.Year())
}

func TestExtractIssueExpiry_OrderIndependent(t *testing.T) {
	for _, text := range []string{
		"issued 01/01/2020 expires 01/01/2030",
		"expires 01/01/2030 issued 01/01/2020",
	} {
		issue, expiry := extractIssueExpiry(text)
		require.NotNil(t, issue, "text=%q", text)
		require.NotNil(t, expiry, "text=%q", text)
		assert.Equal(t, 2020, issue.Year(), "text=%q", text)
		assert.Equal(t, 2030, expiry.Year(), "text=%q", text)
	}
}

func TestExtractIssueExpiry_NoDates(t *testing.T) {
	issue, expiry := extractIssueExpiry("nothing date shaped here")
	assert.Nil(t, issue)
	assert.Nil(t, expiry)
}

func TestExtractIssueExpiry_MonthNames(t *testing.T) {
	issue, expiry := extractIssueExpiry("issued 1 Jan 2020, expires Jan 1, 2030")
	require.NotNil(t, issue)
	require.NotNil(t, expiry)
	assert.Equal(t, 2020, issue.Year())
	assert.Equal(t, 2030, expiry.Year())
}

func TestExtractIssueExpiry_OutOfRangeDropped(t *testing.T) {
	issue, expiry := extractIssueExpiry("01/01/1899 and 01/01/2150")
	assert.Nil(t, issue)
	assert.Nil(t, expiry)
}

func TestParseDate_Separators(t *testing.T) {
	for _, s := range []string{"01/01/2020", "01-01-2020", "01.01.2020"} {
		d, ok := parseDate(s)
		require.True(t, ok, "s=%q", s)
		assert.Equal(t, 2020, d.Year())
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, s := range []string{"45/45/2020", "00/00/2020", "not a date", ""} {
		_, ok := parseDate(s)
		assert.False(t, ok, "s=%q", s)
	}
}

func TestExtract_FullDriverLicense(t *testing.T) {
	text := "DRIVER LICENSE\nJOHN DOE\nDOB: 01-01-1990\nBlood Group O+ VE\nissued 01-01-2020 valid till 01-01-2030\n"
	f := Extract(text)

	assert.Equal(t, DocDriverLicense, f.DocumentType)
	assert.Equal(t, "John Doe", f.Name)
	require.NotNil(t, f.DateOfBirth)
	assert.Equal(t, 1990, f.DateOfBirth.Year())
	assert.Equal(t, "O+", f.BloodGroup)
	require.NotNil(t, f.IssueDate)
	require.NotNil(t, f.ExpiryDate)
	assert.Equal(t, 2030, f.ExpiryDate.Year())
}
