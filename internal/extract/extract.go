package extract

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"veridoc/internal/normalize"
)

// Extract runs every field heuristic over the raw OCR text and returns
// whatever could be recovered. Individual heuristics never fail: a field
// that cannot be read is simply left absent.
func Extract(raw string) Fields {
	lines := normalize.Lines(raw)

	f := Fields{
		DocumentType: detectDocumentType(raw),
		Name:         extractName(raw, lines),
		BloodGroup:   extractBloodGroup(raw),
	}
	f.DateOfBirth = extractDateOfBirth(raw)
	f.IssueDate, f.ExpiryDate = extractIssueExpiry(raw)
	return f
}

// ---------------- document type ----------------

// Keyword groups are checked in order; the first hit wins. BIRTH+CERTIFICATE
// has to run before the generic CERTIFICATE check.
func detectDocumentType(raw string) string {
	upper := strings.ToUpper(raw)

	switch {
	case strings.Contains(upper, "PASSPORT"):
		return DocPassport
	case strings.Contains(upper, "DRIVER") || strings.Contains(upper, "LICENSE") || strings.Contains(upper, "LICENCE"):
		return DocDriverLicense
	case strings.Contains(upper, "IDENTITY") || strings.Contains(upper, "ID CARD"):
		return DocIDCard
	case strings.Contains(upper, "BIRTH") && strings.Contains(upper, "CERTIFICATE"):
		return DocBirthCertificate
	case strings.Contains(upper, "CERTIFICATE"):
		return DocCertificate
	}
	return DocUnknown
}

// ---------------- name ----------------

// Words that show up in big uppercase print on Indian identity documents but
// are never part of a person's name.
var nameStopwords = []string{
	"UNION", "INDIA", "STATE", "GOVERNMENT", "LICENCE", "LICENSE",
	"CARD", "CERTIFICATE", "DRIVING", "TRANSPORT", "AUTHORITY",
	"MAHARASHTRA", "KARNATAKA", "GUJARAT", "PRADESH", "TAMIL", "NADU",
	"DELHI", "PUNJAB", "RAJASTHAN", "KERALA",
}

var (
	upperSeqRe = regexp.MustCompile(`\b[A-Z]{2,}(?:\s+[A-Z]{2,}){1,4}\b`)

	// Labeled name fields, most specific first. The capture stops at the end
	// of the line; a label's value never spans lines.
	labeledNameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\bfull\s*name\s*[:\-]?\s*([A-Za-z][A-Za-z ]{1,49})`),
		regexp.MustCompile(`(?i)\b(?:given\s+name|surname)\s*[:\-]?\s*([A-Za-z][A-Za-z ]{1,49})`),
		regexp.MustCompile(`(?i)\bname\s*[:\-]\s*([A-Za-z][A-Za-z ]{1,49})`),
		regexp.MustCompile(`(?i)\bname\s+([A-Za-z][A-Za-z ]{1,49})`),
	}

	// Document-specific fallbacks: whoever the document says it belongs to.
	fallbackNameRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:holder|applicant|licensee)\s*(?:name)?\s*[:\-]?\s*([A-Za-z][A-Za-z ]{1,49})`),
	}

	validNameRe = regexp.MustCompile(`^[A-Za-z\s]{2,50}$`)
)

// extractName tries three strategies in priority order and returns the first
// candidate that passes IsValidName, title-cased. Later strategies are
// deliberately narrower fallbacks; keep the ordering.
func extractName(raw string, lines []string) string {
	// Strategy 1: prominent all-uppercase word runs. Names on ID documents
	// are usually printed in caps on their own line.
	for _, line := range lines {
		for _, seq := range upperSeqRe.FindAllString(line, -1) {
			seq = normalize.CollapseSpaces(seq)
			if len(seq) < 6 || containsStopword(seq) {
				continue
			}
			if IsValidName(seq) {
				return TitleCase(seq)
			}
		}
	}

	// Strategy 2: labeled fields like "Name: John Doe".
	for _, re := range labeledNameRes {
		if m := re.FindStringSubmatch(raw); len(m) > 1 {
			cand := normalize.CollapseSpaces(m[1])
			if IsValidName(cand) {
				return TitleCase(cand)
			}
		}
	}

	// Strategy 3: document-specific fallbacks.
	for _, re := range fallbackNameRes {
		if m := re.FindStringSubmatch(raw); len(m) > 1 {
			cand := normalize.CollapseSpaces(m[1])
			if IsValidName(cand) {
				return TitleCase(cand)
			}
		}
	}
	if cand := isolatedCapsLine(raw); cand != "" {
		return TitleCase(cand)
	}

	return ""
}

// isolatedCapsLine looks for a long all-caps line surrounded by blank lines
// in the raw (unnormalized) text.
func isolatedCapsLine(raw string) string {
	rawLines := strings.Split(strings.ReplaceAll(raw, "\r", ""), "\n")
	for i, ln := range rawLines {
		l := strings.TrimSpace(ln)
		if l == "" || len(l) < 6 || l != strings.ToUpper(l) {
			continue
		}
		prevBlank := i == 0 || strings.TrimSpace(rawLines[i-1]) == ""
		nextBlank := i == len(rawLines)-1 || strings.TrimSpace(rawLines[i+1]) == ""
		if !prevBlank || !nextBlank {
			continue
		}
		if containsStopword(l) {
			continue
		}
		if IsValidName(l) {
			return l
		}
	}
	return ""
}

func containsStopword(s string) bool {
	upper := strings.ToUpper(s)
	for _, w := range nameStopwords {
		if strings.Contains(upper, w) {
			return true
		}
	}
	return false
}

// IsValidName reports whether a candidate looks like a person's name:
// letters and spaces only, 2-50 characters, 2-4 words.
func IsValidName(name string) bool {
	name = strings.TrimSpace(name)
	if !validNameRe.MatchString(name) {
		return false
	}
	n := len(strings.Fields(name))
	return n >= 2 && n <= 4
}

// TitleCase uppercases the first letter of each word and lowercases the rest.
func TitleCase(name string) string {
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// ---------------- date of birth ----------------

var dobRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bD\.?\s*O\.?\s*B\.?\s*[:\-]?\s*(\d{1,2}[\/\-.]\d{1,2}[\/\-.]\d{4})`),
	regexp.MustCompile(`(?i)\bdate\s+of\s+birth\s*[:\-]?\s*(\d{1,2}[\/\-.]\d{1,2}[\/\-.]\d{4})`),
	regexp.MustCompile(`(?i)\bbirth\s+date\s*[:\-]?\s*(\d{1,2}[\/\-.]\d{1,2}[\/\-.]\d{4})`),
	regexp.MustCompile(`(?i)\bborn\s*(?:on)?\s*[:\-]?\s*(\d{1,2}[\/\-.]\d{1,2}[\/\-.]\d{4})`),
	regexp.MustCompile(`\b(\d{1,2}[\/\-.]\d{1,2}[\/\-.]\d{4})\b`),
}

// extractDateOfBirth prefers DOB-labeled dates and falls back to any bare
// day-month-year token. A date only counts as a birth date when its year is
// after 1900 and the implied age is at least 10 years; recent dates on the
// document (issue, expiry) would otherwise get misread as birth dates.
func extractDateOfBirth(raw string) *time.Time {
	cutoffYear := time.Now().Year() - 10
	for _, re := range dobRes {
		for _, m := range re.FindAllStringSubmatch(raw, -1) {
			d, ok := parseDate(m[1])
			if !ok {
				continue
			}
			if d.Year() > 1900 && d.Year() <= cutoffYear {
				return &d
			}
		}
	}
	return nil
}

// ---------------- blood group ----------------

var bloodGroupRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)blood\s*group\s*[:\-]?\s*(AB|A|B|O)\s*([+\-])?`),
	regexp.MustCompile(`(?i)blood\s*type\s*[:\-]?\s*(AB|A|B|O)\s*([+\-])?`),
	regexp.MustCompile(`(?i)\bBG\s*[:\-]?\s*(AB|A|B|O)\s*([+\-])?`),
}

var validBloodGroups = map[string]bool{
	"A+": true, "A-": true, "B+": true, "B-": true,
	"AB+": true, "AB-": true, "O+": true, "O-": true,
	"A": true, "B": true, "AB": true, "O": true,
}

// extractBloodGroup applies the labeled patterns in order. When the letter
// group matched without a sign, the surrounding ±10 characters are checked
// for "+", "-" or the OCR-mangled "VE" suffix (as in "+VE"/"-VE") to recover
// it.
func extractBloodGroup(raw string) string {
	for _, re := range bloodGroupRes {
		loc := re.FindStringSubmatchIndex(raw)
		if loc == nil {
			continue
		}
		m := re.FindStringSubmatch(raw)
		group := strings.ToUpper(m[1])
		sign := m[2]

		if sign == "" {
			start := loc[2] - 10
			if start < 0 {
				start = 0
			}
			end := loc[3] + 10
			if end > len(raw) {
				end = len(raw)
			}
			window := strings.ToUpper(raw[start:end])
			switch {
			case strings.Contains(window, "+"):
				sign = "+"
			case strings.Contains(window, "-"):
				sign = "-"
			case strings.Contains(window, "VE"):
				sign = "+"
			}
		}

		if v := group + sign; validBloodGroups[v] {
			return v
		}
	}
	return ""
}

// ---------------- issue / expiry dates ----------------

var genericDateRes = []*regexp.Regexp{
	regexp.MustCompile(`\b\d{1,2}[\/\-.]\d{1,2}[\/\-.]\d{4}\b`),
	regexp.MustCompile(`\b\d{4}[\/\-.]\d{1,2}[\/\-.]\d{1,2}\b`),
	regexp.MustCompile(`(?i)\b\d{1,2}\s+(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{4}\b`),
	regexp.MustCompile(`(?i)\b(?:Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\s+\d{1,2},?\s+\d{4}\b`),
}

// extractIssueExpiry scans the whole text for anything date-shaped, keeps
// parses inside (1900, 2100) and sorts them. The earliest date is taken as
// the issue date and the latest as the expiry date; a single date serves as
// both. This is a pure heuristic: it has no idea which printed date means
// what, and does not consult surrounding keywords.
func extractIssueExpiry(raw string) (issue, expiry *time.Time) {
	var found []time.Time
	for _, re := range genericDateRes {
		for _, m := range re.FindAllString(raw, -1) {
			d, ok := parseDate(m)
			if !ok {
				continue
			}
			if d.Year() > 1900 && d.Year() < 2100 {
				found = append(found, d)
			}
		}
	}
	if len(found) == 0 {
		return nil, nil
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Before(found[j]) })

	issue = &found[0]
	expiry = &found[len(found)-1]
	return issue, expiry
}

var dateLayouts = []string{
	"2/1/2006",
	"2006/1/2",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"Jan 2 2006",
}

// parseDate tolerates "/", "-" and "." separators by normalizing them before
// trying the known layouts. A token that parses to no valid calendar date is
// simply not a date.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "-", "/")
	s = strings.ReplaceAll(s, ".", "/")
	s = normalize.CollapseSpaces(s)
	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}
