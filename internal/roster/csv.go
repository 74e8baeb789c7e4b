package roster

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var csvHeaders = []string{"id", "full_name", "email", "department", "employee_id", "is_active"}

// LoadCSV reads a roster from a CSV file with the header
// id,full_name,email,department,employee_id,is_active.
func LoadCSV(path string) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, errors.New("unable to read CSV header")
	}
	for i := range headers {
		headers[i] = strings.TrimSpace(strings.ToLower(headers[i]))
	}
	if !equalStringSlices(headers, csvHeaders) {
		return nil, fmt.Errorf("invalid CSV header: expected %v, got %v", csvHeaders, headers)
	}

	var profiles []Profile
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV rows: %w", err)
		}
		if len(rec) != len(csvHeaders) {
			return nil, errors.New("row does not match header length")
		}

		id, err := strconv.ParseUint(strings.TrimSpace(rec[0]), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", rec[0], err)
		}
		active, err := strconv.ParseBool(strings.TrimSpace(rec[5]))
		if err != nil {
			return nil, fmt.Errorf("invalid is_active %q: %w", rec[5], err)
		}

		profiles = append(profiles, Profile{
			ID:         uint(id),
			FullName:   strings.TrimSpace(rec[1]),
			Email:      strings.TrimSpace(rec[2]),
			Department: strings.TrimSpace(rec[3]),
			EmployeeID: strings.TrimSpace(rec[4]),
			IsActive:   active,
			CreatedAt:  time.Now(),
		})
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("roster csv %s contains no profiles", path)
	}
	return profiles, nil
}

func equalStringSlices(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
