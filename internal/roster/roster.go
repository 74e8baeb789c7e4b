package roster

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Profile is one known identity the matcher compares extracted names
// against. The roster is read-only reference data: it is loaded once and
// shared across concurrent pipeline runs without locking.
type Profile struct {
	ID         uint      `yaml:"id" json:"id"`
	FullName   string    `yaml:"full_name" json:"full_name"`
	Email      string    `yaml:"email" json:"email"`
	Department string    `yaml:"department" json:"department"`
	EmployeeID string    `yaml:"employee_id" json:"employee_id"`
	IsActive   bool      `yaml:"is_active" json:"is_active"`
	CreatedAt  time.Time `yaml:"created_at" json:"created_at"`
}

type rosterFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// LoadFile reads a roster from a YAML file of the form:
//
//	profiles:
//	  - id: 1
//	    full_name: John Doe
//	    email: john.doe@example.com
//	    department: Engineering
//	    employee_id: EMP001
//	    is_active: true
func LoadFile(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster file: %w", err)
	}
	var rf rosterFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, fmt.Errorf("parse roster file: %w", err)
	}
	if len(rf.Profiles) == 0 {
		return nil, fmt.Errorf("roster file %s contains no profiles", path)
	}
	return rf.Profiles, nil
}

// Load reads a roster file, picking the format from the extension
// (.csv or YAML).
func Load(path string) ([]Profile, error) {
	if strings.HasSuffix(strings.ToLower(path), ".csv") {
		return LoadCSV(path)
	}
	return LoadFile(path)
}

// Active filters the roster down to active profiles.
func Active(profiles []Profile) []Profile {
	out := make([]Profile, 0, len(profiles))
	for _, p := range profiles {
		if p.IsActive {
			out = append(out, p)
		}
	}
	return out
}
