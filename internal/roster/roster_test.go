package roster

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.yaml")

	content := `
profiles:
  - id: 1
    full_name: John Doe
    email: john.doe@example.com
    department: Engineering
    employee_id: EMP001
    is_active: true
  - id: 2
    full_name: Jane Smith
    employee_id: EMP002
    is_active: false
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write roster file: %v", err)
	}

	profiles, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[0].FullName != "John Doe" {
		t.Errorf("expected John Doe, got %q", profiles[0].FullName)
	}
	if profiles[0].Department != "Engineering" {
		t.Errorf("expected Engineering, got %q", profiles[0].Department)
	}
	if !profiles[0].IsActive || profiles[1].IsActive {
		t.Error("is_active flags not read correctly")
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile("/nonexistent/roster.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFile_Empty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte("profiles: []\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for empty roster")
	}
}

func TestLoadCSV_Valid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "roster.csv")

	content := "id,full_name,email,department,employee_id,is_active\n" +
		"1,John Doe,john.doe@example.com,Engineering,EMP001,true\n" +
		"2,Jane Smith,jane.smith@example.com,Design,EMP002,false\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	profiles, err := LoadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(profiles))
	}
	if profiles[1].FullName != "Jane Smith" || profiles[1].IsActive {
		t.Errorf("second profile read incorrectly: %+v", profiles[1])
	}
}

func TestLoadCSV_BadHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.csv")
	if err := os.WriteFile(path, []byte("name,email\nx,y\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadCSV(path); err == nil {
		t.Fatal("expected error for invalid header")
	}
}

func TestLoad_PicksFormatByExtension(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "r.csv")
	content := "id,full_name,email,department,employee_id,is_active\n1,John Doe,j@e.com,Eng,EMP001,true\n"
	if err := os.WriteFile(csvPath, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	profiles, err := Load(csvPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("expected 1 profile, got %d", len(profiles))
	}
}

func TestActive(t *testing.T) {
	profiles := []Profile{
		{ID: 1, FullName: "A B", IsActive: true},
		{ID: 2, FullName: "C D", IsActive: false},
		{ID: 3, FullName: "E F", IsActive: true},
	}
	active := Active(profiles)
	if len(active) != 2 {
		t.Fatalf("expected 2 active, got %d", len(active))
	}
	for _, p := range active {
		if !p.IsActive {
			t.Errorf("inactive profile leaked: %+v", p)
		}
	}
}
