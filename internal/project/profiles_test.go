package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/MoldQuote/internal/model"
)

func TestSaveAndLoadCustomProfiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profiles.json")

	profiles := []model.RateProfile{
		{
			ID:          "aaaa1111",
			Name:        "In-house shop",
			Description: "Our own machines",
			Rates: model.RateSettings{
				CNC3Axis:       45,
				CNC5Axis:       90,
				EDM:            70,
				Aggressiveness: 0.4,
				Margin:         0.2,
			},
		},
		{
			ID:          "bbbb2222",
			Name:        "Subcontracted 5-axis",
			Description: "External 5-axis work",
			Rates: model.RateSettings{
				CNC3Axis:       40,
				CNC5Axis:       120,
				EDM:            65,
				Aggressiveness: 0.6,
				Margin:         0.1,
			},
		},
	}

	// Save
	err := SaveCustomProfiles(path, profiles)
	if err != nil {
		t.Fatalf("SaveCustomProfiles: %v", err)
	}

	// Verify file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("profiles file was not created")
	}

	// Load
	loaded, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("LoadCustomProfiles: %v", err)
	}

	if len(loaded) != 2 {
		t.Fatalf("expected 2 profiles, got %d", len(loaded))
	}

	if loaded[0].Name != "In-house shop" {
		t.Errorf("expected name 'In-house shop', got %s", loaded[0].Name)
	}
	if loaded[1].Rates.CNC5Axis != 120 {
		t.Errorf("expected 5-axis rate 120, got %f", loaded[1].Rates.CNC5Axis)
	}

	// Ensure IsBuiltIn is forced to false on load
	if loaded[0].IsBuiltIn {
		t.Error("loaded profile should not be marked as built-in")
	}
}

func TestLoadCustomProfilesNonExistent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.json")

	profiles, err := LoadCustomProfiles(path)
	if err != nil {
		t.Fatalf("expected no error for nonexistent file, got: %v", err)
	}
	if len(profiles) != 0 {
		t.Fatalf("expected 0 profiles for nonexistent file, got %d", len(profiles))
	}
}

func TestLoadCustomProfilesInvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")

	err := os.WriteFile(path, []byte("not valid json"), 0644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = LoadCustomProfiles(path)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestExportAndImportProfile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "exported.json")

	original := model.NewRateProfile("Exported", "A profile for export testing", model.RateSettings{
		CNC3Axis:       50,
		CNC5Axis:       95,
		EDM:            75,
		Aggressiveness: 0.5,
		Margin:         0.15,
	})
	original.IsBuiltIn = true // Should be stripped on export

	// Export
	err := ExportProfile(path, original)
	if err != nil {
		t.Fatalf("ExportProfile: %v", err)
	}

	// Import
	imported, err := ImportProfile(path)
	if err != nil {
		t.Fatalf("ImportProfile: %v", err)
	}

	if imported.Name != "Exported" {
		t.Errorf("expected name Exported, got %s", imported.Name)
	}

	// IsBuiltIn should be false after import
	if imported.IsBuiltIn {
		t.Error("imported profile should not be marked as built-in")
	}

	if imported.Rates.EDM != 75 {
		t.Errorf("expected EDM rate 75, got %f", imported.Rates.EDM)
	}
}

func TestImportProfileNoName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "noname.json")

	err := os.WriteFile(path, []byte(`{"description": "no name"}`), 0644)
	if err != nil {
		t.Fatal(err)
	}

	_, err = ImportProfile(path)
	if err == nil {
		t.Fatal("expected error for profile without name")
	}
}

func TestImportProfileInvalidRates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "badrates.json")

	data := []byte(`{"name": "Broken", "rates": {"cnc3_axis": -10, "cnc5_axis": 85, "edm": 65, "aggressiveness": 0.5, "margin": 0.15}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	_, err := ImportProfile(path)
	if err == nil {
		t.Fatal("expected error for profile with invalid rates")
	}
}

func TestSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "dir")
	path := filepath.Join(dir, "profiles.json")

	err := SaveCustomProfiles(path, []model.RateProfile{})
	if err != nil {
		t.Fatalf("SaveCustomProfiles should create directories: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("file was not created in nested directory")
	}
}
