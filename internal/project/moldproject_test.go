package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/piwi3910/MoldQuote/internal/geometry"
	"github.com/piwi3910/MoldQuote/internal/model"
)

func TestSaveAndLoadProject(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bracket")

	proj := model.NewQuoteProject()
	proj.Name = "Bracket mold"
	proj.SourceFile = "/tmp/bracket.stl"
	proj.Stats = &geometry.Stats{Volume: 1250, Area: 820, FaceCount: 12, VertexCount: 36}
	proj.Request = model.NewQuoteRequest(1250)
	proj.Request.Quantity = 25

	quote, err := model.ComputeQuote(proj.Request)
	if err != nil {
		t.Fatalf("ComputeQuote: %v", err)
	}
	proj.Quote = &quote

	saved, err := SaveProject(path, proj)
	if err != nil {
		t.Fatalf("SaveProject: %v", err)
	}
	if filepath.Ext(saved) != ProjectExtension {
		t.Errorf("expected extension %s appended, got %s", ProjectExtension, saved)
	}

	loaded, err := LoadProject(saved)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if loaded.Name != "Bracket mold" {
		t.Errorf("expected name 'Bracket mold', got %s", loaded.Name)
	}
	if loaded.Request.Quantity != 25 {
		t.Errorf("expected quantity 25, got %d", loaded.Request.Quantity)
	}
	if loaded.Stats == nil || loaded.Stats.Volume != 1250 {
		t.Error("stats were not preserved")
	}
	if loaded.Quote == nil || loaded.Quote.Total != quote.Total {
		t.Error("quote was not preserved")
	}
}

func TestSaveProjectKeepsExistingExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "part"+ProjectExtension)

	saved, err := SaveProject(path, model.NewQuoteProject())
	if err != nil {
		t.Fatalf("SaveProject: %v", err)
	}
	if saved != path {
		t.Errorf("extension should not be doubled: %s", saved)
	}
}

func TestLoadProjectMissingFile(t *testing.T) {
	_, err := LoadProject(filepath.Join(t.TempDir(), "missing.mqproj"))
	if err == nil {
		t.Fatal("expected error for missing project file")
	}
}

func TestLoadProjectInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.mqproj")
	if err := os.WriteFile(path, []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProject(path); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}

func TestLoadProjectFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.mqproj")

	// Older project files have no name and no rates block.
	data := []byte(`{"request":{"volume":500,"material":"H13","finish":"machined","quantity":1}}`)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	proj, err := LoadProject(path)
	if err != nil {
		t.Fatalf("LoadProject: %v", err)
	}
	if proj.Name != "legacy" {
		t.Errorf("expected name derived from filename, got %s", proj.Name)
	}
	if proj.Request.Rates != model.DefaultRateSettings() {
		t.Error("missing rates should default to factory settings")
	}
}
