package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/MoldQuote/internal/model"
)

// ProjectExtension is the file extension used for saved quote projects.
const ProjectExtension = ".mqproj"

// SaveProject writes a quote project to the given path as JSON.
// The project extension is appended if missing.
func SaveProject(path string, proj model.QuoteProject) (string, error) {
	if !strings.HasSuffix(strings.ToLower(path), ProjectExtension) {
		path += ProjectExtension
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	data, err := json.MarshalIndent(proj, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// LoadProject reads a quote project from the given path.
func LoadProject(path string) (model.QuoteProject, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.QuoteProject{}, err
	}
	var proj model.QuoteProject
	if err := json.Unmarshal(data, &proj); err != nil {
		return model.QuoteProject{}, fmt.Errorf("failed to parse project file: %w", err)
	}
	if proj.Name == "" {
		proj.Name = strings.TrimSuffix(filepath.Base(path), ProjectExtension)
	}
	// Saved files from older versions may predate the rates fields.
	if proj.Request.Rates == (model.RateSettings{}) {
		proj.Request.Rates = model.DefaultRateSettings()
	}
	return proj, nil
}
