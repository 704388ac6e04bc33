package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/piwi3910/MoldQuote/internal/model"
)

// DefaultProfilesPath returns the default file path for custom rate profiles.
func DefaultProfilesPath() string {
	return filepath.Join(DefaultConfigDir(), "profiles.json")
}

// SaveCustomProfiles saves custom rate profiles to a JSON file.
func SaveCustomProfiles(path string, profiles []model.RateProfile) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(profiles, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadCustomProfiles loads custom rate profiles from a JSON file.
// Returns an empty slice if the file does not exist.
func LoadCustomProfiles(path string) ([]model.RateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []model.RateProfile{}, nil
		}
		return nil, err
	}

	var profiles []model.RateProfile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, err
	}

	// Ensure loaded profiles are not marked as built-in
	for i := range profiles {
		profiles[i].IsBuiltIn = false
	}
	return profiles, nil
}

// SaveCustomProfilesToDefault saves custom rate profiles to the default path.
func SaveCustomProfilesToDefault(profiles []model.RateProfile) error {
	return SaveCustomProfiles(DefaultProfilesPath(), profiles)
}

// LoadCustomProfilesFromDefault loads custom rate profiles from the default path.
func LoadCustomProfilesFromDefault() ([]model.RateProfile, error) {
	return LoadCustomProfiles(DefaultProfilesPath())
}

// ExportProfile exports a single rate profile to a JSON file (for sharing).
func ExportProfile(path string, profile model.RateProfile) error {
	profile.IsBuiltIn = false
	data, err := json.MarshalIndent(profile, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportProfile imports a single rate profile from a JSON file.
func ImportProfile(path string) (model.RateProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.RateProfile{}, err
	}

	var profile model.RateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return model.RateProfile{}, err
	}

	profile.IsBuiltIn = false
	if profile.Name == "" {
		return model.RateProfile{}, errors.New("imported profile has no name")
	}
	if err := profile.Rates.Validate(); err != nil {
		return model.RateProfile{}, err
	}
	return profile, nil
}
