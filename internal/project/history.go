package project

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/piwi3910/MoldQuote/internal/model"
)

// maxHistoryEntries caps the persisted quote history. The newest entries
// are kept when the cap is exceeded.
const maxHistoryEntries = 200

// DefaultHistoryPath returns the default file path for the quote history.
// This is located at ~/.moldquote/history.json.
func DefaultHistoryPath() string {
	return filepath.Join(DefaultConfigDir(), "history.json")
}

// SaveHistory writes the quote history to a JSON file.
func SaveHistory(path string, records []model.QuoteRecord) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadHistory reads the quote history from a JSON file.
// If the file does not exist, returns an empty history.
func LoadHistory(path string) ([]model.QuoteRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return []model.QuoteRecord{}, nil
		}
		return nil, err
	}
	var records []model.QuoteRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []model.QuoteRecord{}
	}
	return records, nil
}

// AppendHistory loads the history at path, prepends the record as the
// newest entry, trims to the entry cap and saves it back.
func AppendHistory(path string, record model.QuoteRecord) ([]model.QuoteRecord, error) {
	records, err := LoadHistory(path)
	if err != nil {
		return nil, err
	}
	records = append([]model.QuoteRecord{record}, records...)
	if len(records) > maxHistoryEntries {
		records = records[:maxHistoryEntries]
	}
	if err := SaveHistory(path, records); err != nil {
		return nil, err
	}
	return records, nil
}

// RemoveHistoryEntry deletes the record with the given ID, if present,
// and saves the result back to path.
func RemoveHistoryEntry(path, id string) ([]model.QuoteRecord, error) {
	records, err := LoadHistory(path)
	if err != nil {
		return nil, err
	}
	kept := records[:0]
	for _, r := range records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if err := SaveHistory(path, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
