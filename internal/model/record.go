package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/piwi3910/MoldQuote/internal/geometry"
)

// QuoteProject ties a loaded part, its configuration and the computed
// quote together for save/load.
type QuoteProject struct {
	Name       string          `json:"name"`
	SourceFile string          `json:"source_file,omitempty"`
	Stats      *geometry.Stats `json:"stats,omitempty"`
	Request    QuoteRequest    `json:"request"`
	Quote      *Quote          `json:"quote,omitempty"`
}

// NewQuoteProject returns an empty project with default configuration.
func NewQuoteProject() QuoteProject {
	return QuoteProject{
		Name:    "Untitled",
		Request: NewQuoteRequest(0),
	}
}

// QuoteRecord is a persisted history entry: one computed quote with the
// inputs that produced it.
type QuoteRecord struct {
	ID         string         `json:"id"`
	CreatedAt  string         `json:"created_at"`
	SourceFile string         `json:"source_file"`
	Stats      geometry.Stats `json:"stats"`
	Request    QuoteRequest   `json:"request"`
	Quote      Quote          `json:"quote"`
}

// NewQuoteRecord creates a history record with a generated ID and the
// current UTC timestamp.
func NewQuoteRecord(sourceFile string, stats geometry.Stats, req QuoteRequest, quote Quote) QuoteRecord {
	return QuoteRecord{
		ID:         uuid.New().String()[:8],
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
		SourceFile: sourceFile,
		Stats:      stats,
		Request:    req,
		Quote:      quote,
	}
}
