package mailsift

import (
	"context"
	"time"
)

// Extraction represents one persisted extraction run over a document.
type Extraction struct {
	ID          string    `json:"id"`
	Source      string    `json:"source"`
	Emails      []string  `json:"emails"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the extraction contains invalid fields.
func (e *Extraction) Validate() error {
	if e.Source == "" {
		return Errorf(EINVALID, "extraction source required")
	}
	return nil
}

// ExtractionWriter exports extractions, for example as files.
type ExtractionWriter interface {
	WriteExtraction(ctx context.Context, extraction *Extraction) error
}

// ExtractionService represents a service for managing persisted extractions.
type ExtractionService interface {
	// CreateExtraction persists a new extraction run.
	CreateExtraction(ctx context.Context, extraction *Extraction) error

	// FindExtractionByID retrieves an extraction by ID.
	// Returns ENOTFOUND if the extraction does not exist.
	FindExtractionByID(ctx context.Context, id string) (*Extraction, error)

	// FindExtractions retrieves extractions matching the filter,
	// newest first.
	FindExtractions(ctx context.Context, filter ExtractionFilter) ([]*Extraction, error)

	// DeleteExtraction permanently removes an extraction and its emails.
	// Returns ENOTFOUND if the extraction does not exist.
	DeleteExtraction(ctx context.Context, id string) error
}

// ExtractionFilter represents a filter for FindExtractions.
type ExtractionFilter struct {
	ID     *string `json:"id"`
	Source *string `json:"source"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
