package mock

import (
	"context"

	"github.com/mailsift/mailsift"
)

var _ mailsift.ExtractionService = (*ExtractionService)(nil)

// ExtractionService is a mock implementation of mailsift.ExtractionService.
type ExtractionService struct {
	CreateExtractionFn   func(ctx context.Context, extraction *mailsift.Extraction) error
	FindExtractionByIDFn func(ctx context.Context, id string) (*mailsift.Extraction, error)
	FindExtractionsFn    func(ctx context.Context, filter mailsift.ExtractionFilter) ([]*mailsift.Extraction, error)
	DeleteExtractionFn   func(ctx context.Context, id string) error
}

func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *mailsift.Extraction) error {
	return s.CreateExtractionFn(ctx, extraction)
}

func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*mailsift.Extraction, error) {
	return s.FindExtractionByIDFn(ctx, id)
}

func (s *ExtractionService) FindExtractions(ctx context.Context, filter mailsift.ExtractionFilter) ([]*mailsift.Extraction, error) {
	return s.FindExtractionsFn(ctx, filter)
}

func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	return s.DeleteExtractionFn(ctx, id)
}
