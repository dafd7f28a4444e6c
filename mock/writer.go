package mock

import (
	"context"

	"github.com/mailsift/mailsift"
)

var _ mailsift.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of mailsift.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, extraction *mailsift.Extraction) error
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, extraction *mailsift.Extraction) error {
	return w.WriteExtractionFn(ctx, extraction)
}
