// Package slog provides logging decorators for mailsift services using
// the standard library's log/slog.
package slog

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/mailsift/mailsift"
)

// Ensure LoggingExtractor implements mailsift.Extractor.
var _ mailsift.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with per-run debug logging.
type LoggingExtractor struct {
	next   mailsift.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next mailsift.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the run's ID,
// duration, and result count.
func (e *LoggingExtractor) Extract(doc mailsift.DocumentView) []string {
	runID := uuid.New().String()
	begin := time.Now()

	emails := e.next.Extract(doc)

	e.logger.Info("extraction run",
		"run", runID,
		"emails", len(emails),
		"duration", time.Since(begin),
	)
	return emails
}
