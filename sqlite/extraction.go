package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/mailsift/mailsift"
)

// Compile-time interface verification.
var _ mailsift.ExtractionService = (*ExtractionService)(nil)

// ExtractionService implements mailsift.ExtractionService using SQLite.
type ExtractionService struct {
	db *DB
}

// NewExtractionService creates a new ExtractionService.
func NewExtractionService(db *DB) *ExtractionService {
	return &ExtractionService{db: db}
}

// HashContent computes the xxHash of document content and returns it as a
// hex string. Repeated scans of unchanged content produce the same hash,
// which lets callers spot stale or duplicate runs.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateExtraction persists a new extraction run and its emails.
func (s *ExtractionService) CreateExtraction(ctx context.Context, extraction *mailsift.Extraction) error {
	if err := extraction.Validate(); err != nil {
		return err
	}

	extraction.ID = uuid.New().String()
	extraction.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO extractions (id, source, content_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, extraction.ID, extraction.Source, extraction.ContentHash,
		extraction.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return err
	}

	for i, email := range extraction.Emails {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO extraction_emails (extraction_id, position, email)
			VALUES (?, ?, ?)
		`, extraction.ID, i, email)
		if err != nil {
			return err
		}
	}

	return nil
}

// FindExtractionByID retrieves an extraction by ID, emails included.
func (s *ExtractionService) FindExtractionByID(ctx context.Context, id string) (*mailsift.Extraction, error) {
	var extraction mailsift.Extraction
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, source, content_hash, created_at
		FROM extractions
		WHERE id = ?
	`, id).Scan(&extraction.ID, &extraction.Source, &extraction.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, mailsift.Errorf(mailsift.ENOTFOUND, "extraction not found")
	}
	if err != nil {
		return nil, err
	}

	extraction.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	if extraction.Emails, err = s.findEmails(ctx, extraction.ID); err != nil {
		return nil, err
	}

	return &extraction, nil
}

// FindExtractions retrieves extractions matching the filter, newest first.
func (s *ExtractionService) FindExtractions(ctx context.Context, filter mailsift.ExtractionFilter) ([]*mailsift.Extraction, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, source, content_hash, created_at FROM extractions WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Source != nil {
		query.WriteString(" AND source = ?")
		args = append(args, *filter.Source)
	}

	query.WriteString(" ORDER BY created_at DESC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var extractions []*mailsift.Extraction
	for rows.Next() {
		var extraction mailsift.Extraction
		var createdAt string
		if err := rows.Scan(&extraction.ID, &extraction.Source, &extraction.ContentHash, &createdAt); err != nil {
			return nil, err
		}
		if extraction.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
		extractions = append(extractions, &extraction)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, extraction := range extractions {
		if extraction.Emails, err = s.findEmails(ctx, extraction.ID); err != nil {
			return nil, err
		}
	}

	return extractions, nil
}

// DeleteExtraction permanently removes an extraction; its emails cascade.
func (s *ExtractionService) DeleteExtraction(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM extractions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return mailsift.Errorf(mailsift.ENOTFOUND, "extraction not found")
	}
	return nil
}

// findEmails loads an extraction's emails in discovery order.
func (s *ExtractionService) findEmails(ctx context.Context, extractionID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT email
		FROM extraction_emails
		WHERE extraction_id = ?
		ORDER BY position ASC
	`, extractionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, err
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}
