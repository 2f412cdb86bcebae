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
	"github.com/mwalczyk/postbrief"
)

// Compile-time interface verification.
var _ postbrief.SummaryService = (*SummaryService)(nil)

// SummaryService implements postbrief.SummaryService using SQLite.
type SummaryService struct {
	db *DB
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(db *DB) *SummaryService {
	return &SummaryService{db: db}
}

// mediaSeparator joins media URLs into a single column. URLs cannot
// contain a newline, so the join is unambiguous.
const mediaSeparator = "\n"

// hashContent computes xxHash of content and returns a hex string.
func hashContent(content string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(content))
	return hex.EncodeToString(b)
}

func joinMedia(media []string) string {
	return strings.Join(media, mediaSeparator)
}

func splitMedia(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, mediaSeparator)
}

// CreateSummary records a new summary.
func (s *SummaryService) CreateSummary(ctx context.Context, summary *postbrief.Summary) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	summary.ID = uuid.New().String()
	summary.CreatedAt = time.Now().UTC()
	summary.ContentHash = hashContent(summary.Content)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO summaries (id, post_url, author_name, handle, content, media, timestamp, summary_text, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.PostURL, summary.AuthorName, summary.Handle, summary.Content,
		joinMedia(summary.Media), summary.Timestamp, summary.SummaryText, summary.ContentHash,
		summary.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSummaryByID retrieves a summary by ID.
func (s *SummaryService) FindSummaryByID(ctx context.Context, id string) (*postbrief.Summary, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, post_url, author_name, handle, content, media, timestamp, summary_text, content_hash, created_at
		FROM summaries
		WHERE id = ?
	`, id)

	summary, err := scanSummary(row.Scan)
	if err == sql.ErrNoRows {
		return nil, postbrief.Errorf(postbrief.ENOTFOUND, "summary not found")
	}
	if err != nil {
		return nil, err
	}

	return summary, nil
}

// FindSummaries retrieves summaries matching the filter, newest first.
func (s *SummaryService) FindSummaries(ctx context.Context, filter postbrief.SummaryFilter) ([]*postbrief.Summary, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, post_url, author_name, handle, content, media, timestamp, summary_text, content_hash, created_at FROM summaries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.PostURL != nil {
		query.WriteString(" AND post_url = ?")
		args = append(args, *filter.PostURL)
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

	var summaries []*postbrief.Summary
	for rows.Next() {
		summary, err := scanSummary(rows.Scan)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}

// DeleteSummary permanently removes a summary.
func (s *SummaryService) DeleteSummary(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return postbrief.Errorf(postbrief.ENOTFOUND, "summary not found")
	}

	return nil
}

// scanSummary scans one summaries row through the given Scan function.
func scanSummary(scan func(dest ...any) error) (*postbrief.Summary, error) {
	var summary postbrief.Summary
	var media, createdAt string

	if err := scan(&summary.ID, &summary.PostURL, &summary.AuthorName, &summary.Handle,
		&summary.Content, &media, &summary.Timestamp, &summary.SummaryText,
		&summary.ContentHash, &createdAt); err != nil {
		return nil, err
	}

	summary.Media = splitMedia(media)

	var err error
	summary.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return &summary, nil
}
