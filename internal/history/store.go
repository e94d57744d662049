// Package history records every asked question and its answer so
// operators can review what the bot has been telling visitors.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/horizonedu/starbot/internal/db"
)

// defaultRecentLimit bounds Recent when the caller passes no limit.
const defaultRecentLimit = 50

// Entry is one logged question and answer.
type Entry struct {
	ID         string    `json:"id"`
	AskedAt    time.Time `json:"asked_at"`
	Question   string    `json:"question"`
	Answer     string    `json:"answer"`
	Mode       string    `json:"mode"`
	HasImages  bool      `json:"has_images"`
	DurationMS int64     `json:"duration_ms"`
	Client     string    `json:"client,omitempty"`
}

// Store provides read and write access to the question log.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Log inserts a new entry. If entry.ID is empty a UUID is generated.
func (s *Store) Log(ctx context.Context, entry Entry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.AskedAt.IsZero() {
		entry.AskedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO question_log (id, asked_at, question, answer, mode, has_images, duration_ms, client)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID,
		entry.AskedAt.Format(time.RFC3339),
		entry.Question,
		entry.Answer,
		entry.Mode,
		boolToInt(entry.HasImages),
		entry.DurationMS,
		entry.Client,
	)
	if err != nil {
		return fmt.Errorf("inserting question log entry: %w", err)
	}
	return nil
}

// Recent returns the newest entries, most recent first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, asked_at, question, answer, mode, has_images, duration_ms, client
		FROM question_log
		ORDER BY asked_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying question log: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			askedAt   string
			hasImages int
		)
		if err := rows.Scan(&e.ID, &askedAt, &e.Question, &e.Answer, &e.Mode, &hasImages, &e.DurationMS, &e.Client); err != nil {
			return nil, fmt.Errorf("scanning question log entry: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, askedAt); err == nil {
			e.AskedAt = t
		}
		e.HasImages = hasImages != 0
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Count reports how many questions have been logged.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM question_log`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting question log entries: %w", err)
	}
	return n, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
