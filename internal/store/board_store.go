package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jshotsmedia/studio/internal/domain"
)

// BoardStore holds the append-only private boardroom transcript.
type BoardStore struct {
	db *sql.DB
}

func NewBoardStore(db *sql.DB) *BoardStore {
	return &BoardStore{db: db}
}

func (s *BoardStore) List(ctx context.Context) ([]*domain.InternalMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sender, text, created_at FROM internal_messages ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list internal messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.InternalMessage
	for rows.Next() {
		m := &domain.InternalMessage{}
		if err := rows.Scan(&m.ID, &m.Sender, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan internal message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating internal messages: %w", err)
	}

	return messages, nil
}

func (s *BoardStore) Append(ctx context.Context, sender, text string) (*domain.InternalMessage, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO internal_messages (sender, text) VALUES (?, ?)
	`, sender, text)
	if err != nil {
		return nil, fmt.Errorf("failed to append internal message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	m := &domain.InternalMessage{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, sender, text, created_at FROM internal_messages WHERE id = ?
	`, id).Scan(&m.ID, &m.Sender, &m.Text, &m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get internal message: %w", err)
	}

	return m, nil
}
