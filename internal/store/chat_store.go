package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jshotsmedia/studio/internal/domain"
)

// ChatStore holds the append-only customer chat transcript. It is seeded with
// one welcome message and never truncated.
type ChatStore struct {
	db *sql.DB
}

func NewChatStore(db *sql.DB) *ChatStore {
	return &ChatStore{db: db}
}

func (s *ChatStore) List(ctx context.Context) ([]*domain.ChatMessage, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role, text, created_at FROM chat_messages ORDER BY id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.ChatMessage
	for rows.Next() {
		m := &domain.ChatMessage{}
		if err := rows.Scan(&m.ID, &m.Role, &m.Text, &m.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan chat message: %w", err)
		}
		messages = append(messages, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating chat messages: %w", err)
	}

	return messages, nil
}

func (s *ChatStore) Append(ctx context.Context, role domain.ChatRole, text string) (*domain.ChatMessage, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_messages (role, text) VALUES (?, ?)
	`, role, text)
	if err != nil {
		return nil, fmt.Errorf("failed to append chat message: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	m := &domain.ChatMessage{}
	err = s.db.QueryRowContext(ctx, `
		SELECT id, role, text, created_at FROM chat_messages WHERE id = ?
	`, id).Scan(&m.ID, &m.Role, &m.Text, &m.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat message: %w", err)
	}

	return m, nil
}
