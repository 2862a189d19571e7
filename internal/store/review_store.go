package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jshotsmedia/studio/internal/domain"
)

// ReviewStore keeps reviews in display order, newest submissions first.
type ReviewStore struct {
	db *sql.DB
}

func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

func (s *ReviewStore) List(ctx context.Context) ([]*domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, author, rating, text, review_date FROM reviews ORDER BY position ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*domain.Review
	for rows.Next() {
		r := &domain.Review{}
		if err := rows.Scan(&r.ID, &r.Author, &r.Rating, &r.Text, &r.Date); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

func (s *ReviewStore) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	r := &domain.Review{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, author, rating, text, review_date FROM reviews WHERE id = ?
	`, id).Scan(&r.ID, &r.Author, &r.Rating, &r.Text, &r.Date)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return r, nil
}

func (s *ReviewStore) Prepend(ctx context.Context, author string, rating int, text, date string) (*domain.Review, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO reviews (author, rating, text, review_date, position)
		VALUES (?, ?, ?, ?, (SELECT COALESCE(MIN(position), 1) - 1 FROM reviews))
	`, author, rating, text, date)
	if err != nil {
		return nil, fmt.Errorf("failed to prepend review: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}
