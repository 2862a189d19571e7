package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jshotsmedia/studio/internal/domain"
)

// GalleryStore orders items by an explicit position key so that prepends land
// at the front without disturbing the relative order of everything else.
type GalleryStore struct {
	db *sql.DB
}

func NewGalleryStore(db *sql.DB) *GalleryStore {
	return &GalleryStore{db: db}
}

// List returns items in display order. The pseudo-category
// domain.GalleryCategoryAll (or an empty string) applies no filter.
func (s *GalleryStore) List(ctx context.Context, category string) ([]*domain.GalleryItem, error) {
	query := `SELECT id, src, category, caption FROM gallery_items ORDER BY position ASC`
	args := []any{}
	if category != "" && category != domain.GalleryCategoryAll {
		query = `SELECT id, src, category, caption FROM gallery_items WHERE category = ? ORDER BY position ASC`
		args = append(args, category)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list gallery items: %w", err)
	}
	defer rows.Close()

	var items []*domain.GalleryItem
	for rows.Next() {
		item := &domain.GalleryItem{}
		if err := rows.Scan(&item.ID, &item.Src, &item.Category, &item.Caption); err != nil {
			return nil, fmt.Errorf("failed to scan gallery item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating gallery items: %w", err)
	}

	return items, nil
}

func (s *GalleryStore) GetByID(ctx context.Context, id int64) (*domain.GalleryItem, error) {
	item := &domain.GalleryItem{}
	err := s.db.QueryRowContext(ctx, `
		SELECT id, src, category, caption FROM gallery_items WHERE id = ?
	`, id).Scan(&item.ID, &item.Src, &item.Category, &item.Caption)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get gallery item: %w", err)
	}

	return item, nil
}

// Prepend inserts a new item ahead of every existing one.
func (s *GalleryStore) Prepend(ctx context.Context, src, category, caption string) (*domain.GalleryItem, error) {
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO gallery_items (src, category, caption, position)
		VALUES (?, ?, ?, (SELECT COALESCE(MIN(position), 1) - 1 FROM gallery_items))
	`, src, category, caption)
	if err != nil {
		return nil, fmt.Errorf("failed to prepend gallery item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return s.GetByID(ctx, id)
}
