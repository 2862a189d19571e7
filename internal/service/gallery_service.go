package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jshotsmedia/studio/internal/domain"
	"github.com/jshotsmedia/studio/internal/gate"
	"github.com/jshotsmedia/studio/internal/mediastore"
)

// ErrUploadIncomplete is returned when an upload is missing the image or the
// caption; neither is optional.
var ErrUploadIncomplete = errors.New("upload requires both an image and a caption")

// galleryRepository is the subset of store.GalleryStore that GalleryService
// requires.
type galleryRepository interface {
	List(ctx context.Context, category string) ([]*domain.GalleryItem, error)
	Prepend(ctx context.Context, src, category, caption string) (*domain.GalleryItem, error)
}

// GalleryService renders the filterable grid and gates uploads behind the
// team-access PIN.
type GalleryService struct {
	items  galleryRepository
	media  mediastore.MediaStore
	access *gate.Gate
	logger *slog.Logger
}

func NewGalleryService(items galleryRepository, media mediastore.MediaStore, access *gate.Gate, logger *slog.Logger) *GalleryService {
	return &GalleryService{items: items, media: media, access: access, logger: logger}
}

// List returns items for a category filter; domain.GalleryCategoryAll (or an
// empty filter) returns the whole sequence in display order.
func (s *GalleryService) List(ctx context.Context, category string) ([]*domain.GalleryItem, error) {
	return s.items.List(ctx, category)
}

// Unlock checks the team-access PIN (case-insensitive).
func (s *GalleryService) Unlock(pin string) bool {
	ok := s.access.Unlock(pin)
	if !ok {
		s.logger.Warn("gallery access denied")
	}
	return ok
}

// Upload commits a staged image and prepends the new gallery item. It is
// rejected unless both the staged image and a caption are present.
func (s *GalleryService) Upload(ctx context.Context, stageKey, category, caption string) (*domain.GalleryItem, error) {
	caption = strings.TrimSpace(caption)
	if stageKey == "" || caption == "" {
		return nil, ErrUploadIncomplete
	}
	if !validGalleryCategory(category) {
		return nil, fmt.Errorf("unknown gallery category %q", category)
	}

	assetKey, err := s.media.Commit(ctx, stageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to commit image: %w", err)
	}

	item, err := s.items.Prepend(ctx, "/media/"+assetKey, category, caption)
	if err != nil {
		return nil, fmt.Errorf("failed to add gallery item: %w", err)
	}

	s.logger.Info("gallery item added", "id", item.ID, "category", item.Category)
	return item, nil
}

// validGalleryCategory accepts the storable categories; the All
// pseudo-category is filter-only.
func validGalleryCategory(category string) bool {
	for _, c := range domain.GalleryCategories() {
		if c != domain.GalleryCategoryAll && c == category {
			return true
		}
	}
	return false
}
