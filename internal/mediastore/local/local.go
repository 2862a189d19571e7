package local

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	stagingDir = "staging"
	assetsDir  = "assets"
)

// LocalMediaStore keeps staged previews under basePath/staging and committed
// assets under basePath/assets. Commit is a rename, so it never copies bytes.
type LocalMediaStore struct {
	basePath string
}

func NewLocalMediaStore(basePath string) (*LocalMediaStore, error) {
	for _, dir := range []string{stagingDir, assetsDir} {
		if err := os.MkdirAll(filepath.Join(basePath, dir), 0755); err != nil {
			return nil, fmt.Errorf("failed to create media directory: %w", err)
		}
	}
	return &LocalMediaStore{basePath: basePath}, nil
}

func (s *LocalMediaStore) Stage(ctx context.Context, prefix, mimeType string, r io.Reader) (string, error) {
	filename := fmt.Sprintf("%s_%d%s", prefix, time.Now().UnixNano(), mimeTypeToExt(mimeType))
	filePath := filepath.Join(s.basePath, stagingDir, filename)

	f, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create staged file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		if cerr := f.Close(); cerr != nil {
			slog.Error("failed to close staged file after write error", "error", cerr)
		}
		if rerr := os.Remove(filePath); rerr != nil {
			slog.Error("failed to remove staged file after write error", "error", rerr)
		}
		return "", fmt.Errorf("failed to write staged file: %w", err)
	}
	if err := f.Close(); err != nil {
		if rerr := os.Remove(filePath); rerr != nil {
			slog.Error("failed to remove staged file after close error", "error", rerr)
		}
		return "", fmt.Errorf("failed to close staged file: %w", err)
	}
	return filename, nil
}

func (s *LocalMediaStore) Commit(ctx context.Context, stageKey string) (string, error) {
	stagedPath, err := s.safeJoin(stagingDir, stageKey)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(stagedPath); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("staged media not found")
		}
		return "", fmt.Errorf("failed to stat staged file: %w", err)
	}

	assetPath, err := s.safeJoin(assetsDir, stageKey)
	if err != nil {
		return "", err
	}
	if err := os.Rename(stagedPath, assetPath); err != nil {
		return "", fmt.Errorf("failed to commit staged file: %w", err)
	}
	return stageKey, nil
}

func (s *LocalMediaStore) Discard(ctx context.Context, stageKey string) error {
	stagedPath, err := s.safeJoin(stagingDir, stageKey)
	if err != nil {
		return err
	}
	if err := os.Remove(stagedPath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("staged media not found")
		}
		return fmt.Errorf("failed to discard staged file: %w", err)
	}
	return nil
}

func (s *LocalMediaStore) Open(ctx context.Context, assetKey string) (io.ReadCloser, string, error) {
	assetPath, err := s.safeJoin(assetsDir, assetKey)
	if err != nil {
		return nil, "", err
	}

	f, err := os.Open(assetPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, "", fmt.Errorf("media not found")
		}
		return nil, "", fmt.Errorf("failed to open asset: %w", err)
	}
	return f, extToMimeType(assetPath), nil
}

// safeJoin resolves key under basePath/dir and rejects directory traversal.
func (s *LocalMediaStore) safeJoin(dir, key string) (string, error) {
	absBase, err := filepath.Abs(filepath.Join(s.basePath, dir))
	if err != nil {
		return "", fmt.Errorf("invalid base path: %w", err)
	}

	absPath, err := filepath.Abs(filepath.Join(s.basePath, dir, key))
	if err != nil {
		return "", fmt.Errorf("invalid path: %w", err)
	}

	if !strings.HasPrefix(absPath, absBase+string(filepath.Separator)) {
		return "", fmt.Errorf("path traversal attempt")
	}
	return absPath, nil
}

func mimeTypeToExt(mimeType string) string {
	switch mimeType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	case "image/webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func extToMimeType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	default:
		return "image/jpeg"
	}
}
