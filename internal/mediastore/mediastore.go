package mediastore

import (
	"context"
	"io"
)

// MediaStore models image handling as two phases: a staged preview that only
// exists until it is committed or discarded, and a durable asset produced by
// Commit. Admin screens stage a file on selection and commit it when the
// owning record is saved; an abandoned stage must be discarded so the bytes
// are released.
type MediaStore interface {
	// Stage writes an ephemeral preview and returns its stage key.
	Stage(ctx context.Context, prefix, mimeType string, r io.Reader) (stageKey string, err error)
	// Commit promotes a staged preview to a durable asset and returns the
	// asset key. The stage key is invalid afterwards.
	Commit(ctx context.Context, stageKey string) (assetKey string, err error)
	// Discard releases a staged preview that will not be committed.
	Discard(ctx context.Context, stageKey string) error
	// Open reads back a committed asset.
	Open(ctx context.Context, assetKey string) (io.ReadCloser, string, error)
}
