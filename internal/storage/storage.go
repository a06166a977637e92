// Package storage persists uploaded document blobs. The S3 store is the
// durable backend; the memory store backs local-only mode when no blob
// backend is configured.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ErrNotConfigured signals that no durable blob backend is available.
// Callers degrade to the in-memory store and must surface the degradation
// to the user rather than hide it.
var ErrNotConfigured = errors.New("storage: blob backend not configured")

// ErrNotFound is returned when a key has no stored blob.
var ErrNotFound = errors.New("storage: blob not found")

// BlobStore stores uploaded documents by key.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// OwnerKey generates a storage path under the owner's namespace. The
// random component keeps concurrent uploads of the same filename from
// colliding.
func OwnerKey(ownerID uuid.UUID, filename string) string {
	d := time.Now()
	return fmt.Sprintf("users/%s/%d/%02d/%02d/%s_%s",
		ownerID, d.Year(), d.Month(), d.Day(), uuid.New(), filename)
}
