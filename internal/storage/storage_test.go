package storage

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "users/a/resume.txt", []byte("hello"), "text/plain"))

	got, err := store.Get(ctx, "users/a/resume.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello"), got)

	require.NoError(t, store.Delete(ctx, "users/a/resume.txt"))
	_, err = store.Get(ctx, "users/a/resume.txt")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	data := []byte("original")
	require.NoError(t, store.Put(ctx, "k", data, "text/plain"))
	data[0] = 'X'

	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("original"), got)
}

func TestOwnerKeyNamespacesByOwner(t *testing.T) {
	owner := uuid.New()

	key := OwnerKey(owner, "resume.docx")
	assert.True(t, strings.HasPrefix(key, fmt.Sprintf("users/%s/", owner)))
	assert.True(t, strings.HasSuffix(key, "_resume.docx"))

	// Two keys for the same filename never collide.
	assert.NotEqual(t, key, OwnerKey(owner, "resume.docx"))
}

func TestNewS3StoreRequiresConfig(t *testing.T) {
	_, err := NewS3Store(context.Background(), S3Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
