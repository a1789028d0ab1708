package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

func TestBlobStore_PutGetContent(t *testing.T) {
	store := NewBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "meetings/a.txt", []byte("hello")))

	content, err := store.GetContent(ctx, "meetings/a.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello", content)
}

func TestBlobStore_GetContent_NotFound(t *testing.T) {
	store := NewBlobStore()

	_, err := store.GetContent(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_List_PrefixFilter(t *testing.T) {
	store := NewBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "meetings/a.txt", []byte("a")))
	require.NoError(t, store.Put(ctx, "meetings/b.txt", []byte("bb")))
	require.NoError(t, store.Put(ctx, "other/c.txt", []byte("c")))

	infos, err := store.List(ctx, "meetings/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "meetings/a.txt", infos[0].Key)
	assert.Equal(t, "meetings/b.txt", infos[1].Key)
	assert.Equal(t, int64(2), infos[1].Size)
}

func TestBlobStore_GetSignedURL(t *testing.T) {
	store := NewBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.mp4", []byte("x")))

	url, err := store.GetSignedURL(ctx, "a.mp4", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, "memory://a.mp4", url)

	_, err = store.GetSignedURL(ctx, "missing", time.Hour)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_Delete_Idempotent(t *testing.T) {
	store := NewBlobStore()
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.txt", []byte("x")))
	require.NoError(t, store.Delete(ctx, "a.txt"))
	require.NoError(t, store.Delete(ctx, "a.txt"))

	_, err := store.GetContent(ctx, "a.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
