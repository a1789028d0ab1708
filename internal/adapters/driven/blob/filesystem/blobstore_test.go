package filesystem

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

func newTestStore(t *testing.T) *BlobStore {
	t.Helper()
	store, err := NewBlobStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestBlobStore_PutGetContent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "meetings/kickoff_transcript.txt", []byte("hello world")))

	content, err := store.GetContent(ctx, "meetings/kickoff_transcript.txt")
	require.NoError(t, err)
	assert.Equal(t, "hello world", content)
}

func TestBlobStore_GetContent_NotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetContent(context.Background(), "missing.txt")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_List_PrefixFilter(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "meetings/a.txt", []byte("a")))
	require.NoError(t, store.Put(ctx, "meetings/nested/b.txt", []byte("b")))
	require.NoError(t, store.Put(ctx, "other/c.txt", []byte("c")))

	infos, err := store.List(ctx, "meetings/")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	for _, info := range infos {
		assert.True(t, strings.HasPrefix(info.Key, "meetings/"))
		assert.False(t, info.LastModified.IsZero())
	}
}

func TestBlobStore_GetSignedURL(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.mp4", []byte("x")))

	url, err := store.GetSignedURL(ctx, "a.mp4", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "file://"))
	assert.True(t, strings.HasSuffix(url, "/a.mp4"))

	_, err = store.GetSignedURL(ctx, "missing.mp4", time.Hour)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlobStore_RejectsEscapingKeys(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetContent(ctx, "../outside.txt")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = store.Put(ctx, "../../etc/passwd", []byte("x"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = store.GetContent(ctx, "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBlobStore_Delete_Idempotent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, "a.txt", []byte("x")))
	require.NoError(t, store.Delete(ctx, "a.txt"))
	require.NoError(t, store.Delete(ctx, "a.txt"))
}

func TestBlobStore_Watch_EmitsOnChange(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := store.Watch(ctx)
	require.NoError(t, err)

	require.NoError(t, store.Put(ctx, "new.txt", []byte("x")))

	select {
	case _, ok := <-events:
		assert.True(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a change event")
	}
}

func TestBlobStore_Watch_ClosesOnCancel(t *testing.T) {
	store := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())

	events, err := store.Watch(ctx)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("expected the event channel to close")
	}
}
