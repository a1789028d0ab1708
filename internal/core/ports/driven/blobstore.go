package driven

import (
	"context"
	"time"

	"github.com/parallax-labs/meetlens/internal/core/domain"
)

// BlobStore abstracts the blob backend holding meeting artifacts.
// Implementations map storage-native errors onto the domain taxonomy:
// missing objects return domain.ErrNotFound, transient backend failures
// wrap domain.ErrStorageUnavailable.
type BlobStore interface {
	// List returns metadata for every object under the given key prefix.
	List(ctx context.Context, prefix string) ([]domain.ObjectInfo, error)

	// GetContent fetches an object's content as text.
	GetContent(ctx context.Context, key string) (string, error)

	// GetSignedURL returns a time-limited URL for direct retrieval.
	GetSignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Put stores an object.
	Put(ctx context.Context, key string, content []byte) error

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}

// BlobWatcher is an optional extension for blob stores that can push
// change notifications. The meeting service uses it to invalidate the
// listing cache immediately instead of waiting for TTL expiry.
type BlobWatcher interface {
	// Watch emits an event whenever the stored object set may have
	// changed. The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
