// Package memory provides an in-memory blob store for tests and
// ephemeral setups.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
)

// Ensure BlobStore implements the interface.
var _ driven.BlobStore = (*BlobStore)(nil)

type object struct {
	content      []byte
	lastModified time.Time
}

// BlobStore is an in-memory implementation of driven.BlobStore.
type BlobStore struct {
	mu      sync.RWMutex
	objects map[string]object
}

// NewBlobStore creates a new in-memory blob store.
func NewBlobStore() *BlobStore {
	return &BlobStore{objects: make(map[string]object)}
}

// List returns metadata for every object under the given key prefix.
func (s *BlobStore) List(_ context.Context, prefix string) ([]domain.ObjectInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var infos []domain.ObjectInfo
	for key, obj := range s.objects {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		infos = append(infos, domain.ObjectInfo{
			Key:          key,
			Size:         int64(len(obj.content)),
			LastModified: obj.lastModified,
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Key < infos[j].Key })
	return infos, nil
}

// GetContent fetches an object's content as text.
func (s *BlobStore) GetContent(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return string(obj.content), nil
}

// GetSignedURL returns a synthetic URL for the object. In-memory
// objects have no external address, so the URL is only useful as an
// opaque identifier.
func (s *BlobStore) GetSignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[key]; !ok {
		return "", domain.ErrNotFound
	}
	return fmt.Sprintf("memory://%s", key), nil
}

// Put stores an object.
func (s *BlobStore) Put(_ context.Context, key string, content []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	buf := make([]byte, len(content))
	copy(buf, content)
	s.objects[key] = object{content: buf, lastModified: time.Now().UTC()}
	return nil
}

// Delete removes an object. Deleting a missing object is not an error.
func (s *BlobStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}
