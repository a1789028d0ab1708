// Package filesystem provides a blob store backed by a local directory.
// Keys are slash-separated paths relative to the root directory. Signed
// URLs are file:// URIs; local files need no expiry, so the TTL is
// accepted and ignored.
package filesystem

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/parallax-labs/meetlens/internal/core/domain"
	"github.com/parallax-labs/meetlens/internal/core/ports/driven"
	"github.com/parallax-labs/meetlens/internal/logger"
)

// Ensure BlobStore implements the interfaces.
var (
	_ driven.BlobStore   = (*BlobStore)(nil)
	_ driven.BlobWatcher = (*BlobStore)(nil)
)

// BlobStore is a filesystem implementation of driven.BlobStore.
type BlobStore struct {
	root string
}

// NewBlobStore creates a blob store rooted at the given directory,
// creating it if needed.
func NewBlobStore(root string) (*BlobStore, error) {
	if root == "" {
		return nil, fmt.Errorf("blob root: %w", domain.ErrInvalidInput)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving blob root: %w", err)
	}
	if err := os.MkdirAll(abs, 0700); err != nil {
		return nil, fmt.Errorf("creating blob root: %w", err)
	}
	return &BlobStore{root: abs}, nil
}

// keyPath maps a storage key onto a path under the root, rejecting
// keys that would escape it.
func (s *BlobStore) keyPath(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("blob key: %w", domain.ErrInvalidInput)
	}
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if !strings.HasPrefix(path, s.root+string(filepath.Separator)) {
		return "", fmt.Errorf("blob key %q: %w", key, domain.ErrInvalidInput)
	}
	return path, nil
}

// List returns metadata for every file under the given key prefix.
func (s *BlobStore) List(ctx context.Context, prefix string) ([]domain.ObjectInfo, error) {
	var infos []domain.ObjectInfo
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		key := filepath.ToSlash(rel)
		if !strings.HasPrefix(key, prefix) {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		infos = append(infos, domain.ObjectInfo{
			Key:          key,
			Size:         info.Size(),
			LastModified: info.ModTime().UTC(),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing blobs: %w: %w", domain.ErrStorageUnavailable, err)
	}
	return infos, nil
}

// GetContent fetches a file's content as text.
func (s *BlobStore) GetContent(_ context.Context, key string) (string, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
		}
		return "", fmt.Errorf("reading blob %s: %w: %w", key, domain.ErrStorageUnavailable, err)
	}
	return string(data), nil
}

// GetSignedURL returns a file:// URI for the stored file.
func (s *BlobStore) GetSignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	path, err := s.keyPath(key)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("blob %s: %w", key, domain.ErrNotFound)
		}
		return "", fmt.Errorf("stat blob %s: %w: %w", key, domain.ErrStorageUnavailable, err)
	}
	return "file://" + filepath.ToSlash(path), nil
}

// Put stores a file, creating parent directories as needed.
func (s *BlobStore) Put(_ context.Context, key string, content []byte) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating blob directory: %w", err)
	}
	if err := os.WriteFile(path, content, 0600); err != nil {
		return fmt.Errorf("writing blob %s: %w: %w", key, domain.ErrStorageUnavailable, err)
	}
	return nil
}

// Delete removes a file. Deleting a missing file is not an error.
func (s *BlobStore) Delete(_ context.Context, key string) error {
	path, err := s.keyPath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting blob %s: %w", key, err)
	}
	return nil
}

// Watch emits an event whenever a file under the root changes. Events
// are coalesced: the channel has a buffer of one and a pending event is
// dropped rather than blocking the watcher.
func (s *BlobStore) Watch(ctx context.Context) (<-chan struct{}, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := watcher.Add(s.root); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", s.root, err)
	}

	events := make(chan struct{}, 1)
	go func() {
		defer close(events)
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Events:
				if !ok {
					return
				}
				select {
				case events <- struct{}{}:
				default:
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("blob watcher: %v", err)
			}
		}
	}()
	return events, nil
}
