package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"
)

// ErrBlobNotFound is returned when a named blob has never been written
var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is the durable local storage port: whole-value reads and
// writes of a named blob. Implementations do not retry.
type BlobStore interface {
	Read(ctx context.Context, name string) ([]byte, error)
	Write(ctx context.Context, name string, data []byte) error
}

// RedisBlobStore persists blobs as plain Redis keys with no expiry
type RedisBlobStore struct {
	client *redis.Client
	prefix string
}

// NewRedisBlobStore creates a RedisBlobStore with a key prefix
func NewRedisBlobStore(client *redis.Client, prefix string) *RedisBlobStore {
	return &RedisBlobStore{client: client, prefix: prefix}
}

func (s *RedisBlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	data, err := s.client.Get(ctx, s.prefix+name).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("redis get error: %w", err)
	}
	return data, nil
}

func (s *RedisBlobStore) Write(ctx context.Context, name string, data []byte) error {
	if err := s.client.Set(ctx, s.prefix+name, data, 0).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// FileBlobStore persists blobs as files in a directory
type FileBlobStore struct {
	dir string
}

// NewFileBlobStore creates the directory if needed and returns the store
func NewFileBlobStore(dir string) (*FileBlobStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create blob dir: %w", err)
	}
	return &FileBlobStore{dir: dir}, nil
}

func (s *FileBlobStore) Read(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, err
	}
	return data, nil
}

func (s *FileBlobStore) Write(_ context.Context, name string, data []byte) error {
	return os.WriteFile(s.path(name), data, 0o644)
}

func (s *FileBlobStore) path(name string) string {
	return filepath.Join(s.dir, filepath.Base(name)+".json")
}
