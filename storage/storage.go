// Package storage persists generated assets. The in-memory store backs
// tests and local development, the S3 store backs shared environments.
package storage

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Object is a stored asset with its content type
type Object struct {
	Key         string
	Data        []byte
	ContentType string
}

// Store persists generated images and annotation payloads
type Store interface {
	// Put uploads an object under the given key
	Put(ctx context.Context, obj Object) error

	// Get retrieves an object by key
	Get(ctx context.Context, key string) (*Object, error)

	// Delete removes an object by key
	Delete(ctx context.Context, key string) error

	// Presign returns a time-limited URL for downloading the object
	Presign(ctx context.Context, key string, expires time.Duration) (string, error)
}

// ErrNotFound is returned when a key has no stored object
var ErrNotFound = fmt.Errorf("storage: object not found")

// MemoryStore keeps objects in process memory
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]Object
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]Object)}
}

func (s *MemoryStore) Put(ctx context.Context, obj Object) error {
	if obj.Key == "" {
		return fmt.Errorf("storage: empty key")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	data := make([]byte, len(obj.Data))
	copy(data, obj.Data)
	obj.Data = data
	s.objects[obj.Key] = obj
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) (*Object, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	data := make([]byte, len(obj.Data))
	copy(data, obj.Data)
	obj.Data = data
	return &obj, nil
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

// Presign returns a stable pseudo-URL. Memory objects are only reachable
// in process, so the URL is informational.
func (s *MemoryStore) Presign(ctx context.Context, key string, expires time.Duration) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.objects[key]; !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return "memory://" + key, nil
}
