package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"
)

// MockPhotoStore is an in-memory PhotoStore for testing.
type MockPhotoStore struct {
	stored map[string][]byte
	mu     sync.RWMutex
}

// NewMockPhotoStore creates an empty mock photo store.
func NewMockPhotoStore() *MockPhotoStore {
	return &MockPhotoStore{stored: make(map[string][]byte)}
}

// Upload simulates storing a photo.
func (m *MockPhotoStore) Upload(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	key := fmt.Sprintf("photos/mock_%s", fileHeader.Filename)

	m.mu.Lock()
	m.stored[key] = content
	m.mu.Unlock()

	return key, nil
}

// PresignedURL simulates generating a presigned URL.
func (m *MockPhotoStore) PresignedURL(key string) (string, error) {
	if key == "" {
		return "", nil
	}

	m.mu.RLock()
	_, exists := m.stored[key]
	m.mu.RUnlock()

	if !exists {
		return "", fmt.Errorf("photo not found in mock store: %s", key)
	}

	return fmt.Sprintf("https://test-bucket.s3.us-east-1.amazonaws.com/%s?mock=true", key), nil
}

// Delete simulates removing a stored photo.
func (m *MockPhotoStore) Delete(key string) error {
	if key == "" {
		return nil
	}

	m.mu.Lock()
	delete(m.stored, key)
	m.mu.Unlock()

	return nil
}

// Exists checks whether a photo is in the mock store (for test
// assertions).
func (m *MockPhotoStore) Exists(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.stored[key]
	return exists
}

// Content returns a stored photo's bytes (for test assertions).
func (m *MockPhotoStore) Content(key string) []byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.stored[key]
}
