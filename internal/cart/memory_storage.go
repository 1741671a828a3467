package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/petclub-shop/internal/port"
)

type memoryStorage struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemoryStorage keeps blobs in process memory.
func NewMemoryStorage() port.CartStorage {
	return &memoryStorage{blobs: make(map[string][]byte)}
}

func (m *memoryStorage) Load(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	blob, ok := m.blobs[key]
	if !ok {
		return nil, false, nil
	}

	return append([]byte(nil), blob...), true, nil
}

func (m *memoryStorage) Save(_ context.Context, key string, blob []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.blobs[key] = append([]byte(nil), blob...)
	return nil
}
