package storage

import (
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"
)

// MemoryStorage is a LocalStorage that forgets everything when the process
// exits. Used when no Badger path is configured, and in tests.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) GetItem(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *MemoryStorage) SetItem(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *MemoryStorage) RemoveItem(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *MemoryStorage) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := lo.Filter(lo.Keys(s.items), func(key string, _ int) bool {
		return strings.HasPrefix(key, prefix)
	})
	slices.Sort(keys)
	return keys, nil
}
