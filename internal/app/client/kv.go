package client

import (
	"encoding/json"
	"sync"

	"golang.org/x/exp/slog"
)

// Ключи локального хранилища.
const (
	keySession = "session"
	keyCart    = "cart"
)

// KVBackend — низкоуровневое хранилище байтов по строковому ключу.
type KVBackend interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
	Delete(key string) error
}

// Store — адаптер персистентного key-value хранилища с JSON-сериализацией.
//
// Контракт: Load никогда не падает — при отсутствии ключа, отсутствии
// бэкенда или нечитаемом содержимом возвращается fallback. Save молча
// ничего не делает без бэкенда. Межключевой атомарности нет.
type Store struct {
	backend KVBackend
	log     *slog.Logger
}

func NewStore(backend KVBackend, log *slog.Logger) *Store {
	return &Store{
		backend: backend,
		log:     log,
	}
}

// Load читает значение по ключу. Любая проблема — fallback.
func Load[T any](s *Store, key string, fallback T) T {
	if s == nil || s.backend == nil {
		return fallback
	}

	raw, ok := s.backend.Get(key)
	if !ok {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.log.Warn("нечитаемое значение в хранилище, используем fallback", "key", key, "error", err)
		return fallback
	}

	return value
}

// Save сериализует и записывает значение.
func Save[T any](s *Store, key string, value T) {
	if s == nil || s.backend == nil {
		return
	}

	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warn("не удалось сериализовать значение", "key", key, "error", err)
		return
	}

	if err := s.backend.Set(key, raw); err != nil {
		s.log.Warn("не удалось записать значение", "key", key, "error", err)
	}
}

// Remove удаляет ключ.
func (s *Store) Remove(key string) {
	if s == nil || s.backend == nil {
		return
	}

	if err := s.backend.Delete(key); err != nil {
		s.log.Warn("не удалось удалить ключ", "key", key, "error", err)
	}
}

// MemoryBackend — хранилище в памяти. Используется, когда
// не удалось открыть базу на диске, и в тестах.
type MemoryBackend struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{
		data: make(map[string][]byte),
	}
}

func (m *MemoryBackend) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[key]
	return value, ok
}

func (m *MemoryBackend) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = value
	return nil
}

func (m *MemoryBackend) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.data, key)
	return nil
}
