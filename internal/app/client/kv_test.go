package client

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type testPayload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_LoadFallbacks(t *testing.T) {
	store := NewStore(NewMemoryBackend(), slog.Default())

	// отсутствующий ключ
	got := Load(store, "missing", testPayload{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)

	// нечитаемое содержимое
	require.NoError(t, store.backend.Set("broken", []byte("{not json")))
	got = Load(store, "broken", testPayload{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)

	// несовпадающая форма — тоже fallback, не паника
	require.NoError(t, store.backend.Set("shape", []byte(`[1,2,3]`)))
	got = Load(store, "shape", testPayload{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)
}

func TestStore_WithoutBackend(t *testing.T) {
	store := NewStore(nil, slog.Default())

	// без бэкенда операции молча не делают ничего
	Save(store, "key", testPayload{Name: "x"})
	store.Remove("key")
	got := Load(store, "key", testPayload{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)
}

func TestStore_SaveLoadRemove(t *testing.T) {
	store := NewStore(NewMemoryBackend(), slog.Default())

	Save(store, "payload", testPayload{Name: "corgi", Count: 3})
	got := Load(store, "payload", testPayload{})
	assert.Equal(t, testPayload{Name: "corgi", Count: 3}, got)

	store.Remove("payload")
	got = Load(store, "payload", testPayload{Name: "fallback"})
	assert.Equal(t, "fallback", got.Name)
}

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")

	backend, err := NewSQLiteBackend(path)
	require.NoError(t, err)
	defer backend.Close()

	require.NoError(t, backend.Set("k", []byte(`"v1"`)))
	require.NoError(t, backend.Set("k", []byte(`"v2"`)))

	value, ok := backend.Get("k")
	require.True(t, ok)
	assert.Equal(t, []byte(`"v2"`), value)

	require.NoError(t, backend.Delete("k"))
	_, ok = backend.Get("k")
	assert.False(t, ok)
}
