package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestSession(t *testing.T, handler http.Handler) (*SessionStore, *Store, *Client) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, slog.Default())
	store := NewStore(NewMemoryBackend(), slog.Default())
	return NewSessionStore(c, store, slog.Default()), store, c
}

func TestSessionStore_LoginPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"user":{"id":"u1","email":"ivan@example.com"},"accessToken":"tok"}}`))
	})

	session, store, c := newTestSession(t, mux)

	require.NoError(t, session.Login(context.Background(), "ivan@example.com", "secret123"))

	current := session.Current()
	require.True(t, current.Authenticated())
	assert.Equal(t, "u1", current.User.ID)
	assert.Equal(t, "tok", c.Token())

	// сессия пережила «перезапуск»: новый стор гидрируется из хранилища
	restored := NewSessionStore(c, store, slog.Default())
	restored.Hydrate()
	assert.True(t, restored.Current().Authenticated())
}

func TestSessionStore_LogoutClearsLocallyEvenIfRemoteFails(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"user":{"id":"u1","email":"a@b.ru"},"accessToken":"tok"}}`))
	})
	mux.HandleFunc("/api/v1/auth/logout", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	session, store, c := newTestSession(t, mux)
	require.NoError(t, session.Login(context.Background(), "a@b.ru", "secret123"))

	session.Logout(context.Background())

	assert.False(t, session.Current().Authenticated())
	assert.Empty(t, c.Token())
	persisted := Load(store, keySession, Session{})
	assert.False(t, persisted.Authenticated())
}

func TestSessionStore_HydrateRejectsPartialSession(t *testing.T) {
	session, store, _ := newTestSession(t, http.NewServeMux())

	// токен без пользователя — частичная сессия недопустима
	Save(store, keySession, Session{Token: "tok"})
	session.Hydrate()

	assert.False(t, session.Current().Authenticated())
}

func TestSessionStore_ForcedLogoutSignalClearsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"user":{"id":"u1","email":"a@b.ru"},"accessToken":"stale"}}`))
	})
	mux.HandleFunc(refreshPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("/api/v1/data", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	session, _, c := newTestSession(t, mux)
	require.NoError(t, session.Login(context.Background(), "a@b.ru", "secret123"))

	_, err := c.Request(context.Background(), "/api/v1/data", RequestOptions{})
	assert.ErrorIs(t, err, ErrSessionExpired)

	// транспорт подал сигнал, владелец сессии ее очистил
	assert.False(t, session.Current().Authenticated())
}
