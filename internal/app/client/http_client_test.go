package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return NewClient(ts.URL, slog.Default()), ts
}

func TestClient_NormalizesBareAndWrappedResponses(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bare", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"id":"p1"}`))
	})
	mux.HandleFunc("/wrapped", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":{"id":"p1"}}`))
	})

	c, _ := newTestClient(t, mux)

	type item struct {
		ID string `json:"id"`
	}

	bare, err := RequestJSON[item](context.Background(), c, "/bare", RequestOptions{})
	require.NoError(t, err)
	wrapped, err := RequestJSON[item](context.Background(), c, "/wrapped", RequestOptions{})
	require.NoError(t, err)

	// обе формы приводятся к одному результату, без двойной обертки
	assert.Equal(t, bare, wrapped)
	assert.Equal(t, "p1", bare.ID)
}

func TestClient_APIErrorCarriesStatusAndCode(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"message":"контакт уже существует","error":{"code":"contact_exists"}}`))
	}))

	_, err := c.Request(context.Background(), "/api/v1/contacts", RequestOptions{Method: http.MethodPost})
	require.Error(t, err)

	assert.True(t, IsStatus(err, http.StatusConflict))
	assert.True(t, IsCode(err, "contact_exists"))
	assert.Contains(t, err.Error(), "контакт уже существует")
}

func TestClient_RefreshSingleFlight(t *testing.T) {
	const n = 8

	var refreshCalls atomic.Int32
	var dataCalls atomic.Int32

	// барьер: все n запросов получают свой 401 одновременно,
	// чтобы все вызовы refresh гарантированно пересеклись
	var barrierMu sync.Mutex
	arrived := 0
	release := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc(refreshPath, func(w http.ResponseWriter, _ *http.Request) {
		refreshCalls.Add(1)
		time.Sleep(20 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh"})
	})
	mux.HandleFunc("/api/v1/data", func(w http.ResponseWriter, r *http.Request) {
		dataCalls.Add(1)
		if r.Header.Get("Authorization") != "Bearer fresh" {
			barrierMu.Lock()
			arrived++
			if arrived == n {
				close(release)
			}
			barrierMu.Unlock()
			<-release
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"data":"ok"}`))
	})

	c, _ := newTestClient(t, mux)
	c.SetToken("stale")

	var wg sync.WaitGroup
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Request(context.Background(), "/api/v1/data", RequestOptions{})
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}

	// N одновременных 401 делят ровно один refresh
	assert.Equal(t, int32(1), refreshCalls.Load())
	// каждый запрос повторен не более одного раза
	assert.LessOrEqual(t, dataCalls.Load(), int32(2*n))
	assert.Equal(t, "fresh", c.Token())
}

func TestClient_RefreshAcceptsAllTokenShapes(t *testing.T) {
	shapes := []string{
		`{"accessToken":"fresh"}`,
		`{"token":"fresh"}`,
		`{"data":{"accessToken":"fresh"}}`,
	}

	for _, shape := range shapes {
		t.Run(shape, func(t *testing.T) {
			mux := http.NewServeMux()
			mux.HandleFunc(refreshPath, func(w http.ResponseWriter, _ *http.Request) {
				w.Write([]byte(shape))
			})
			mux.HandleFunc("/api/v1/data", func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer fresh" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				w.Write([]byte(`{"data":"ok"}`))
			})

			c, _ := newTestClient(t, mux)
			c.SetToken("stale")

			_, err := c.Request(context.Background(), "/api/v1/data", RequestOptions{})
			assert.NoError(t, err)
			assert.Equal(t, "fresh", c.Token())
		})
	}
}

func TestClient_RefreshFailureForcesLogout(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusUnauthorized, http.StatusForbidden} {
		mux := http.NewServeMux()
		mux.HandleFunc(refreshPath, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})
		mux.HandleFunc("/api/v1/data", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})

		c, _ := newTestClient(t, mux)
		c.SetToken("stale")

		var loggedOut atomic.Bool
		c.OnForcedLogout(func() { loggedOut.Store(true) })

		_, err := c.Request(context.Background(), "/api/v1/data", RequestOptions{})
		assert.ErrorIs(t, err, ErrSessionExpired, "status %d", status)
		assert.True(t, loggedOut.Load(), "status %d", status)
		assert.Empty(t, c.Token())
	}
}

func TestClient_RefreshServerErrorDoesNotLogout(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(refreshPath, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	mux.HandleFunc("/api/v1/data", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, _ := newTestClient(t, mux)
	c.SetToken("stale")

	var loggedOut atomic.Bool
	c.OnForcedLogout(func() { loggedOut.Store(true) })

	_, err := c.Request(context.Background(), "/api/v1/data", RequestOptions{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionExpired)
	assert.True(t, IsStatus(err, http.StatusInternalServerError))
	// прочие ошибки refresh не приводят к разлогину
	assert.False(t, loggedOut.Load())
}

func TestClient_NoInfiniteRetryLoop(t *testing.T) {
	var dataCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc(refreshPath, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh"})
	})
	mux.HandleFunc("/api/v1/data", func(w http.ResponseWriter, _ *http.Request) {
		// сервер продолжает отвечать 401 даже со свежим токеном
		dataCalls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	})

	c, _ := newTestClient(t, mux)
	c.SetToken("stale")

	_, err := c.Request(context.Background(), "/api/v1/data", RequestOptions{})
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))
	// исходный запрос + ровно один повтор
	assert.Equal(t, int32(2), dataCalls.Load())
}

func TestClient_ReaderBodySurvivesRetry(t *testing.T) {
	const payload = `{"note":"из потока"}`

	var bodies []string
	var mu sync.Mutex

	mux := http.NewServeMux()
	mux.HandleFunc(refreshPath, func(w http.ResponseWriter, _ *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"accessToken": "fresh"})
	})
	mux.HandleFunc("/api/v1/data", func(w http.ResponseWriter, r *http.Request) {
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, string(raw))
		mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Write([]byte(`{"data":"ok"}`))
	})

	c, _ := newTestClient(t, mux)
	c.SetToken("stale")

	_, err := c.Request(context.Background(), "/api/v1/data", RequestOptions{
		Method: http.MethodPost,
		Body:   strings.NewReader(payload),
	})
	require.NoError(t, err)

	// поток вычитан один раз, но оба запроса несут полное тело
	require.Len(t, bodies, 2)
	assert.Equal(t, payload, bodies[0])
	assert.Equal(t, payload, bodies[1])
}

func TestClient_EmptyBodyOnSuccess(t *testing.T) {
	c, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	resp, err := c.Request(context.Background(), "/api/v1/void", RequestOptions{Method: http.MethodDelete})
	require.NoError(t, err)
	assert.Equal(t, "null", string(resp.Data))
}
