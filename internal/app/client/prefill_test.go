package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"gomarket/internal/domain/address"
	"gomarket/internal/domain/user"
)

func newTestPrefill(t *testing.T, mux *http.ServeMux) (*PrefillCoordinator, *AddressStore) {
	t.Helper()

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	c := NewClient(ts.URL, slog.Default())
	addresses := NewAddressStore(c, slog.Default())
	return NewPrefillCoordinator(c, addresses, slog.Default()), addresses
}

func prefillMux(srv *addressServer, contacts http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/contacts", contacts)
	mux.Handle("/", srv.handler())
	return mux
}

func TestPrefill_CacheSkipsNetworkWithinTTL(t *testing.T) {
	var contactCalls atomic.Int32

	srv := &addressServer{
		addresses: []address.Address{{ID: "a1"}},
		defaultID: "a1",
	}
	mux := prefillMux(srv, func(w http.ResponseWriter, _ *http.Request) {
		contactCalls.Add(1)
		w.Write([]byte(`{"data":[{"id":"c1","name":"Иван","phone":"79001234567"}]}`))
	})

	prefill, _ := newTestPrefill(t, mux)
	u := &user.User{ID: "u1"}

	prefill.Load(context.Background(), u, "tok")
	prefill.Load(context.Background(), u, "tok")

	// повторный вход на страницу в пределах TTL обслуживается из кэша
	assert.Equal(t, int32(1), contactCalls.Load())
	assert.Equal(t, PrefillSuccess, prefill.Status())
	require.Len(t, prefill.Contacts(), 1)
	assert.Equal(t, "c1", prefill.Contacts()[0].ID)
}

func TestPrefill_CacheRestoresAddressSnapshot(t *testing.T) {
	srv := &addressServer{
		addresses: []address.Address{{ID: "a1", AddressText: "Москва, Ленина 1"}},
		defaultID: "a1",
	}
	mux := prefillMux(srv, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	prefill, addresses := newTestPrefill(t, mux)
	u := &user.User{ID: "u1"}

	prefill.Load(context.Background(), u, "tok")
	require.Len(t, addresses.Addresses(), 1)

	// стор сброшен (разлогин), но кэш-запись в пределах TTL несет
	// и адресный снапшот, и выбор
	addresses.Reset()
	prefill.Load(context.Background(), u, "tok")

	assert.Equal(t, PrefillSuccess, prefill.Status())
	require.Len(t, addresses.Addresses(), 1)
	assert.Equal(t, "a1", addresses.Addresses()[0].ID)
	assert.Equal(t, "a1", addresses.Selected())
}

func TestPrefill_CacheExpiresByTTL(t *testing.T) {
	var contactCalls atomic.Int32

	srv := &addressServer{
		addresses: []address.Address{{ID: "a1"}},
		defaultID: "a1",
	}
	mux := prefillMux(srv, func(w http.ResponseWriter, _ *http.Request) {
		contactCalls.Add(1)
		w.Write([]byte(`{"data":[]}`))
	})

	prefill, _ := newTestPrefill(t, mux)
	prefill.ttl = 10 * time.Millisecond
	u := &user.User{ID: "u1"}

	prefill.Load(context.Background(), u, "tok")
	time.Sleep(20 * time.Millisecond)
	prefill.Load(context.Background(), u, "tok")

	assert.Equal(t, int32(2), contactCalls.Load())
}

func TestPrefill_StaleResponseDiscarded(t *testing.T) {
	var contactCalls atomic.Int32
	firstStarted := make(chan struct{})
	release := make(chan struct{})

	srv := &addressServer{
		addresses: []address.Address{{ID: "a1"}},
		defaultID: "a1",
	}
	mux := prefillMux(srv, func(w http.ResponseWriter, _ *http.Request) {
		if contactCalls.Add(1) == 1 {
			close(firstStarted)
			<-release
			w.Write([]byte(`{"data":[{"id":"stale","name":"Старый","phone":"79000000001"}]}`))
			return
		}
		w.Write([]byte(`{"data":[{"id":"fresh","name":"Новый","phone":"79000000002"}]}`))
	})

	prefill, _ := newTestPrefill(t, mux)
	t.Cleanup(func() { close(release) })
	u := &user.User{ID: "u1"}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		prefill.Load(context.Background(), u, "tok")
	}()
	<-firstStarted

	// второй запуск вытесняет первый: его ответ и становится итогом
	prefill.Invalidate(u.ID)
	prefill.Load(context.Background(), u, "tok")
	wg.Wait()

	assert.Equal(t, PrefillSuccess, prefill.Status())
	require.Len(t, prefill.Contacts(), 1)
	assert.Equal(t, "fresh", prefill.Contacts()[0].ID)
}

func TestPrefill_LegacyAddressSynthesizedOnce(t *testing.T) {
	var postCalls atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/contacts", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	mux.HandleFunc("GET /api/v1/addresses", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})
	mux.HandleFunc("GET /api/v1/addresses/default", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("POST /api/v1/addresses", func(w http.ResponseWriter, _ *http.Request) {
		postCalls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	prefill, _ := newTestPrefill(t, mux)
	u := &user.User{ID: "u1", LegacyAddress: "Москва, Ленина 1"}

	prefill.Load(context.Background(), u, "tok")
	require.Equal(t, int32(1), postCalls.Load())

	// неудачная попытка не повторяется в рамках сессии
	prefill.Invalidate(u.ID)
	prefill.Load(context.Background(), u, "tok")
	assert.Equal(t, int32(1), postCalls.Load())
}

func TestPrefill_LegacyAddressSelectedAfterSynthesis(t *testing.T) {
	srv := &addressServer{}
	mux := prefillMux(srv, func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"data":[]}`))
	})

	prefill, addresses := newTestPrefill(t, mux)
	u := &user.User{ID: "u1", LegacyAddress: "Москва, Ленина 1"}

	prefill.Load(context.Background(), u, "tok")

	require.Len(t, addresses.Addresses(), 1)
	assert.Equal(t, "Москва, Ленина 1", addresses.Addresses()[0].AddressText)
	assert.Equal(t, "srv-new", addresses.Selected())
	assert.Equal(t, "srv-new", srv.defaultID)
}

func TestPrefill_NilUserResetsToIdle(t *testing.T) {
	prefill, _ := newTestPrefill(t, http.NewServeMux())

	prefill.Load(context.Background(), nil, "")

	assert.Equal(t, PrefillIdle, prefill.Status())
	assert.Empty(t, prefill.Contacts())
}

func TestPrefill_EnsureContactSkipsUnchanged(t *testing.T) {
	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/contacts", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	})

	prefill, _ := newTestPrefill(t, mux)
	prefill.contacts = []user.Contact{
		{ID: "c1", Name: "Иван", Phone: "89001234567", Email: "ivan@example.com"},
	}

	// эквивалентная форма телефона не считается изменением
	got, err := prefill.EnsureContact(context.Background(), "Иван", "+7 (900) 123-45-67", "ivan@example.com")
	require.NoError(t, err)
	assert.Equal(t, "c1", got.ID)
	assert.Equal(t, int32(0), calls.Load())
}

func TestPrefill_EnsureContactUpdatesChanged(t *testing.T) {
	var method, path string
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/contacts/", func(w http.ResponseWriter, r *http.Request) {
		method, path = r.Method, r.URL.Path
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{
			"id": "c1", "name": body["name"], "phone": body["phone"], "email": body["email"],
		}})
	})

	prefill, _ := newTestPrefill(t, mux)
	prefill.contacts = []user.Contact{
		{ID: "c1", Name: "Иван", Phone: "79001234567", Email: "old@example.com"},
	}

	got, err := prefill.EnsureContact(context.Background(), "Иван", "79001234567", "new@example.com")
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/api/v1/contacts/c1", path)
	assert.Equal(t, "new@example.com", got.Email)
	assert.Equal(t, "new@example.com", prefill.Contacts()[0].Email)
}

func TestPrefill_EnsureContactCreatesMissing(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/contacts", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{"data": map[string]string{
			"id": "c-new", "name": body["name"], "phone": body["phone"], "email": body["email"],
		}})
	})

	prefill, _ := newTestPrefill(t, mux)

	got, err := prefill.EnsureContact(context.Background(), "Петр", "89005556677", "petr@example.com")
	require.NoError(t, err)

	assert.Equal(t, "c-new", got.ID)
	require.Len(t, prefill.Contacts(), 1)
	assert.Equal(t, "c-new", prefill.Contacts()[0].ID)
}
