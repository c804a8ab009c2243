package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"gomarket/internal/domain/product"
)

// feedHandler отдает count товаров p1..pN страницами по limit,
// продолжая после переданного курсора.
func feedHandler(count int, calls *atomic.Int32) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		cursor := r.URL.Query().Get("cursor")

		start := 0
		if cursor != "" {
			n, _ := strconv.Atoi(cursor[1:])
			start = n
		}

		var page product.FeedPage
		for i := start; i < count && i < start+limit; i++ {
			page.Items = append(page.Items, product.Product{
				ID:    fmt.Sprintf("p%d", i+1),
				Title: fmt.Sprintf("Товар %d", i+1),
				Price: (i + 1) * 100,
			})
		}
		json.NewEncoder(w).Encode(map[string]any{"data": page})
	}
}

func newTestFeed(t *testing.T, handler http.Handler) *FeedPager {
	t.Helper()

	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	return NewFeedPager(NewClient(ts.URL, slog.Default()), slog.Default())
}

// resetDebounce позволяет тесту сделать следующий вызов немедленно.
func resetDebounce(f *FeedPager) {
	f.mu.Lock()
	f.lastCall = time.Time{}
	f.mu.Unlock()
}

func TestFeedPager_PagesByCursor(t *testing.T) {
	var calls atomic.Int32
	feed := newTestFeed(t, feedHandler(3, &calls))
	feed.pageSize = 2

	feed.LoadMore(context.Background())
	require.Len(t, feed.Items(), 2)
	assert.Equal(t, "p1", feed.Items()[0].ID)
	assert.Equal(t, "p2", feed.Items()[1].ID)

	resetDebounce(feed)
	feed.LoadMore(context.Background())

	// вторая страница дописана в хвост, без дублей
	items := feed.Items()
	require.Len(t, items, 3)
	assert.Equal(t, "p3", items[2].ID)
	assert.False(t, feed.Stopped())
}

func TestFeedPager_DebounceSwallowsRapidCalls(t *testing.T) {
	var calls atomic.Int32
	feed := newTestFeed(t, feedHandler(40, &calls))

	feed.LoadMore(context.Background())
	feed.LoadMore(context.Background())
	feed.LoadMore(context.Background())

	// вызовы в окне дебаунса не порождают запросов
	assert.Equal(t, int32(1), calls.Load())
	assert.Len(t, feed.Items(), defaultFeedPageSize)
}

func TestFeedPager_EmptyPageStops(t *testing.T) {
	var calls atomic.Int32
	feed := newTestFeed(t, feedHandler(2, &calls))
	feed.pageSize = 5

	feed.LoadMore(context.Background())
	require.Len(t, feed.Items(), 2)

	resetDebounce(feed)
	feed.LoadMore(context.Background())
	assert.True(t, feed.Stopped())

	// остановленная лента больше не ходит в сеть
	resetDebounce(feed)
	feed.LoadMore(context.Background())
	assert.Equal(t, int32(2), calls.Load())
}

func TestFeedPager_RateLimitIsTerminal(t *testing.T) {
	var calls atomic.Int32
	feed := newTestFeed(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	feed.LoadMore(context.Background())

	assert.True(t, feed.Stopped())
	assert.Equal(t, "Слишком много запросов, попробуйте позже", feed.Err())

	resetDebounce(feed)
	feed.LoadMore(context.Background())
	assert.Equal(t, int32(1), calls.Load())
}

func TestFeedPager_TransientErrorDoesNotStop(t *testing.T) {
	var calls atomic.Int32
	feed := newTestFeed(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		feedHandler(1, &atomic.Int32{})(w, r)
	}))

	feed.LoadMore(context.Background())
	assert.NotEmpty(t, feed.Err())
	assert.False(t, feed.Stopped())

	resetDebounce(feed)
	feed.LoadMore(context.Background())
	assert.Len(t, feed.Items(), 1)
	assert.Empty(t, feed.Err())
}

func TestFeedPager_CanceledRequestKeepsState(t *testing.T) {
	feed := newTestFeed(t, feedHandler(10, &atomic.Int32{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	feed.LoadMore(ctx)

	assert.Empty(t, feed.Items())
	assert.Empty(t, feed.Err())
	assert.False(t, feed.Stopped())

	// после отмены лента остается рабочей
	resetDebounce(feed)
	feed.LoadMore(context.Background())
	assert.Len(t, feed.Items(), defaultFeedPageSize)
}
