package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"golang.org/x/exp/slog"

	"gomarket/internal/domain/product"
)

const (
	defaultFeedPageSize = 20
	feedDebounce        = 300 * time.Millisecond
)

// FeedPager — курсорная подгрузка ленты товаров для бесконечного
// скролла. Повторный вызов во время загрузки, после остановки или
// в окне дебаунса — no-op. Пустая страница и 429 останавливают
// ленту навсегда для данного экземпляра.
type FeedPager struct {
	client   *Client
	log      *slog.Logger
	pageSize int

	mu       sync.Mutex
	items    []product.Product
	cursor   string
	loading  bool
	stopped  bool
	lastCall time.Time
	// reqID монотонно растет: ответ вытесненного запроса отбрасывается
	reqID  uint64
	errMsg string
}

func NewFeedPager(c *Client, log *slog.Logger) *FeedPager {
	return &FeedPager{
		client:   c,
		log:      log,
		pageSize: defaultFeedPageSize,
	}
}

// LoadMore подгружает следующую страницу.
func (f *FeedPager) LoadMore(ctx context.Context) {
	f.mu.Lock()

	now := time.Now()
	if f.loading || f.stopped || now.Sub(f.lastCall) < feedDebounce {
		f.mu.Unlock()
		return
	}

	f.lastCall = now
	f.loading = true
	f.reqID++
	id := f.reqID
	cursor := f.cursor
	f.mu.Unlock()

	query := url.Values{}
	if cursor != "" {
		query.Set("cursor", cursor)
	}
	query.Set("limit", strconv.Itoa(f.pageSize))

	page, err := RequestJSON[product.FeedPage](ctx, f.client, "/api/v1/products?"+query.Encode(), RequestOptions{})

	f.mu.Lock()
	defer f.mu.Unlock()

	// устаревший ответ не должен перезаписать результат более нового
	if id != f.reqID {
		return
	}
	f.loading = false

	if err != nil {
		if ctx.Err() != nil {
			// отмененный запрос не меняет состояние
			return
		}
		if IsStatus(err, http.StatusTooManyRequests) {
			// лимит запросов терминален для текущей сессии ленты
			f.stopped = true
			f.errMsg = "Слишком много запросов, попробуйте позже"
			return
		}
		f.errMsg = fmt.Sprintf("Не удалось загрузить товары: %v", err)
		f.log.Warn("загрузка ленты не удалась", "error", err)
		return
	}

	if len(page.Items) == 0 {
		f.stopped = true
		return
	}

	f.items = append(f.items, page.Items...)
	f.cursor = page.Items[len(page.Items)-1].ID
	f.errMsg = ""
}

// Items возвращает копию загруженных товаров.
func (f *FeedPager) Items() []product.Product {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := make([]product.Product, len(f.items))
	copy(out, f.items)
	return out
}

// Stopped сообщает, остановлена ли лента.
func (f *FeedPager) Stopped() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stopped
}

// Err возвращает сообщение последней ошибки.
func (f *FeedPager) Err() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.errMsg
}
