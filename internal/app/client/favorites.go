package client

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/exp/slog"

	"gomarket/internal/domain/product"
)

// FavoritesStore — избранное с оптимистичным переключением: локальное
// состояние меняется сразу, при ошибке удаленного вызова откатывается
// к снапшоту до переключения. У каждого товара своя отмена: быстрые
// повторные переключения одного товара отменяют предыдущий запрос
// вместо гонки двух записей.
type FavoritesStore struct {
	client *Client
	log    *slog.Logger

	mu       sync.Mutex
	items    []product.Summary
	inflight map[string]context.CancelFunc
	errMsg   string
}

func NewFavoritesStore(c *Client, log *slog.Logger) *FavoritesStore {
	return &FavoritesStore{
		client:   c,
		log:      log,
		inflight: make(map[string]context.CancelFunc),
	}
}

// Load загружает список избранного с сервера.
func (s *FavoritesStore) Load(ctx context.Context) error {
	items, err := RequestJSON[[]product.Summary](ctx, s.client, "/api/v1/favorites", RequestOptions{})
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.errMsg = ""
	s.mu.Unlock()

	return nil
}

// Toggle переключает членство товара в избранном.
// Добавление ставит товар в голову списка до подтверждения сервера.
func (s *FavoritesStore) Toggle(ctx context.Context, p product.Summary) {
	s.mu.Lock()

	snapshot := make([]product.Summary, len(s.items))
	copy(snapshot, s.items)

	adding := true
	filtered := s.items[:0]
	for _, item := range s.items {
		if item.ID == p.ID {
			adding = false
			continue
		}
		filtered = append(filtered, item)
	}
	if adding {
		s.items = append([]product.Summary{p}, s.items...)
	} else {
		s.items = filtered
	}

	// отменяем предыдущий незавершенный запрос по этому же товару
	if cancel, ok := s.inflight[p.ID]; ok {
		cancel()
	}
	callCtx, cancel := context.WithCancel(ctx)
	s.inflight[p.ID] = cancel
	s.mu.Unlock()

	var err error
	if adding {
		_, err = s.client.Request(callCtx, "/api/v1/favorites", RequestOptions{
			Method: http.MethodPost,
			Body:   map[string]string{"productId": p.ID},
		})
	} else {
		_, err = s.client.Request(callCtx, "/api/v1/favorites/"+p.ID, RequestOptions{
			Method: http.MethodDelete,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if callCtx.Err() != nil {
		// запрос вытеснен более новым переключением — не откатываем
		return
	}
	delete(s.inflight, p.ID)
	cancel()

	if err != nil {
		s.items = snapshot
		s.errMsg = "Не удалось обновить избранное"
		s.log.Warn("переключение избранного не удалось", "product", p.ID, "error", err)
		return
	}

	s.errMsg = ""
}

// Items возвращает копию списка избранного.
func (s *FavoritesStore) Items() []product.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]product.Summary, len(s.items))
	copy(out, s.items)
	return out
}

// Contains сообщает о членстве товара в избранном.
func (s *FavoritesStore) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == productID {
			return true
		}
	}
	return false
}

// Err возвращает сообщение последней ошибки.
func (s *FavoritesStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.errMsg
}
