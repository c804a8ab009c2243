package client

import (
	"context"
	"net/http"

	"golang.org/x/exp/slog"

	"gomarket/internal/domain/order"
)

// OrderStore оформляет заказы и читает их историю. Локального
// состояния у него нет: заказ — серверная сущность, корзину после
// успешного оформления чистит вызывающая сторона.
type OrderStore struct {
	client *Client
	log    *slog.Logger
}

func NewOrderStore(c *Client, log *slog.Logger) *OrderStore {
	return &OrderStore{
		client: c,
		log:    log,
	}
}

// Submit отправляет заказ. Позиции несут только productId и
// количество: итог сервер считает по ценам витрины.
func (s *OrderStore) Submit(ctx context.Context, lines []order.Line, addressID, contactID string) (order.Order, error) {
	created, err := RequestJSON[order.Order](ctx, s.client, "/api/v1/orders", RequestOptions{
		Method: http.MethodPost,
		Body: map[string]any{
			"items":     lines,
			"addressId": addressID,
			"contactId": contactID,
		},
	})
	if err != nil {
		return order.Order{}, err
	}

	s.log.Info("заказ оформлен", "order", created.ID, "total", created.Total)
	return created, nil
}

func (s *OrderStore) History(ctx context.Context) ([]order.Order, error) {
	return RequestJSON[[]order.Order](ctx, s.client, "/api/v1/orders", RequestOptions{})
}
