package postgres

import (
	"context"

	"golang.org/x/exp/slog"

	"gomarket/internal/domain/order"
)

type OrderRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewOrderRepository(db *Storage, log *slog.Logger) *OrderRepository {
	return &OrderRepository{
		db:  db,
		log: log,
	}
}

// Create сохраняет заказ. Позиции лежат в jsonb: это снапшот цен
// на момент оформления, по ним не ищут и не джойнят.
func (r *OrderRepository) Create(ctx context.Context, o order.Order) (order.Order, error) {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO orders (id, user_id, items, address_id, contact_id, total, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		o.ID, o.UserID, o.Items, o.AddressID, o.ContactID, o.Total, o.CreatedAt)
	if err != nil {
		return order.Order{}, err
	}
	return o, nil
}

func (r *OrderRepository) List(ctx context.Context, userID string) ([]order.Order, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, items, address_id, contact_id, total, created_at
         FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(&o.ID, &o.UserID, &o.Items, &o.AddressID, &o.ContactID, &o.Total, &o.CreatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}
