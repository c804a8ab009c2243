package order

import (
	"context"
	"time"
)

// Item — позиция заказа: снапшот цены на момент оформления.
type Item struct {
	ProductID string `json:"productId"`
	Title     string `json:"title"`
	Price     int    `json:"price"`
	Quantity  int    `json:"quantity"`
}

type Order struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Items     []Item    `json:"items"`
	AddressID string    `json:"addressId"`
	ContactID string    `json:"contactId"`
	Total     int       `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// Total суммирует позиции: Σ price × quantity.
func (o Order) CalcTotal() int {
	total := 0
	for _, it := range o.Items {
		total += it.Price * it.Quantity
	}
	return total
}

type Repository interface {
	Create(ctx context.Context, o Order) (Order, error)
	List(ctx context.Context, userID string) ([]Order, error)
}
