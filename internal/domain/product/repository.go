package product

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("product not found")

// Repository — витрина товаров и избранное.
type Repository interface {
	// ListAfter возвращает страницу товаров после курсора
	// (id последнего увиденного товара).
	ListAfter(ctx context.Context, cursor string, limit int) ([]Product, error)
	Find(ctx context.Context, id string) (Product, error)

	ListFavorites(ctx context.Context, userID string) ([]Summary, error)
	AddFavorite(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error
}
