package address

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("address not found")
	// ErrNoDefault — у пользователя не выбран адрес по умолчанию.
	ErrNoDefault = errors.New("default address not set")
)

// Repository — адреса и указатель на адрес по умолчанию.
type Repository interface {
	List(ctx context.Context, userID string) ([]Address, error)
	Create(ctx context.Context, a Address) (Address, error)
	Update(ctx context.Context, a Address) (Address, error)
	Delete(ctx context.Context, userID, id string) error

	GetDefault(ctx context.Context, userID string) (string, error)
	SetDefault(ctx context.Context, userID, addressID string) error
}
