package session

import (
	"context"
	"time"
)

// Repository хранит refresh-токены (только их sha256-хэши).
type Repository interface {
	Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error
	// Find возвращает userID по хэшу действующего refresh-токена.
	Find(ctx context.Context, tokenHash string) (string, error)
	Delete(ctx context.Context, tokenHash string) error
}
