package product

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Servicer — витрина и избранное.
type Servicer interface {
	// Feed возвращает страницу ленты после курсора. NextCursor пуст
	// на последней странице.
	Feed(ctx context.Context, cursor string, limit int) (FeedPage, error)
	Get(ctx context.Context, productID string) (Product, error)
	Favorites(ctx context.Context, userID string) ([]Summary, error)
	AddFavorite(ctx context.Context, userID, productID string) error
	RemoveFavorite(ctx context.Context, userID, productID string) error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log,
	}
}

func (s *Service) Feed(ctx context.Context, cursor string, limit int) (FeedPage, error) {
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	items, err := s.repo.ListAfter(ctx, cursor, limit)
	if err != nil {
		return FeedPage{}, fmt.Errorf("лента товаров: %w", err)
	}

	page := FeedPage{Items: items}
	if len(items) == limit {
		page.NextCursor = items[len(items)-1].ID
	}
	return page, nil
}

func (s *Service) Get(ctx context.Context, productID string) (Product, error) {
	return s.repo.Find(ctx, productID)
}

func (s *Service) Favorites(ctx context.Context, userID string) ([]Summary, error) {
	return s.repo.ListFavorites(ctx, userID)
}

// AddFavorite проверяет, что товар существует: избранное не должно
// копить битые ссылки.
func (s *Service) AddFavorite(ctx context.Context, userID, productID string) error {
	if _, err := s.repo.Find(ctx, productID); err != nil {
		return err
	}
	return s.repo.AddFavorite(ctx, userID, productID)
}

func (s *Service) RemoveFavorite(ctx context.Context, userID, productID string) error {
	return s.repo.RemoveFavorite(ctx, userID, productID)
}
