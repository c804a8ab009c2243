package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"gomarket/internal/domain/product"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrNoAddress       = errors.New("address not selected")
	ErrNoContact       = errors.New("contact not selected")
)

// Line — позиция корзины в запросе на оформление.
type Line struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type Servicer interface {
	// Checkout оформляет заказ. Цены берутся с витрины на момент
	// оформления, а не из клиентской корзины.
	Checkout(ctx context.Context, userID string, lines []Line, addressID, contactID string) (Order, error)
	List(ctx context.Context, userID string) ([]Order, error)
}

type Service struct {
	repo     Repository
	products product.Repository
	log      *slog.Logger
}

func NewService(repo Repository, products product.Repository, log *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		products: products,
		log:      log,
	}
}

func (s *Service) Checkout(ctx context.Context, userID string, lines []Line, addressID, contactID string) (Order, error) {
	switch {
	case len(lines) == 0:
		return Order{}, ErrEmptyCart
	case addressID == "":
		return Order{}, ErrNoAddress
	case contactID == "":
		return Order{}, ErrNoContact
	}

	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			return Order{}, fmt.Errorf("%w: %s", ErrInvalidQuantity, line.ProductID)
		}

		p, err := s.products.Find(ctx, line.ProductID)
		if err != nil {
			return Order{}, fmt.Errorf("товар %s: %w", line.ProductID, err)
		}

		items = append(items, Item{
			ProductID: p.ID,
			Title:     p.Title,
			Price:     p.Price,
			Quantity:  line.Quantity,
		})
	}

	o := Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		AddressID: addressID,
		ContactID: contactID,
		CreatedAt: time.Now(),
	}
	o.Total = o.CalcTotal()

	created, err := s.repo.Create(ctx, o)
	if err != nil {
		return Order{}, fmt.Errorf("сохранение заказа: %w", err)
	}

	s.log.Info("заказ оформлен", "order", created.ID, "user", userID, "total", created.Total)
	return created, nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Order, error) {
	return s.repo.List(ctx, userID)
}
