package address

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

var ErrInvalidInput = errors.New("invalid address")

// Servicer — адреса доставки и указатель по умолчанию.
type Servicer interface {
	List(ctx context.Context, userID string) ([]Address, error)
	Create(ctx context.Context, userID string, a Address) (Address, error)
	Update(ctx context.Context, userID string, a Address) (Address, error)
	Delete(ctx context.Context, userID, id string) error

	GetDefault(ctx context.Context, userID string) (string, error)
	SetDefault(ctx context.Context, userID, addressID string) error
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

func (s *Service) List(ctx context.Context, userID string) ([]Address, error) {
	return s.repo.List(ctx, userID)
}

func (s *Service) Create(ctx context.Context, userID string, a Address) (Address, error) {
	if a.AddressText == "" {
		return Address{}, fmt.Errorf("%w: пустой текст адреса", ErrInvalidInput)
	}

	a.ID = uuid.NewString()
	a.UserID = userID
	a.CreatedAt = time.Now()

	return s.repo.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, userID string, a Address) (Address, error) {
	if a.AddressText == "" {
		return Address{}, fmt.Errorf("%w: пустой текст адреса", ErrInvalidInput)
	}

	a.UserID = userID
	return s.repo.Update(ctx, a)
}

// Delete удаляет адрес. Если он был выбран по умолчанию, указатель
// исчезает вместе с ним, и новый дефолт выберет следующая загрузка.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.Delete(ctx, userID, id)
}

func (s *Service) GetDefault(ctx context.Context, userID string) (string, error) {
	return s.repo.GetDefault(ctx, userID)
}

// SetDefault проверяет принадлежность адреса пользователю: нельзя
// выбрать чужой или несуществующий адрес.
func (s *Service) SetDefault(ctx context.Context, userID, addressID string) error {
	addresses, err := s.repo.List(ctx, userID)
	if err != nil {
		return err
	}

	for _, a := range addresses {
		if a.ID == addressID {
			return s.repo.SetDefault(ctx, userID, addressID)
		}
	}
	return ErrNotFound
}
