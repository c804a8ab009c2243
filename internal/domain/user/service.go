package user

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/exp/slog"
)

// Servicer — операции над пользователями и их контактами.
type Servicer interface {
	Register(ctx context.Context, email, password, name, phone string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
	Find(ctx context.Context, id string) (User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (User, error)

	ListContacts(ctx context.Context, userID string) ([]Contact, error)
	CreateContact(ctx context.Context, userID, name, phone, email string) (Contact, error)
	UpdateContact(ctx context.Context, userID, id, name, phone, email string) (Contact, error)
}

// ProfilePatch — частичное обновление профиля. nil-поле не меняется,
// чтобы PATCH не затирал незатронутые поля.
type ProfilePatch struct {
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	LegacyAddress *string `json:"legacyAddress,omitempty"`
}

type Service struct {
	repo      Repository
	validator Validator
	log       *slog.Logger
}

func NewService(repo Repository, validator Validator, log *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		validator: validator,
		log:       log,
	}
}

func (s *Service) Register(ctx context.Context, email, password, name, phone string) (User, error) {
	if err := s.validator.ValidateRegister(email, password); err != nil {
		s.log.Debug("валидация регистрации не пройдена", "email", email, "error", err)
		return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("хэш пароля: %w", err)
	}

	u := User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Phone:     NormalizePhone(phone),
		Password:  string(hash),
		CreatedAt: time.Now(),
	}

	return s.repo.Create(ctx, u)
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return User{}, ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return User{}, ErrInvalidAuth
	}

	return u, nil
}

func (s *Service) Find(ctx context.Context, id string) (User, error) {
	return s.repo.FindByID(ctx, id)
}

// UpdateProfile сливает переданные поля в профиль, не трогая остальные.
func (s *Service) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (User, error) {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return User{}, ErrNotFound
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Phone != nil {
		if err := s.validator.ValidatePhone(*patch.Phone); err != nil {
			return User{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		u.Phone = NormalizePhone(*patch.Phone)
	}
	if patch.LegacyAddress != nil {
		u.LegacyAddress = *patch.LegacyAddress
	}

	return s.repo.Update(ctx, u)
}

func (s *Service) ListContacts(ctx context.Context, userID string) ([]Contact, error) {
	return s.repo.ListContacts(ctx, userID)
}

func (s *Service) CreateContact(ctx context.Context, userID, name, phone, email string) (Contact, error) {
	if err := s.validator.ValidatePhone(phone); err != nil {
		return Contact{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	normalized := NormalizePhone(phone)
	if _, err := s.repo.FindContactByPhone(ctx, userID, normalized); err == nil {
		return Contact{}, ErrContactExists
	}

	c := Contact{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Phone:     normalized,
		Email:     email,
		CreatedAt: time.Now(),
	}

	return s.repo.CreateContact(ctx, c)
}

func (s *Service) UpdateContact(ctx context.Context, userID, id, name, phone, email string) (Contact, error) {
	if err := s.validator.ValidatePhone(phone); err != nil {
		return Contact{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	contacts, err := s.repo.ListContacts(ctx, userID)
	if err != nil {
		return Contact{}, err
	}

	for _, c := range contacts {
		if c.ID == id {
			c.Name = name
			c.Phone = NormalizePhone(phone)
			c.Email = email
			return s.repo.UpdateContact(ctx, c)
		}
	}

	return Contact{}, ErrNotFound
}
