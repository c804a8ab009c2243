package address

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context, userID string) ([]Address, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Address), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, a Address) (Address, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(Address), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, a Address) (Address, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(Address), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, userID, id string) error {
	return m.Called(ctx, userID, id).Error(0)
}

func (m *MockRepository) GetDefault(ctx context.Context, userID string) (string, error) {
	args := m.Called(ctx, userID)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) SetDefault(ctx context.Context, userID, addressID string) error {
	return m.Called(ctx, userID, addressID).Error(0)
}

func TestService_Create_AssignsIdentity(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(a Address) bool {
		return a.ID != "" && a.UserID == "u1" && a.AddressText == "Тверская, 1"
	})).Return(Address{ID: "a1"}, nil)

	service := NewService(repo, slog.Default())

	created, err := service.Create(context.Background(), "u1", Address{AddressText: "Тверская, 1"})
	require.NoError(t, err)
	assert.Equal(t, "a1", created.ID)
	repo.AssertExpectations(t)
}

func TestService_Create_RejectsEmptyText(t *testing.T) {
	service := NewService(new(MockRepository), slog.Default())

	_, err := service.Create(context.Background(), "u1", Address{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_SetDefault_RejectsForeignAddress(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, "u1").
		Return([]Address{{ID: "a1", UserID: "u1"}}, nil)

	service := NewService(repo, slog.Default())

	// адрес другого пользователя нельзя назначить своим дефолтом
	err := service.SetDefault(context.Background(), "u1", "foreign")
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SetDefault(t *testing.T) {
	repo := new(MockRepository)
	repo.On("List", mock.Anything, "u1").
		Return([]Address{{ID: "a1", UserID: "u1"}}, nil)
	repo.On("SetDefault", mock.Anything, "u1", "a1").Return(nil)

	service := NewService(repo, slog.Default())

	require.NoError(t, service.SetDefault(context.Background(), "u1", "a1"))
	repo.AssertExpectations(t)
}
