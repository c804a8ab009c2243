package product

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

func (m *MockRepository) ListAfter(ctx context.Context, cursor string, limit int) ([]Product, error) {
	args := m.Called(ctx, cursor, limit)
	return args.Get(0).([]Product), args.Error(1)
}

func (m *MockRepository) Find(ctx context.Context, id string) (Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(Product), args.Error(1)
}

func (m *MockRepository) ListFavorites(ctx context.Context, userID string) ([]Summary, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]Summary), args.Error(1)
}

func (m *MockRepository) AddFavorite(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func (m *MockRepository) RemoveFavorite(ctx context.Context, userID, productID string) error {
	return m.Called(ctx, userID, productID).Error(0)
}

func TestService_Feed_FullPageCarriesCursor(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAfter", mock.Anything, "", 2).
		Return([]Product{{ID: "p1"}, {ID: "p2"}}, nil)

	service := NewService(repo, slog.Default())

	page, err := service.Feed(context.Background(), "", 2)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, "p2", page.NextCursor)
}

func TestService_Feed_ShortPageEndsFeed(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAfter", mock.Anything, "p2", 5).
		Return([]Product{{ID: "p3"}}, nil)

	service := NewService(repo, slog.Default())

	page, err := service.Feed(context.Background(), "p2", 5)
	require.NoError(t, err)

	assert.Len(t, page.Items, 1)
	assert.Empty(t, page.NextCursor)
}

func TestService_Feed_ClampsLimit(t *testing.T) {
	repo := new(MockRepository)
	repo.On("ListAfter", mock.Anything, "", DefaultPageSize).Return([]Product{}, nil)
	repo.On("ListAfter", mock.Anything, "", MaxPageSize).Return([]Product{}, nil)

	service := NewService(repo, slog.Default())

	_, err := service.Feed(context.Background(), "", 0)
	require.NoError(t, err)
	_, err = service.Feed(context.Background(), "", 10000)
	require.NoError(t, err)

	repo.AssertExpectations(t)
}

func TestService_AddFavorite_RejectsUnknownProduct(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", mock.Anything, "ghost").Return(Product{}, ErrNotFound)

	service := NewService(repo, slog.Default())

	err := service.AddFavorite(context.Background(), "u1", "ghost")
	assert.ErrorIs(t, err, ErrNotFound)
	repo.AssertNotCalled(t, "AddFavorite", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_AddFavorite(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", mock.Anything, "p1").Return(Product{ID: "p1"}, nil)
	repo.On("AddFavorite", mock.Anything, "u1", "p1").Return(nil)

	service := NewService(repo, slog.Default())

	require.NoError(t, service.AddFavorite(context.Background(), "u1", "p1"))
	repo.AssertExpectations(t)
}
