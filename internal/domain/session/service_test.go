package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, userID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockRepository) Find(ctx context.Context, tokenHash string) (string, error) {
	args := m.Called(ctx, tokenHash)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func TestService_IssueAndValidate(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, "u1", mock.AnythingOfType("string"), mock.AnythingOfType("time.Time")).Return(nil)

	service := NewService(repo, "test-secret", slog.Default())

	pair, err := service.Issue(context.Background(), "u1")
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	userID, err := service.Validate(context.Background(), pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, "u1", userID)

	repo.AssertExpectations(t)
}

func TestService_Validate_WrongSecret(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, "u1", mock.Anything, mock.Anything).Return(nil)

	issuer := NewService(repo, "secret-a", slog.Default())
	verifier := NewService(repo, "secret-b", slog.Default())

	pair, err := issuer.Issue(context.Background(), "u1")
	require.NoError(t, err)

	_, err = verifier.Validate(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Refresh_RotatesToken(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Create", mock.Anything, "u1", mock.Anything, mock.Anything).Return(nil)

	service := NewService(repo, "test-secret", slog.Default())

	pair, err := service.Issue(context.Background(), "u1")
	require.NoError(t, err)

	// старый токен находится и удаляется, затем выпускается новая пара
	repo.On("Find", mock.Anything, hashToken(pair.RefreshToken)).Return("u1", nil)
	repo.On("Delete", mock.Anything, hashToken(pair.RefreshToken)).Return(nil)

	fresh, err := service.Refresh(context.Background(), pair.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, pair.RefreshToken, fresh.RefreshToken)

	repo.AssertExpectations(t)
}

func TestService_Refresh_UnknownToken(t *testing.T) {
	repo := new(MockRepository)
	repo.On("Find", mock.Anything, mock.AnythingOfType("string")).Return("", ErrInvalidToken)

	service := NewService(repo, "test-secret", slog.Default())

	_, err := service.Refresh(context.Background(), "garbage")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
