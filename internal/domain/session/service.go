package session

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/exp/slog"
)

const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 30 * 24 * time.Hour

	// RefreshCookieName — имя HTTP-only cookie с refresh-токеном.
	RefreshCookieName = "refresh_token"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpired      = errors.New("token expired")
)

// Servicer выпускает и проверяет пару токенов: короткоживущий
// JWT access-токен и долгоживущий opaque refresh-токен в cookie.
type Servicer interface {
	// Issue создает новую пару токенов для пользователя.
	Issue(ctx context.Context, userID string) (TokenPair, error)
	// Refresh ротирует refresh-токен и выпускает новый access-токен.
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
	// Validate проверяет access-токен и возвращает userID.
	Validate(ctx context.Context, accessToken string) (string, error)
	// Revoke отзывает refresh-токен (logout).
	Revoke(ctx context.Context, refreshToken string) error
}

type TokenPair struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
}

type Service struct {
	repo   Repository
	secret []byte
	log    *slog.Logger
}

func NewService(repo Repository, secret string, log *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		secret: []byte(secret),
		log:    log,
	}
}

func (s *Service) Issue(ctx context.Context, userID string) (TokenPair, error) {
	access, err := s.signAccessToken(userID)
	if err != nil {
		return TokenPair{}, fmt.Errorf("подпись access-токена: %w", err)
	}

	refresh, expiresAt, err := s.createRefreshToken(ctx, userID)
	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: expiresAt,
	}, nil
}

// Refresh проверяет старый refresh-токен, удаляет его и выпускает
// новую пару. Ротация: один refresh-токен действует ровно один раз.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	hash := hashToken(refreshToken)

	userID, err := s.repo.Find(ctx, hash)
	if err != nil {
		return TokenPair{}, ErrInvalidToken
	}

	if err := s.repo.Delete(ctx, hash); err != nil {
		s.log.Warn("не удалось удалить использованный refresh-токен", "error", err)
	}

	return s.Issue(ctx, userID)
}

func (s *Service) Validate(_ context.Context, accessToken string) (string, error) {
	claims := jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(accessToken, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("неожиданный метод подписи: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalidToken
	}
	if !token.Valid || claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

func (s *Service) Revoke(ctx context.Context, refreshToken string) error {
	return s.repo.Delete(ctx, hashToken(refreshToken))
}

func (s *Service) signAccessToken(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(AccessTokenTTL)),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *Service) createRefreshToken(ctx context.Context, userID string) (string, time.Time, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", time.Time{}, fmt.Errorf("генерация refresh-токена: %w", err)
	}

	token := base64.URLEncoding.EncodeToString(tokenBytes)
	expiresAt := time.Now().Add(RefreshTokenTTL)

	if err := s.repo.Create(ctx, userID, hashToken(token), expiresAt); err != nil {
		return "", time.Time{}, fmt.Errorf("сохранение refresh-токена: %w", err)
	}

	return token, expiresAt, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
