package client

import (
	"context"
	"net/http"
	"sync"

	"golang.org/x/exp/slog"

	"gomarket/internal/domain/user"
)

// Session — сессия пользователя. Либо полностью присутствует
// (и user, и token), либо полностью отсутствует; частичных
// состояний не бывает.
type Session struct {
	Token string     `json:"token"`
	User  *user.User `json:"user"`
}

func (s Session) Authenticated() bool {
	return s.Token != "" && s.User != nil
}

type authResponse struct {
	User        user.User `json:"user"`
	AccessToken string    `json:"accessToken"`
}

// SessionStore владеет сессией: хранит пользователя и токен,
// гидрируется из локального хранилища на старте и по сигналу
// принудительного разлогина от HTTP-клиента.
type SessionStore struct {
	mu      sync.RWMutex
	client  *Client
	store   *Store
	log     *slog.Logger
	session Session
}

func NewSessionStore(c *Client, store *Store, log *slog.Logger) *SessionStore {
	s := &SessionStore{
		client: c,
		store:  store,
		log:    log,
	}

	// HTTP-клиент только сигналит — сессию чистит ее владелец
	c.OnForcedLogout(func() {
		s.clearLocal()
		s.log.Info("сессия принудительно завершена")
	})

	return s
}

// Hydrate перечитывает сохраненную сессию в состояние.
// Вызывается один раз на старте приложения.
func (s *SessionStore) Hydrate() {
	session := Load(s.store, keySession, Session{})
	if !session.Authenticated() {
		// не допускаем частичной сессии
		session = Session{}
	}

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.client.SetToken(session.Token)
}

// Current возвращает текущую сессию.
func (s *SessionStore) Current() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}

// Login выполняет вход и атомарно заменяет user/token из ответа сервера.
func (s *SessionStore) Login(ctx context.Context, email, password string) error {
	resp, err := RequestJSON[authResponse](ctx, s.client, "/api/v1/auth/login", RequestOptions{
		Method: http.MethodPost,
		Body:   map[string]string{"email": email, "password": password},
	})
	if err != nil {
		return err
	}

	s.apply(resp)
	s.log.Info("вход выполнен", "email", email)
	return nil
}

// Register регистрирует пользователя и сразу авторизует его.
func (s *SessionStore) Register(ctx context.Context, email, password, name, phone string) error {
	resp, err := RequestJSON[authResponse](ctx, s.client, "/api/v1/auth/register", RequestOptions{
		Method: http.MethodPost,
		Body: map[string]string{
			"email":    email,
			"password": password,
			"name":     name,
			"phone":    phone,
		},
	})
	if err != nil {
		return err
	}

	s.apply(resp)
	s.log.Info("пользователь зарегистрирован", "email", email)
	return nil
}

// UpdateProfile сливает возвращенные сервером поля в текущего
// пользователя, не теряя незатронутые.
func (s *SessionStore) UpdateProfile(ctx context.Context, patch user.ProfilePatch) error {
	updated, err := RequestJSON[user.User](ctx, s.client, "/api/v1/profile", RequestOptions{
		Method: http.MethodPatch,
		Body:   patch,
	})
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.session.User != nil {
		merged := *s.session.User
		merged.Name = updated.Name
		merged.Phone = updated.Phone
		merged.LegacyAddress = updated.LegacyAddress
		s.session.User = &merged
		Save(s.store, keySession, s.session)
	}
	s.mu.Unlock()

	return nil
}

// Logout завершает сессию. Локальное состояние чистится всегда,
// даже если удаленный вызов не удался.
func (s *SessionStore) Logout(ctx context.Context) {
	if _, err := s.client.Request(ctx, "/api/v1/auth/logout", RequestOptions{
		Method:  http.MethodPost,
		noRetry: true,
	}); err != nil {
		s.log.Warn("удаленный logout не удался, чистим локально", "error", err)
	}

	s.clearLocal()
}

func (s *SessionStore) apply(resp authResponse) {
	u := resp.User

	s.mu.Lock()
	s.session = Session{Token: resp.AccessToken, User: &u}
	Save(s.store, keySession, s.session)
	s.mu.Unlock()

	s.client.SetToken(resp.AccessToken)
}

func (s *SessionStore) clearLocal() {
	s.mu.Lock()
	s.session = Session{}
	s.store.Remove(keySession)
	s.mu.Unlock()

	s.client.SetToken("")
}
