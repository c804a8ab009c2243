package user

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gomarket/internal/app/server/api/http/apierror"
	"gomarket/internal/app/server/api/http/middleware/auth"
	"gomarket/internal/domain/session"
	"gomarket/internal/domain/user"
)

type Handler struct {
	service    user.Servicer
	session    session.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

func NewHandler(service user.Servicer, sessions session.Servicer, log *slog.Logger, middleware, protected huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		session:    sessions,
		log:        log,
		middleware: middleware,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.registerOp(), h.register)
	huma.Register(api, h.loginOp(), h.login)
	huma.Register(api, h.refreshOp(), h.refresh)
	huma.Register(api, h.logoutOp(), h.logout)

	huma.Register(api, h.profileOp(), h.profile)
	huma.Register(api, h.patchProfileOp(), h.patchProfile)

	huma.Register(api, h.listContactsOp(), h.listContacts)
	huma.Register(api, h.createContactOp(), h.createContact)
	huma.Register(api, h.updateContactOp(), h.updateContact)
}

func (h *Handler) register(ctx context.Context, input *registerInput) (*authOutput, error) {
	u, err := h.service.Register(ctx, input.Body.Email, input.Body.Password, input.Body.Name, input.Body.Phone)
	if err != nil {
		return nil, mapUserError(err)
	}

	return h.authOutput(ctx, u)
}

func (h *Handler) login(ctx context.Context, input *loginInput) (*authOutput, error) {
	u, err := h.service.Authenticate(ctx, input.Body.Email, input.Body.Password)
	if err != nil {
		return nil, mapUserError(err)
	}

	return h.authOutput(ctx, u)
}

func (h *Handler) authOutput(ctx context.Context, u user.User) (*authOutput, error) {
	pair, err := h.session.Issue(ctx, u.ID)
	if err != nil {
		h.log.Error("не удалось выпустить токены", "user", u.ID, "error", err)
		return nil, err
	}

	return &authOutput{
		SetCookie: refreshCookie(pair.RefreshToken, pair.RefreshExpiresAt),
		Body: AuthResponse{
			User:        u,
			AccessToken: pair.AccessToken,
		},
	}, nil
}

// refresh ротирует refresh-токен из cookie и выдает новый access-токен.
// Отсутствующий или невалидный токен — 401: клиент по нему завершает
// сессию.
func (h *Handler) refresh(ctx context.Context, input *refreshInput) (*refreshOutput, error) {
	token := input.RefreshToken.Value
	if token == "" {
		return nil, apierror.New(http.StatusUnauthorized, "refresh-токен отсутствует")
	}

	pair, err := h.session.Refresh(ctx, token)
	if err != nil {
		return nil, apierror.New(http.StatusUnauthorized, "refresh-токен недействителен")
	}

	return &refreshOutput{
		SetCookie: refreshCookie(pair.RefreshToken, pair.RefreshExpiresAt),
		Body:      RefreshResponse{AccessToken: pair.AccessToken},
	}, nil
}

func (h *Handler) logout(ctx context.Context, input *logoutInput) (*logoutOutput, error) {
	if token := input.RefreshToken.Value; token != "" {
		if err := h.session.Revoke(ctx, token); err != nil {
			h.log.Warn("не удалось отозвать refresh-токен", "error", err)
		}
	}

	return &logoutOutput{SetCookie: clearRefreshCookie()}, nil
}

func (h *Handler) profile(ctx context.Context, _ *struct{}) (*profileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.Find(ctx, userID)
	if err != nil {
		return nil, huma.Error404NotFound("пользователь не найден")
	}

	return &profileOutput{Body: u}, nil
}

func (h *Handler) patchProfile(ctx context.Context, input *patchProfileInput) (*profileOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	u, err := h.service.UpdateProfile(ctx, userID, input.Body)
	if err != nil {
		return nil, mapUserError(err)
	}

	return &profileOutput{Body: u}, nil
}

func (h *Handler) listContacts(ctx context.Context, _ *struct{}) (*listContactsOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	contacts, err := h.service.ListContacts(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listContactsOutput{Body: contacts}, nil
}

func (h *Handler) createContact(ctx context.Context, input *createContactInput) (*contactOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	c, err := h.service.CreateContact(ctx, userID, input.Body.Name, input.Body.Phone, input.Body.Email)
	if err != nil {
		return nil, mapUserError(err)
	}

	return &contactOutput{Body: c}, nil
}

func (h *Handler) updateContact(ctx context.Context, input *updateContactInput) (*contactOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	c, err := h.service.UpdateContact(ctx, userID, input.ID, input.Body.Name, input.Body.Phone, input.Body.Email)
	if err != nil {
		return nil, mapUserError(err)
	}

	return &contactOutput{Body: c}, nil
}

func mapUserError(err error) error {
	switch {
	case errors.Is(err, user.ErrEmailTaken):
		return apierror.WithCode(http.StatusConflict, "email уже зарегистрирован", user.CodeEmailTaken)
	case errors.Is(err, user.ErrContactExists):
		return apierror.WithCode(http.StatusConflict, "контакт уже существует", user.CodeContactExists)
	case errors.Is(err, user.ErrInvalidInput):
		return apierror.New(http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, user.ErrInvalidAuth), errors.Is(err, user.ErrNotFound):
		return apierror.New(http.StatusUnauthorized, "неверный email или пароль")
	default:
		return err
	}
}

func refreshCookie(token string, expires time.Time) http.Cookie {
	return http.Cookie{
		Name:     session.RefreshCookieName,
		Value:    token,
		Path:     "/api/v1/auth",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}

func clearRefreshCookie() http.Cookie {
	return http.Cookie{
		Name:     session.RefreshCookieName,
		Path:     "/api/v1/auth",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	}
}
