package product

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gomarket/internal/app/server/api/http/middleware/auth"
	"gomarket/internal/domain/product"
)

type Handler struct {
	service    product.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
	protected  huma.Middlewares
}

func NewHandler(service product.Servicer, log *slog.Logger, middleware, protected huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: middleware,
		protected:  protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.feedOp(), h.feed)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.favoritesOp(), h.favorites)
	huma.Register(api, h.addFavoriteOp(), h.addFavorite)
	huma.Register(api, h.removeFavoriteOp(), h.removeFavorite)
}

func (h *Handler) feed(ctx context.Context, input *feedInput) (*feedOutput, error) {
	page, err := h.service.Feed(ctx, input.Cursor, input.Limit)
	if err != nil {
		return nil, err
	}

	return &feedOutput{Body: page}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	p, err := h.service.Get(ctx, input.ID)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, huma.Error404NotFound("товар не найден")
		}
		return nil, err
	}

	return &getOutput{Body: p}, nil
}

func (h *Handler) favorites(ctx context.Context, _ *struct{}) (*favoritesOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	items, err := h.service.Favorites(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &favoritesOutput{Body: items}, nil
}

func (h *Handler) addFavorite(ctx context.Context, input *addFavoriteInput) (*struct{}, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.AddFavorite(ctx, userID, input.Body.ProductID); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			return nil, huma.Error404NotFound("товар не найден")
		}
		return nil, err
	}

	return &struct{}{}, nil
}

func (h *Handler) removeFavorite(ctx context.Context, input *removeFavoriteInput) (*struct{}, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.RemoveFavorite(ctx, userID, input.ID); err != nil {
		return nil, err
	}

	return &struct{}{}, nil
}
