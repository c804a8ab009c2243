package order

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gomarket/internal/app/server/api/http/middleware/auth"
	"gomarket/internal/domain/order"
	"gomarket/internal/domain/product"
)

type Handler struct {
	service   order.Servicer
	log       *slog.Logger
	protected huma.Middlewares
}

func NewHandler(service order.Servicer, log *slog.Logger, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.checkoutOp(), h.checkout)
	huma.Register(api, h.listOp(), h.list)
}

func (h *Handler) checkout(ctx context.Context, input *checkoutInput) (*orderOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	created, err := h.service.Checkout(ctx, userID, input.Body.Items, input.Body.AddressID, input.Body.ContactID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyCart),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrNoAddress),
			errors.Is(err, order.ErrNoContact):
			return nil, huma.Error422UnprocessableEntity(err.Error())
		case errors.Is(err, product.ErrNotFound):
			return nil, huma.Error404NotFound("товар не найден")
		default:
			return nil, err
		}
	}

	return &orderOutput{Body: created}, nil
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	orders, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: orders}, nil
}
