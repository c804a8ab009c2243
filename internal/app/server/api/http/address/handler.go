package address

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"gomarket/internal/app/server/api/http/middleware/auth"
	"gomarket/internal/domain/address"
)

type Handler struct {
	service   address.Servicer
	log       *slog.Logger
	protected huma.Middlewares
}

func NewHandler(service address.Servicer, log *slog.Logger, protected huma.Middlewares) *Handler {
	return &Handler{
		service:   service,
		log:       log,
		protected: protected,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)

	huma.Register(api, h.getDefaultOp(), h.getDefault)
	huma.Register(api, h.setDefaultOp(), h.setDefault)
}

func (h *Handler) list(ctx context.Context, _ *struct{}) (*listOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	addresses, err := h.service.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &listOutput{Body: addresses}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*addressOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	created, err := h.service.Create(ctx, userID, fromRequest(input.Body))
	if err != nil {
		return nil, mapAddressError(err)
	}

	return &addressOutput{Body: created}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*addressOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	a := fromRequest(input.Body)
	a.ID = input.ID

	updated, err := h.service.Update(ctx, userID, a)
	if err != nil {
		return nil, mapAddressError(err)
	}

	return &addressOutput{Body: updated}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*struct{}, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.Delete(ctx, userID, input.ID); err != nil {
		return nil, mapAddressError(err)
	}

	return &struct{}{}, nil
}

func (h *Handler) getDefault(ctx context.Context, _ *struct{}) (*defaultOutput, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	addressID, err := h.service.GetDefault(ctx, userID)
	if err != nil {
		if errors.Is(err, address.ErrNoDefault) {
			return nil, huma.Error404NotFound("адрес по умолчанию не выбран")
		}
		return nil, err
	}

	return &defaultOutput{Body: DefaultPointer{AddressID: addressID}}, nil
}

func (h *Handler) setDefault(ctx context.Context, input *setDefaultInput) (*struct{}, error) {
	userID, ok := auth.GetUserID(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Unauthorized")
	}

	if err := h.service.SetDefault(ctx, userID, input.Body.AddressID); err != nil {
		return nil, mapAddressError(err)
	}

	return &struct{}{}, nil
}

func fromRequest(r AddressRequest) address.Address {
	return address.Address{
		AddressText:    r.AddressText,
		Apartment:      r.Apartment,
		Floor:          r.Floor,
		Label:          r.Label,
		IsFavorite:     r.IsFavorite,
		CourierComment: r.CourierComment,
		Coords:         r.Coords,
	}
}

func mapAddressError(err error) error {
	switch {
	case errors.Is(err, address.ErrNotFound):
		return huma.Error404NotFound("адрес не найден")
	case errors.Is(err, address.ErrInvalidInput):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return err
	}
}
