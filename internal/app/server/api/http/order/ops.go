package order

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) checkoutOp() huma.Operation {
	return huma.Operation{
		OperationID:   "orders-checkout",
		Method:        http.MethodPost,
		Path:          "/api/v1/orders",
		Summary:       "Оформление заказа",
		Tags:          []string{"orders"},
		DefaultStatus: http.StatusCreated,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "orders-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/orders",
		Summary:     "История заказов",
		Tags:        []string{"orders"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
