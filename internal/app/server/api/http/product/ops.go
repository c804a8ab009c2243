package product

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) feedOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-feed",
		Method:      http.MethodGet,
		Path:        "/api/v1/products",
		Summary:     "Курсорная лента товаров",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "products-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/products/{id}",
		Summary:     "Карточка товара",
		Tags:        []string{"products"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) favoritesOp() huma.Operation {
	return huma.Operation{
		OperationID: "favorites-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/favorites",
		Summary:     "Список избранного",
		Tags:        []string{"favorites"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) addFavoriteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "favorites-add",
		Method:        http.MethodPost,
		Path:          "/api/v1/favorites",
		Summary:       "Добавление товара в избранное",
		Description:   "Повторное добавление того же товара не ошибка.",
		Tags:          []string{"favorites"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) removeFavoriteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "favorites-remove",
		Method:        http.MethodDelete,
		Path:          "/api/v1/favorites/{id}",
		Summary:       "Удаление товара из избранного",
		Tags:          []string{"favorites"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}
