package address

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "addresses-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/addresses",
		Summary:     "Адреса доставки пользователя",
		Tags:        []string{"addresses"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID: "addresses-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/addresses",
		Summary:     "Создание адреса",
		Tags:        []string{"addresses"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "addresses-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/addresses/{id}",
		Summary:     "Обновление адреса",
		Tags:        []string{"addresses"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "addresses-delete",
		Method:        http.MethodDelete,
		Path:          "/api/v1/addresses/{id}",
		Summary:       "Удаление адреса",
		Tags:          []string{"addresses"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}

func (h *Handler) getDefaultOp() huma.Operation {
	return huma.Operation{
		OperationID: "addresses-get-default",
		Method:      http.MethodGet,
		Path:        "/api/v1/addresses/default",
		Summary:     "Адрес по умолчанию",
		Description: "404, если адрес по умолчанию еще не выбран.",
		Tags:        []string{"addresses"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) setDefaultOp() huma.Operation {
	return huma.Operation{
		OperationID:   "addresses-set-default",
		Method:        http.MethodPut,
		Path:          "/api/v1/addresses/default",
		Summary:       "Выбор адреса по умолчанию",
		Tags:          []string{"addresses"},
		DefaultStatus: http.StatusNoContent,
		Security:      []map[string][]string{{"bearer": {}}},
		Middlewares:   h.protected,
	}
}
