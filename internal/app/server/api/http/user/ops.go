package user

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) registerOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-register",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/register",
		Summary:     "Регистрация пользователя",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) loginOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-login",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/login",
		Summary:     "Авторизация пользователя",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) refreshOp() huma.Operation {
	return huma.Operation{
		OperationID: "auth-refresh",
		Method:      http.MethodPost,
		Path:        "/api/v1/auth/refresh",
		Summary:     "Ротация refresh-токена и выпуск нового access-токена",
		Tags:        []string{"auth"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) logoutOp() huma.Operation {
	return huma.Operation{
		OperationID:   "auth-logout",
		Method:        http.MethodPost,
		Path:          "/api/v1/auth/logout",
		Summary:       "Завершение сессии",
		Tags:          []string{"auth"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) profileOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-get",
		Method:      http.MethodGet,
		Path:        "/api/v1/profile",
		Summary:     "Профиль текущего пользователя",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) patchProfileOp() huma.Operation {
	return huma.Operation{
		OperationID: "profile-patch",
		Method:      http.MethodPatch,
		Path:        "/api/v1/profile",
		Summary:     "Частичное обновление профиля",
		Description: "Отсутствующее в теле поле не меняется.",
		Tags:        []string{"profile"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) listContactsOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/contacts",
		Summary:     "Контакты получателя",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) createContactOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-create",
		Method:      http.MethodPost,
		Path:        "/api/v1/contacts",
		Summary:     "Создание контакта",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}

func (h *Handler) updateContactOp() huma.Operation {
	return huma.Operation{
		OperationID: "contacts-update",
		Method:      http.MethodPut,
		Path:        "/api/v1/contacts/{id}",
		Summary:     "Обновление контакта",
		Tags:        []string{"contacts"},
		Security:    []map[string][]string{{"bearer": {}}},
		Middlewares: h.protected,
	}
}
