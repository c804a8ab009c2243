package apierror

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
)

// Error — единая форма ошибки API: {"message": ..., "error": {"code": ...}}.
// Клиенты ветвят поведение по коду, сообщение показывается как есть.
type Error struct {
	status  int
	Message string  `json:"message"`
	Detail  *Detail `json:"error,omitempty"`
}

type Detail struct {
	Code string `json:"code,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) GetStatus() int {
	return e.status
}

func New(status int, message string) *Error {
	return &Error{status: status, Message: message}
}

// WithCode создает ошибку с доменным кодом.
func WithCode(status int, message, code string) *Error {
	return &Error{
		status:  status,
		Message: message,
		Detail:  &Detail{Code: code},
	}
}

// Install подменяет конструктор ошибок huma: все ошибки API, включая
// ошибки валидации, уходят клиенту в единой форме.
func Install() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		e := &Error{status: status, Message: message}
		for _, err := range errs {
			var coded *Error
			if errors.As(err, &coded) && coded.Detail != nil {
				e.Detail = coded.Detail
				break
			}
		}
		return e
	}
}
