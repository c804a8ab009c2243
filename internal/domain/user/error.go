package user

import "errors"

var (
	ErrNotFound     = errors.New("user not found")
	ErrInvalidAuth  = errors.New("invalid credentials")
	ErrInvalidInput = errors.New("invalid input")
	ErrEmailTaken   = errors.New("email already registered")
	// ErrContactExists — попытка создать контакт с уже существующим
	// (после нормализации) телефоном.
	ErrContactExists = errors.New("contact already exists")
)

// Коды доменных ошибок, по которым клиент ветвит поведение UI.
const (
	CodeContactExists = "contact_exists"
	CodeEmailTaken    = "email_taken"
)
