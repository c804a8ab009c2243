package user

import (
	"fmt"
	"strings"
)

const (
	MinPasswordLen = 6
	MaxPasswordLen = 64
)

// Validator — интерфейс валидации пользовательских данных.
type Validator interface {
	ValidateRegister(email, password string) error
	ValidateEmail(email string) error
	ValidatePhone(phone string) error
}

type FormValidator struct{}

func NewFormValidator() *FormValidator {
	return &FormValidator{}
}

// ValidateRegister валидирует данные для регистрации.
func (v *FormValidator) ValidateRegister(email, password string) error {
	if err := v.ValidateEmail(email); err != nil {
		return err
	}
	if len(password) < MinPasswordLen {
		return fmt.Errorf("пароль должен быть не короче %d символов", MinPasswordLen)
	}
	if len(password) > MaxPasswordLen {
		return fmt.Errorf("пароль должен быть не длиннее %d символов", MaxPasswordLen)
	}
	return nil
}

func (v *FormValidator) ValidateEmail(email string) error {
	at := strings.Index(email, "@")
	if at < 1 || at == len(email)-1 || !strings.Contains(email[at:], ".") {
		return fmt.Errorf("некорректный email: %q", email)
	}
	return nil
}

// ValidatePhone принимает телефон в любом виде, который нормализуется
// в канонические 11 цифр с ведущей семеркой.
func (v *FormValidator) ValidatePhone(phone string) error {
	normalized := NormalizePhone(phone)
	if len(normalized) != 11 || normalized[0] != '7' {
		return fmt.Errorf("некорректный номер телефона: %q", phone)
	}
	return nil
}
