package user

import "time"

// User — пользователь маркетплейса.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	// LegacyAddress — свободный текст адреса из старого профиля.
	// Координатор чекаута один раз создает из него структурированный адрес.
	LegacyAddress string    `json:"legacyAddress,omitempty"`
	Password      string    `json:"-"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Contact — контакт получателя заказа. Телефон хранится
// в нормализованном виде (см. NormalizePhone).
type Contact struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Equal сравнивает контакт со значениями формы после нормализации телефона.
// Нужен, чтобы не отправлять обновление, когда значения не менялись.
func (c Contact) Equal(name, phone, email string) bool {
	return c.Name == name &&
		NormalizePhone(c.Phone) == NormalizePhone(phone) &&
		c.Email == email
}
