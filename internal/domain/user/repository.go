package user

import "context"

// Repository — хранилище пользователей и контактов.
type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	FindByID(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, u User) (User, error)

	ListContacts(ctx context.Context, userID string) ([]Contact, error)
	FindContactByPhone(ctx context.Context, userID, phone string) (Contact, error)
	CreateContact(ctx context.Context, c Contact) (Contact, error)
	UpdateContact(ctx context.Context, c Contact) (Contact, error)
}
