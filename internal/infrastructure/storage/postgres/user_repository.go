package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"gomarket/internal/domain/user"
)

type UserRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewUserRepository(db *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log,
	}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO users (id, email, name, phone, legacy_address, password_hash, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID, u.Email, u.Name, u.Phone, u.LegacyAddress, u.Password, u.CreatedAt)
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return r.findBy(ctx, `WHERE email = $1`, email)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (user.User, error) {
	return r.findBy(ctx, `WHERE id = $1`, id)
}

func (r *UserRepository) findBy(ctx context.Context, where string, arg any) (user.User, error) {
	var u user.User
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, email, name, phone, legacy_address, password_hash, created_at
         FROM users `+where, arg).
		Scan(&u.ID, &u.Email, &u.Name, &u.Phone, &u.LegacyAddress, &u.Password, &u.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.User{}, user.ErrNotFound
	}
	if err != nil {
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE users SET name = $2, phone = $3, legacy_address = $4 WHERE id = $1`,
		u.ID, u.Name, u.Phone, u.LegacyAddress)
	if err != nil {
		return user.User{}, err
	}
	if tag.RowsAffected() == 0 {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *UserRepository) ListContacts(ctx context.Context, userID string) ([]user.Contact, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, user_id, name, phone, email, created_at
         FROM contacts WHERE user_id = $1 ORDER BY created_at`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []user.Contact
	for rows.Next() {
		var c user.Contact
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

func (r *UserRepository) FindContactByPhone(ctx context.Context, userID, phone string) (user.Contact, error) {
	var c user.Contact
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, user_id, name, phone, email, created_at
         FROM contacts WHERE user_id = $1 AND phone = $2`, userID, phone).
		Scan(&c.ID, &c.UserID, &c.Name, &c.Phone, &c.Email, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return user.Contact{}, user.ErrNotFound
	}
	if err != nil {
		return user.Contact{}, err
	}
	return c, nil
}

func (r *UserRepository) CreateContact(ctx context.Context, c user.Contact) (user.Contact, error) {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO contacts (id, user_id, name, phone, email, created_at)
         VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.UserID, c.Name, c.Phone, c.Email, c.CreatedAt)
	if err != nil {
		return user.Contact{}, err
	}
	return c, nil
}

func (r *UserRepository) UpdateContact(ctx context.Context, c user.Contact) (user.Contact, error) {
	tag, err := r.db.Pool().Exec(ctx,
		`UPDATE contacts SET name = $3, phone = $4, email = $5
         WHERE user_id = $1 AND id = $2`,
		c.UserID, c.ID, c.Name, c.Phone, c.Email)
	if err != nil {
		return user.Contact{}, err
	}
	if tag.RowsAffected() == 0 {
		return user.Contact{}, user.ErrNotFound
	}
	return c, nil
}
