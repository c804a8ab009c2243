package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"gomarket/internal/domain/product"
)

type ProductRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewProductRepository(db *Storage, log *slog.Logger) *ProductRepository {
	return &ProductRepository{
		db:  db,
		log: log,
	}
}

// ListAfter возвращает страницу товаров после курсора. Keyset по
// (created_at, id): стабильный порядок без смещений при вставках.
func (r *ProductRepository) ListAfter(ctx context.Context, cursor string, limit int) ([]product.Product, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, title, price, image_url, seller_id, created_at
         FROM products
         WHERE $1 = ''
            OR (created_at, id) > (SELECT created_at, id FROM products WHERE id = $1)
         ORDER BY created_at, id
         LIMIT $2`,
		cursor, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []product.Product
	for rows.Next() {
		var p product.Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Price, &p.ImageURL, &p.SellerID, &p.CreatedAt); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *ProductRepository) Find(ctx context.Context, id string) (product.Product, error) {
	var p product.Product
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, title, price, image_url, seller_id, created_at
         FROM products WHERE id = $1`, id).
		Scan(&p.ID, &p.Title, &p.Price, &p.ImageURL, &p.SellerID, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return product.Product{}, product.ErrNotFound
	}
	if err != nil {
		return product.Product{}, err
	}
	return p, nil
}

func (r *ProductRepository) ListFavorites(ctx context.Context, userID string) ([]product.Summary, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT p.id, p.title, p.price, p.image_url
         FROM favorites f
         JOIN products p ON p.id = f.product_id
         WHERE f.user_id = $1
         ORDER BY f.created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var favorites []product.Summary
	for rows.Next() {
		var s product.Summary
		if err := rows.Scan(&s.ID, &s.Title, &s.Price, &s.ImageURL); err != nil {
			return nil, err
		}
		favorites = append(favorites, s)
	}
	return favorites, rows.Err()
}

// AddFavorite идемпотентен: повторное добавление не ошибка.
func (r *ProductRepository) AddFavorite(ctx context.Context, userID, productID string) error {
	_, err := r.db.Pool().Exec(ctx,
		`INSERT INTO favorites (user_id, product_id)
         VALUES ($1, $2)
         ON CONFLICT (user_id, product_id) DO NOTHING`,
		userID, productID)
	return err
}

func (r *ProductRepository) RemoveFavorite(ctx context.Context, userID, productID string) error {
	_, err := r.db.Pool().Exec(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND product_id = $2`,
		userID, productID)
	return err
}
