package order

import (
	"context"
	"encoding/json"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talipby/koroglu-site/internal/domain"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	items, err := json.Marshal(o.Items)
	if err != nil {
		return nil, err
	}
	const q = `
INSERT INTO orders (user_id, items, total_cents, status, shipping_address)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, created_at
`
	created := o
	if err := r.pool.QueryRow(ctx, q, o.UserID, items, o.TotalCents, o.Status, o.ShippingAddress).
		Scan(&created.ID, &created.CreatedAt); err != nil {
		r.logger.Printf("order repo: create user=%s error=%v", o.UserID, err)
		return nil, err
	}
	r.logger.Printf("order repo: created id=%s user=%s total=%d", created.ID, created.UserID, created.TotalCents)
	return &created, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, items, total_cents, status, shipping_address, created_at
FROM orders
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, userID)
	if err != nil {
		r.logger.Printf("order repo: list user=%s error=%v", userID, err)
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Order, error) {
	const q = `
SELECT id::text, user_id::text, items, total_cents, status, shipping_address, created_at
FROM orders
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		r.logger.Printf("order repo: list all error=%v", err)
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	var result []domain.Order
	for rows.Next() {
		var o domain.Order
		var items []byte
		if err := rows.Scan(&o.ID, &o.UserID, &items, &o.TotalCents, &o.Status, &o.ShippingAddress, &o.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &o.Items); err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, rows.Err()
}
