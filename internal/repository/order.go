package repository

import (
	"context"
	"fmt"

	"mitrasafety/storefront/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderRepository archives orders the API has accepted.
type OrderRepository interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
}

type orderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func (r *orderRepository) SaveOrder(ctx context.Context, order *domain.Order) error {
	query := `
	INSERT INTO order_history (id, status, total, created_at, data)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (id)
	DO UPDATE SET status = $2, total = $3, data = $5`
	_, err := r.db.Exec(ctx, query, order.ID, order.Status, order.Total, order.CreatedAt, order)
	if err != nil {
		return fmt.Errorf("failed to save order %s: %w", order.ID, err)
	}

	return nil
}

// noopOrderRepository is used when the archive database is disabled.
type noopOrderRepository struct{}

func NewNoopOrderRepository() OrderRepository {
	return noopOrderRepository{}
}

func (noopOrderRepository) SaveOrder(context.Context, *domain.Order) error {
	return nil
}
