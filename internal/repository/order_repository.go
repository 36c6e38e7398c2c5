package repository

import (
	"context"

	"delivery-order-service/internal/domain"
)

// Page bounds list queries. Zero Limit falls back to the repository default.
type Page struct {
	Limit  int
	Offset int
}

// TransitionFunc mutates an order that was freshly read inside the storage
// transaction. Returning an error aborts the transaction.
type TransitionFunc func(*domain.Order) error

// OrderRepository is the durable store for orders and their items. Find
// methods return (nil, nil) when no row matches.
type OrderRepository interface {
	// Create persists the order and its items atomically.
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	// FindByAccount lists an account's orders, newest first. An empty status
	// matches all statuses.
	FindByAccount(ctx context.Context, accountID uint64, status domain.OrderStatus, page Page) ([]domain.Order, error)
	FindByRestaurant(ctx context.Context, restaurantID uint64, page Page) ([]domain.Order, error)
	// UpdateStatus runs apply against the freshly read, row-locked order and
	// persists the resulting status in the same transaction. Returns
	// (nil, nil) when the order does not exist.
	UpdateStatus(ctx context.Context, id uint64, apply TransitionFunc) (*domain.Order, error)
}
