package port

import (
	"context"

	"github.com/rl1809/food-order/internal/core/domain"
)

type OrderRepository interface {
	// CreateOrder persists a new order and returns the store-assigned ID
	CreateOrder(ctx context.Context, order domain.Order) (string, error)

	// ListOrders returns every order, newest first
	ListOrders(ctx context.Context) ([]domain.Order, error)
}
