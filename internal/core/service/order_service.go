package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rl1809/food-order/internal/core/domain"
	"github.com/rl1809/food-order/internal/port"
)

const OrderConfirmation = "Order placed successfully!"

var ErrEmptyOrder = errors.New("order must include items")

type OrderService struct {
	orders  port.OrderRepository
	catalog port.CatalogRepository
	now     func() time.Time
}

func NewOrderService(orders port.OrderRepository, catalog port.CatalogRepository) *OrderService {
	return &OrderService{
		orders:  orders,
		catalog: catalog,
		now:     time.Now,
	}
}

// PlaceOrder stores items as a new order stamped with the server clock.
// Quantities and food references are stored as given.
func (s *OrderService) PlaceOrder(ctx context.Context, items []domain.OrderItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyOrder
	}

	order := domain.Order{
		Items:     slices.Clone(items),
		CreatedAt: s.now().UTC(),
	}

	id, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("create order: %w", err)
	}
	return id, nil
}

// ListOrders returns all orders newest first with every foodId resolved
// against the catalog in a single batched lookup.
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.PopulatedOrder, error) {
	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	slices.SortStableFunc(orders, func(a, b domain.Order) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	foods, err := s.lookupFood(ctx, orders)
	if err != nil {
		return nil, err
	}

	result := make([]domain.PopulatedOrder, 0, len(orders))
	for _, order := range orders {
		populated := domain.PopulatedOrder{
			ID:        order.ID,
			Items:     make([]domain.PopulatedOrderItem, 0, len(order.Items)),
			CreatedAt: order.CreatedAt,
		}
		for _, item := range order.Items {
			line := domain.PopulatedOrderItem{Quantity: item.Quantity}
			if food, ok := foods[item.FoodID]; ok {
				line.Food = &food
			}
			populated.Items = append(populated.Items, line)
		}
		result = append(result, populated)
	}

	return result, nil
}

func (s *OrderService) lookupFood(ctx context.Context, orders []domain.Order) (map[string]domain.FoodItem, error) {
	var ids []string
	seen := make(map[string]struct{})
	for _, order := range orders {
		for _, item := range order.Items {
			if _, ok := seen[item.FoodID]; ok {
				continue
			}
			seen[item.FoodID] = struct{}{}
			ids = append(ids, item.FoodID)
		}
	}

	foods := make(map[string]domain.FoodItem, len(ids))
	if len(ids) == 0 {
		return foods, nil
	}

	items, err := s.catalog.GetFoodItems(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("populate food items: %w", err)
	}
	for _, item := range items {
		foods[item.ID] = item
	}
	return foods, nil
}
