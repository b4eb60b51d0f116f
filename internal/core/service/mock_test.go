package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rl1809/food-order/internal/core/domain"
)

// Mock CatalogRepository
type mockCatalogRepo struct {
	mu      sync.Mutex
	items   []domain.FoodItem
	nextID  int
	err     error
	lookups [][]string
}

func (m *mockCatalogRepo) ReplaceFoodItems(ctx context.Context, items []domain.FoodItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.items = nil
	for _, item := range items {
		m.nextID++
		item.ID = fmt.Sprintf("food-%d", m.nextID)
		m.items = append(m.items, item)
	}
	return nil
}

func (m *mockCatalogRepo) ListFoodItems(ctx context.Context) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.FoodItem(nil), m.items...), nil
}

func (m *mockCatalogRepo) GetFoodItems(ctx context.Context, ids []string) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lookups = append(m.lookups, ids)
	if m.err != nil {
		return nil, m.err
	}

	var found []domain.FoodItem
	for _, id := range ids {
		for _, item := range m.items {
			if item.ID == id {
				found = append(found, item)
			}
		}
	}
	return found, nil
}

// Mock OrderRepository, returns orders in insertion order
type mockOrderRepo struct {
	mu     sync.Mutex
	orders []domain.Order
	err    error
}

func (m *mockOrderRepo) CreateOrder(ctx context.Context, order domain.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return "", m.err
	}
	order.ID = fmt.Sprintf("order-%d", len(m.orders)+1)
	m.orders = append(m.orders, order)
	return order.ID, nil
}

func (m *mockOrderRepo) ListOrders(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Order(nil), m.orders...), nil
}

// steppingClock returns a clock that advances one second per call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	current := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		current = current.Add(time.Second)
		return current
	}
}
