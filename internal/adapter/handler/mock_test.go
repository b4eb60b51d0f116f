package handler

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/food-order/internal/core/domain"
	"github.com/rl1809/food-order/internal/core/service"
)

type memoryStore struct {
	mu     sync.Mutex
	food   []domain.FoodItem
	orders []domain.Order
	seq    int
	err    error
}

func (m *memoryStore) ReplaceFoodItems(ctx context.Context, items []domain.FoodItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.food = nil
	for _, item := range items {
		m.seq++
		item.ID = fmt.Sprintf("food-%d", m.seq)
		m.food = append(m.food, item)
	}
	return nil
}

func (m *memoryStore) ListFoodItems(ctx context.Context) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.FoodItem(nil), m.food...), nil
}

func (m *memoryStore) GetFoodItems(ctx context.Context, ids []string) ([]domain.FoodItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var found []domain.FoodItem
	for _, id := range ids {
		for _, item := range m.food {
			if item.ID == id {
				found = append(found, item)
			}
		}
	}
	return found, nil
}

func (m *memoryStore) CreateOrder(ctx context.Context, order domain.Order) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.seq++
	order.ID = fmt.Sprintf("order-%d", m.seq)
	m.orders = append(m.orders, order)
	return order.ID, nil
}

func (m *memoryStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return append([]domain.Order(nil), m.orders...), nil
}

func (m *memoryStore) orderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

func newServices(store *memoryStore) (*service.CatalogService, *service.OrderService) {
	return service.NewCatalogService(store), service.NewOrderService(store, store)
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
