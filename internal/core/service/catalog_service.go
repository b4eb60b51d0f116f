package service

import (
	"context"
	"fmt"

	"github.com/rl1809/food-order/internal/core/domain"
	"github.com/rl1809/food-order/internal/port"
)

const SeedConfirmation = "Food items seeded successfully!"

type CatalogService struct {
	catalog port.CatalogRepository
}

func NewCatalogService(catalog port.CatalogRepository) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// Seed wipes the catalog and writes domain.DefaultMenu. Running it twice
// leaves the same five items behind.
func (s *CatalogService) Seed(ctx context.Context) (string, error) {
	items := make([]domain.FoodItem, len(domain.DefaultMenu))
	copy(items, domain.DefaultMenu)

	if err := s.catalog.ReplaceFoodItems(ctx, items); err != nil {
		return "", fmt.Errorf("seed catalog: %w", err)
	}
	return SeedConfirmation, nil
}

func (s *CatalogService) ListFood(ctx context.Context) ([]domain.FoodItem, error) {
	items, err := s.catalog.ListFoodItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}
	if items == nil {
		items = []domain.FoodItem{}
	}
	return items, nil
}
