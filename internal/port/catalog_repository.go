package port

import (
	"context"

	"github.com/rl1809/food-order/internal/core/domain"
)

type CatalogRepository interface {
	// ReplaceFoodItems deletes every food item and inserts items in their place
	ReplaceFoodItems(ctx context.Context, items []domain.FoodItem) error

	// ListFoodItems returns the whole catalog
	ListFoodItems(ctx context.Context) ([]domain.FoodItem, error)

	// GetFoodItems returns the items matching ids, silently skipping unknown ids
	GetFoodItems(ctx context.Context, ids []string) ([]domain.FoodItem, error)
}
