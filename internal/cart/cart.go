// Package cart holds the storefront's pending order. Every transition
// returns a new Cart and leaves the receiver untouched.
package cart

import "github.com/rl1809/food-order/internal/core/domain"

type Line struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
}

type Cart []Line

// Add bumps the line for item by one, appending a new line on first add.
func (c Cart) Add(item domain.FoodItem) Cart {
	next := make(Cart, len(c), len(c)+1)
	copy(next, c)

	for i := range next {
		if next[i].FoodID == item.ID {
			next[i].Quantity++
			return next
		}
	}
	return append(next, Line{FoodID: item.ID, Quantity: 1, Name: item.Name})
}

// Remove drops the whole line for foodID.
func (c Cart) Remove(foodID string) Cart {
	next := make(Cart, 0, len(c))
	for _, line := range c {
		if line.FoodID != foodID {
			next = append(next, line)
		}
	}
	return next
}

func (c Cart) IsEmpty() bool {
	return len(c) == 0
}

// Items converts the cart to an order payload.
func (c Cart) Items() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c))
	for _, line := range c {
		items = append(items, domain.OrderItem{FoodID: line.FoodID, Quantity: line.Quantity})
	}
	return items
}
