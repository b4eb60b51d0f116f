package domain

import "time"

type OrderItem struct {
	FoodID   string `json:"foodId"`
	Quantity int    `json:"quantity"`
}

type Order struct {
	ID        string      `json:"_id"`
	Items     []OrderItem `json:"items"`
	CreatedAt time.Time   `json:"createdAt"`
}

// PopulatedOrderItem is an order line with its food reference resolved.
// Food is nil when the reference no longer matches a catalog entry.
type PopulatedOrderItem struct {
	Food     *FoodItem `json:"foodId"`
	Quantity int       `json:"quantity"`
}

type PopulatedOrder struct {
	ID        string               `json:"_id"`
	Items     []PopulatedOrderItem `json:"items"`
	CreatedAt time.Time            `json:"createdAt"`
}
