package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rl1809/food-order/internal/core/domain"
)

var (
	pizza  = domain.FoodItem{ID: "p", Name: "Pizza", Price: 12}
	burger = domain.FoodItem{ID: "b", Name: "Burger", Price: 8}
)

func TestAdd_SameItemTwice(t *testing.T) {
	c := Cart{}.Add(pizza).Add(pizza)

	assert.Equal(t, Cart{{FoodID: "p", Quantity: 2, Name: "Pizza"}}, c)
}

func TestAdd_KeepsInsertionOrder(t *testing.T) {
	c := Cart{}.Add(pizza).Add(burger).Add(pizza)

	assert.Equal(t, Cart{
		{FoodID: "p", Quantity: 2, Name: "Pizza"},
		{FoodID: "b", Quantity: 1, Name: "Burger"},
	}, c)
}

func TestAdd_DoesNotMutateReceiver(t *testing.T) {
	before := Cart{}.Add(pizza)
	after := before.Add(pizza)

	assert.Equal(t, 1, before[0].Quantity)
	assert.Equal(t, 2, after[0].Quantity)
}

func TestRemove_DropsWholeLine(t *testing.T) {
	c := Cart{}.Add(pizza).Add(pizza).Add(burger).Remove("p")

	assert.Equal(t, Cart{{FoodID: "b", Quantity: 1, Name: "Burger"}}, c)
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	c := Cart{}.Add(pizza)

	assert.Equal(t, c, c.Remove("missing"))
	assert.True(t, Cart{}.Remove("missing").IsEmpty())
}

func TestItems(t *testing.T) {
	c := Cart{}.Add(pizza).Add(burger).Add(burger)

	assert.Equal(t, []domain.OrderItem{
		{FoodID: "p", Quantity: 1},
		{FoodID: "b", Quantity: 2},
	}, c.Items())
}
