package storefront

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/food-order/internal/cart"
	"github.com/rl1809/food-order/internal/client"
	"github.com/rl1809/food-order/internal/core/domain"
)

const SubmitFailedMessage = "Failed to submit order."

type API interface {
	ListFood(ctx context.Context) ([]domain.FoodItem, error)
	Seed(ctx context.Context) (string, error)
	PlaceOrder(ctx context.Context, items []domain.OrderItem) (*client.PlaceOrderResult, error)
	ListOrders(ctx context.Context) ([]domain.PopulatedOrder, error)
}

type State struct {
	Catalog []domain.FoodItem
	Cart    cart.Cart
	Message string
	Orders  []domain.PopulatedOrder
}

// Storefront owns the client-side state. It is driven from a single
// goroutine, one action at a time.
type Storefront struct {
	api   API
	log   logrus.FieldLogger
	state State
}

func New(api API, log logrus.FieldLogger) *Storefront {
	return &Storefront{api: api, log: log}
}

func (s *Storefront) State() State {
	return s.state
}

func (s *Storefront) LoadCatalog(ctx context.Context) {
	items, err := s.api.ListFood(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to load food items")
		return
	}
	s.state.Catalog = items
}

// AddToCart adds the catalog item with foodID; it reports false when the
// catalog has no such item.
func (s *Storefront) AddToCart(foodID string) bool {
	for _, item := range s.state.Catalog {
		if item.ID == foodID {
			s.state.Cart = s.state.Cart.Add(item)
			return true
		}
	}
	return false
}

func (s *Storefront) RemoveFromCart(foodID string) {
	s.state.Cart = s.state.Cart.Remove(foodID)
}

// SubmitOrder sends the cart. The cart is cleared only once the server
// confirms the order.
func (s *Storefront) SubmitOrder(ctx context.Context) {
	if s.state.Cart.IsEmpty() {
		return
	}

	res, err := s.api.PlaceOrder(ctx, s.state.Cart.Items())
	if err != nil {
		s.log.WithError(err).Error("order failed")
		s.state.Message = SubmitFailedMessage
		return
	}

	s.state.Message = res.Message
	s.state.Cart = nil
}

func (s *Storefront) LoadOrders(ctx context.Context) {
	orders, err := s.api.ListOrders(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to fetch orders")
		return
	}
	s.state.Orders = orders
}

// Seed resets the server catalog and reloads the local copy.
func (s *Storefront) Seed(ctx context.Context) {
	msg, err := s.api.Seed(ctx)
	if err != nil {
		s.log.WithError(err).Error("failed to seed catalog")
		return
	}
	s.state.Message = msg
	s.LoadCatalog(ctx)
}
