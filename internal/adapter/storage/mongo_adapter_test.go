package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/rl1809/food-order/internal/core/domain"
)

func TestMongoAdapter(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("replace food items", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 3}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 5}),
		)

		err := adapter.ReplaceFoodItems(context.Background(), domain.DefaultMenu)
		assert.NoError(mt, err)
	})

	mt.Run("replace food items delete failure", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
		}))

		err := adapter.ReplaceFoodItems(context.Background(), domain.DefaultMenu)
		assert.ErrorContains(mt, err, "delete food items")
	})

	mt.Run("list food items", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)
		pizzaID := primitive.NewObjectID()
		burgerID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.fooditems", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: pizzaID}, {Key: "name", Value: "Pizza"}, {Key: "price", Value: 12.0}, {Key: "image", Value: "pizza.png"}},
			bson.D{{Key: "_id", Value: burgerID}, {Key: "name", Value: "Burger"}, {Key: "price", Value: 8.0}, {Key: "image", Value: "burger.jpg"}},
		))

		items, err := adapter.ListFoodItems(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []domain.FoodItem{
			{ID: pizzaID.Hex(), Name: "Pizza", Price: 12, Image: "pizza.png"},
			{ID: burgerID.Hex(), Name: "Burger", Price: 8, Image: "burger.jpg"},
		}, items)
	})

	mt.Run("get food items skips malformed ids", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)

		items, err := adapter.GetFoodItems(context.Background(), []string{"X", "not-an-object-id"})
		assert.NoError(mt, err)
		assert.Empty(mt, items)
	})

	mt.Run("get food items", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)
		pizzaID := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.fooditems", mtest.FirstBatch,
			bson.D{{Key: "_id", Value: pizzaID}, {Key: "name", Value: "Pizza"}, {Key: "price", Value: 12.0}, {Key: "image", Value: "pizza.png"}},
		))

		items, err := adapter.GetFoodItems(context.Background(), []string{pizzaID.Hex(), "X"})
		require.NoError(mt, err)
		require.Len(mt, items, 1)
		assert.Equal(mt, pizzaID.Hex(), items[0].ID)
	})

	mt.Run("create order", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := adapter.CreateOrder(context.Background(), domain.Order{
			Items:     []domain.OrderItem{{FoodID: "X", Quantity: 2}},
			CreatedAt: time.Now(),
		})
		require.NoError(mt, err)
		_, err = primitive.ObjectIDFromHex(id)
		assert.NoError(mt, err, "expected an ObjectID hex, got %q", id)
	})

	mt.Run("create order write error", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))

		id, err := adapter.CreateOrder(context.Background(), domain.Order{
			Items:     []domain.OrderItem{{FoodID: "X", Quantity: 2}},
			CreatedAt: time.Now(),
		})
		assert.Error(mt, err)
		assert.Empty(mt, id)
	})

	mt.Run("list orders", func(mt *mtest.T) {
		adapter := NewMongoAdapter(mt.DB)
		orderID := primitive.NewObjectID()
		createdAt := time.Date(2025, 3, 1, 18, 30, 0, 0, time.UTC)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "test.orders", mtest.FirstBatch,
			bson.D{
				{Key: "_id", Value: orderID},
				{Key: "items", Value: bson.A{
					bson.D{{Key: "foodId", Value: "X"}, {Key: "quantity", Value: int32(2)}},
				}},
				{Key: "createdAt", Value: createdAt},
			},
		))

		orders, err := adapter.ListOrders(context.Background())
		require.NoError(mt, err)
		require.Len(mt, orders, 1)
		assert.Equal(mt, orderID.Hex(), orders[0].ID)
		assert.Equal(mt, []domain.OrderItem{{FoodID: "X", Quantity: 2}}, orders[0].Items)
		assert.True(mt, createdAt.Equal(orders[0].CreatedAt))
	})
}
