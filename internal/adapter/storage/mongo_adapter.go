package storage

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rl1809/food-order/internal/core/domain"
)

const (
	foodCollection  = "fooditems"
	orderCollection = "orders"
)

type foodDocument struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Name  string             `bson:"name"`
	Price float64            `bson:"price"`
	Image string             `bson:"image"`
}

type orderItemDocument struct {
	FoodID   string `bson:"foodId"`
	Quantity int    `bson:"quantity"`
}

type orderDocument struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	Items     []orderItemDocument `bson:"items"`
	CreatedAt time.Time           `bson:"createdAt"`
}

type MongoAdapter struct {
	food   *mongo.Collection
	orders *mongo.Collection
}

func NewMongoAdapter(db *mongo.Database) *MongoAdapter {
	return &MongoAdapter{
		food:   db.Collection(foodCollection),
		orders: db.Collection(orderCollection),
	}
}

func (m *MongoAdapter) ReplaceFoodItems(ctx context.Context, items []domain.FoodItem) error {
	if _, err := m.food.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("delete food items: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(items))
	for _, item := range items {
		docs = append(docs, foodDocument{
			ID:    primitive.NewObjectID(),
			Name:  item.Name,
			Price: item.Price,
			Image: item.Image,
		})
	}

	if _, err := m.food.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert food items: %w", err)
	}
	return nil
}

func (m *MongoAdapter) ListFoodItems(ctx context.Context) ([]domain.FoodItem, error) {
	return m.findFood(ctx, bson.D{})
}

// GetFoodItems matches ids against _id. Ids that are not valid ObjectIDs
// can never match and are dropped before querying.
func (m *MongoAdapter) GetFoodItems(ctx context.Context, ids []string) ([]domain.FoodItem, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		oids = append(oids, oid)
	}
	if len(oids) == 0 {
		return nil, nil
	}

	return m.findFood(ctx, bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}})
}

func (m *MongoAdapter) findFood(ctx context.Context, filter bson.D) ([]domain.FoodItem, error) {
	cursor, err := m.food.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find food items: %w", err)
	}

	var docs []foodDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode food items: %w", err)
	}

	items := make([]domain.FoodItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, domain.FoodItem{
			ID:    doc.ID.Hex(),
			Name:  doc.Name,
			Price: doc.Price,
			Image: doc.Image,
		})
	}
	return items, nil
}

func (m *MongoAdapter) CreateOrder(ctx context.Context, order domain.Order) (string, error) {
	doc := orderDocument{
		ID:        primitive.NewObjectID(),
		Items:     make([]orderItemDocument, 0, len(order.Items)),
		CreatedAt: order.CreatedAt,
	}
	for _, item := range order.Items {
		doc.Items = append(doc.Items, orderItemDocument{FoodID: item.FoodID, Quantity: item.Quantity})
	}

	if _, err := m.orders.InsertOne(ctx, doc); err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}
	return doc.ID.Hex(), nil
}

func (m *MongoAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := m.orders.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}

	var docs []orderDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(docs))
	for _, doc := range docs {
		order := domain.Order{
			ID:        doc.ID.Hex(),
			Items:     make([]domain.OrderItem, 0, len(doc.Items)),
			CreatedAt: doc.CreatedAt,
		}
		for _, item := range doc.Items {
			order.Items = append(order.Items, domain.OrderItem{FoodID: item.FoodID, Quantity: item.Quantity})
		}
		orders = append(orders, order)
	}
	return orders, nil
}
