package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/rl1809/food-order/internal/core/domain"
)

const (
	foodListKey    = "food:list"
	foodIndexKey   = "food:index"
	orderKeyPrefix = "order:"
	orderTimeline  = "orders:by_created"
)

// RedisAdapter keeps the catalog as an ordered list of ids plus an id->JSON
// hash, and each order as a JSON string indexed by a sorted set scored on
// creation time in microseconds.
type RedisAdapter struct {
	client *redis.Client
}

func NewRedisAdapter(client *redis.Client) *RedisAdapter {
	return &RedisAdapter{client: client}
}

func (r *RedisAdapter) ReplaceFoodItems(ctx context.Context, items []domain.FoodItem) error {
	ids := make([]interface{}, 0, len(items))
	fields := make([]interface{}, 0, 2*len(items))
	for _, item := range items {
		item.ID = uuid.NewString()
		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal food item: %w", err)
		}
		ids = append(ids, item.ID)
		fields = append(fields, item.ID, data)
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, foodListKey, foodIndexKey)
		if len(items) > 0 {
			pipe.RPush(ctx, foodListKey, ids...)
			pipe.HSet(ctx, foodIndexKey, fields...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace food items: %w", err)
	}
	return nil
}

func (r *RedisAdapter) ListFoodItems(ctx context.Context) ([]domain.FoodItem, error) {
	ids, err := r.client.LRange(ctx, foodListKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list food ids: %w", err)
	}
	return r.GetFoodItems(ctx, ids)
}

func (r *RedisAdapter) GetFoodItems(ctx context.Context, ids []string) ([]domain.FoodItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values, err := r.client.HMGet(ctx, foodIndexKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("get food items: %w", err)
	}

	items := make([]domain.FoodItem, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}
		var item domain.FoodItem
		if err := json.Unmarshal([]byte(raw), &item); err != nil {
			return nil, fmt.Errorf("decode food item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (r *RedisAdapter) CreateOrder(ctx context.Context, order domain.Order) (string, error) {
	order.ID = uuid.NewString()

	data, err := json.Marshal(order)
	if err != nil {
		return "", fmt.Errorf("marshal order: %w", err)
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, orderKeyPrefix+order.ID, data, 0)
		pipe.ZAdd(ctx, orderTimeline, redis.Z{
			Score:  float64(order.CreatedAt.UnixMicro()),
			Member: order.ID,
		})
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("store order: %w", err)
	}
	return order.ID, nil
}

func (r *RedisAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	ids, err := r.client.ZRevRange(ctx, orderTimeline, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("list order ids: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = orderKeyPrefix + id
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}

	orders := make([]domain.Order, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("order %q indexed but missing", ids[i])
		}
		var order domain.Order
		if err := json.Unmarshal([]byte(raw), &order); err != nil {
			return nil, fmt.Errorf("decode order: %w", err)
		}
		orders = append(orders, order)
	}
	return orders, nil
}
