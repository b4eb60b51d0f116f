package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/rl1809/food-order/internal/core/domain"
)

type MySQLAdapter struct {
	db *sql.DB
}

func NewMySQLAdapter(db *sql.DB) *MySQLAdapter {
	return &MySQLAdapter{db: db}
}

func (m *MySQLAdapter) ReplaceFoodItems(ctx context.Context, items []domain.FoodItem) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM food_items`); err != nil {
		return fmt.Errorf("delete food items: %w", err)
	}

	for i, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO food_items (id, position, name, price, image)
			VALUES (?, ?, ?, ?, ?)`,
			uuid.NewString(), i, item.Name, item.Price, item.Image,
		)
		if err != nil {
			return fmt.Errorf("insert food item %s: %w", item.Name, err)
		}
	}

	return tx.Commit()
}

func (m *MySQLAdapter) ListFoodItems(ctx context.Context) ([]domain.FoodItem, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, price, image FROM food_items ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query food items: %w", err)
	}
	return scanFoodItems(rows)
}

func (m *MySQLAdapter) GetFoodItems(ctx context.Context, ids []string) ([]domain.FoodItem, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(ids)), ", ")

	rows, err := m.db.QueryContext(ctx, `
		SELECT id, name, price, image FROM food_items
		WHERE id IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, fmt.Errorf("query food items: %w", err)
	}
	return scanFoodItems(rows)
}

func scanFoodItems(rows *sql.Rows) ([]domain.FoodItem, error) {
	defer rows.Close()

	var items []domain.FoodItem
	for rows.Next() {
		var item domain.FoodItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Image); err != nil {
			return nil, fmt.Errorf("scan food item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate food items: %w", err)
	}
	return items, nil
}

func (m *MySQLAdapter) CreateOrder(ctx context.Context, order domain.Order) (string, error) {
	id := uuid.NewString()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (id, created_at) VALUES (?, ?)`,
		id, order.CreatedAt,
	)
	if err != nil {
		return "", fmt.Errorf("insert order: %w", err)
	}

	for i, item := range order.Items {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO order_items (order_id, position, food_id, quantity)
			VALUES (?, ?, ?, ?)`,
			id, i, item.FoodID, item.Quantity,
		)
		if err != nil {
			return "", fmt.Errorf("insert order item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit order: %w", err)
	}
	return id, nil
}

func (m *MySQLAdapter) ListOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT o.id, o.created_at, i.food_id, i.quantity
		FROM orders o
		LEFT JOIN order_items i ON i.order_id = o.id
		ORDER BY o.created_at DESC, o.id, i.position`)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			id        string
			createdAt time.Time
			foodID    sql.NullString
			quantity  sql.NullInt64
		)
		if err := rows.Scan(&id, &createdAt, &foodID, &quantity); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}

		if len(orders) == 0 || orders[len(orders)-1].ID != id {
			orders = append(orders, domain.Order{ID: id, CreatedAt: createdAt, Items: []domain.OrderItem{}})
		}
		if foodID.Valid {
			last := &orders[len(orders)-1]
			last.Items = append(last.Items, domain.OrderItem{FoodID: foodID.String, Quantity: int(quantity.Int64)})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate orders: %w", err)
	}

	return orders, nil
}
