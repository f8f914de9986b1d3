package order

import (
	"context"
	"fmt"

	"dhaba-orders/internal/database"
	"dhaba-orders/internal/models"
)

// Repository is the PostgreSQL-backed OrderRepository.
type Repository struct {
	db *database.DB
}

func NewRepository(db *database.DB) *Repository {
	return &Repository{db: db}
}

// Save inserts the batch inside one transaction. Either every row becomes
// visible or none does; ids come from the orders sequence and are never
// reused.
func (r *Repository) Save(ctx context.Context, orders []models.Order) ([]models.Order, error) {
	if len(orders) == 0 {
		return []models.Order{}, nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin order batch: %w", err)
	}
	defer tx.Rollback(ctx)

	created := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		err := tx.QueryRow(ctx, database.InsertOrderSQL,
			o.FoodItem, o.Quantity, o.Price, o.PaymentMode, o.Status).Scan(&o.ID)
		if err != nil {
			return nil, fmt.Errorf("insert order: %w", err)
		}
		created = append(created, o)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order batch: %w", err)
	}

	return created, nil
}

// ListAll returns every order, id ascending.
func (r *Repository) ListAll(ctx context.Context) ([]models.Order, error) {
	rows, err := r.db.Query(ctx, database.ListOrdersSQL)
	if err != nil {
		return nil, fmt.Errorf("query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		err := rows.Scan(&o.ID, &o.FoodItem, &o.Quantity, &o.Price, &o.PaymentMode, &o.Status)
		if err != nil {
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

// Ping tests the database connection.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}
