package order

import (
	"context"

	"dhaba-orders/internal/models"
)

// CartStore is the slice of cart behavior checkout needs: a snapshot of the
// session's lines and the ability to empty them after a successful commit.
type CartStore interface {
	ListItems(sessionID string) []models.CartLine
	Clear(sessionID string)
}

// OrderRepository is the durable, append-only store of orders. Save must
// commit the whole batch or nothing and assign unique increasing ids.
type OrderRepository interface {
	Save(ctx context.Context, orders []models.Order) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

// Pinger reports whether the underlying storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}
