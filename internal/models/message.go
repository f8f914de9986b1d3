package models

import "time"

// OrderPlacedMessage is the notification published after a checkout commits.
type OrderPlacedMessage struct {
	OrderIDs    []int64   `json:"order_ids"`
	PaymentMode string    `json:"payment_mode"`
	ItemCount   int       `json:"item_count"`
	TotalAmount int64     `json:"total_amount"`
	PlacedAt    time.Time `json:"placed_at"`
}

// NewOrderPlacedMessage builds a notification from the orders a checkout
// created.
func NewOrderPlacedMessage(orders []Order) *OrderPlacedMessage {
	msg := &OrderPlacedMessage{
		OrderIDs:  make([]int64, 0, len(orders)),
		ItemCount: len(orders),
		PlacedAt:  time.Now().UTC(),
	}

	for _, o := range orders {
		msg.OrderIDs = append(msg.OrderIDs, o.ID)
		msg.TotalAmount += o.Price
	}
	if len(orders) > 0 {
		msg.PaymentMode = orders[0].PaymentMode
	}

	return msg
}
