package models

// PaymentMode is the label recorded against an order. No payment gateway is
// called; the mode is purely descriptive.
type PaymentMode string

const (
	PaymentUPI            PaymentMode = "UPI"
	PaymentCashOnDelivery PaymentMode = "Cash on Delivery"
)

// OrderStatus represents the status of an order
type OrderStatus string

const (
	StatusPending OrderStatus = "Pending"
)

// MenuItem is one purchasable item on the fixed menu. Prices are in minor
// currency units. Identity is the name, unique within a catalog.
type MenuItem struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// CartLine is one entry in a session's cart. LineTotal is fixed at insertion
// time and is not recomputed if catalog prices change later.
type CartLine struct {
	FoodItem  string `json:"food_item"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unit_price"`
	LineTotal int64  `json:"line_total"`
}

// Order is a durable record of one completed purchase line. Price is the
// total for the line, not the unit price. Orders are created only by checkout
// and never updated or deleted.
type Order struct {
	ID          int64  `json:"id" db:"id"`
	FoodItem    string `json:"food_item" db:"food_item"`
	Quantity    int    `json:"quantity" db:"quantity"`
	Price       int64  `json:"price" db:"price"`
	PaymentMode string `json:"payment_mode" db:"payment_mode"`
	Status      string `json:"status" db:"status"`
}

// CartViewResponse is the payload returned when viewing a cart.
type CartViewResponse struct {
	Items      []CartLine `json:"items"`
	TotalPrice int64      `json:"total_price"`
}

// ValidatePaymentMode checks a client-supplied payment mode against the
// accepted set.
func ValidatePaymentMode(mode string) error {
	if mode == "" {
		return ValidationError{
			Field:   "payment_mode",
			Message: "payment mode is required",
		}
	}

	allowedModes := map[PaymentMode]bool{
		PaymentUPI:            true,
		PaymentCashOnDelivery: true,
	}

	if !allowedModes[PaymentMode(mode)] {
		return ValidationError{
			Field:   "payment_mode",
			Message: "invalid payment mode",
		}
	}
	return nil
}
