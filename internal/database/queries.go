package database

// Order queries
const (
	InsertOrderSQL = `
		INSERT INTO orders (food_item, quantity, price, payment_mode, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	ListOrdersSQL = `
		SELECT id, food_item, quantity, price, payment_mode, status
		FROM orders
		ORDER BY id ASC`
)
