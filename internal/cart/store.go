package cart

import (
	"sync"

	"dhaba-orders/internal/models"
)

// Store holds the cart lines of every active session, keyed by an opaque
// session identifier supplied by the calling layer. Each session only ever
// sees its own lines.
type Store struct {
	mu       sync.RWMutex
	sessions map[string][]models.CartLine
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string][]models.CartLine),
	}
}

// AddItem appends a new line to the session's cart. Lines for the same item
// are never merged. The line total is computed here and stays fixed even if
// catalog prices change later.
func (s *Store) AddItem(sessionID, foodItem string, quantity int, unitPrice int64) error {
	if foodItem == "" {
		return models.ValidationError{
			Field:   "food_item",
			Message: "food item is required",
		}
	}
	if quantity < 1 {
		return models.ValidationError{
			Field:   "quantity",
			Message: "quantity must be at least 1",
		}
	}
	if unitPrice < 0 {
		return models.ValidationError{
			Field:   "price",
			Message: "unit price must not be negative",
		}
	}

	line := models.CartLine{
		FoodItem:  foodItem,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: int64(quantity) * unitPrice,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[sessionID] = append(s.sessions[sessionID], line)
	return nil
}

// ListItems returns the session's lines in insertion order.
func (s *Store) ListItems(sessionID string) []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartLine(nil), s.sessions[sessionID]...)
}

// TotalPrice returns the sum of all line totals, 0 for an empty cart.
func (s *Store) TotalPrice(sessionID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, line := range s.sessions[sessionID] {
		total += line.LineTotal
	}
	return total
}

// Clear removes all lines for the session. Clearing an empty or unknown
// session is a no-op.
func (s *Store) Clear(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
}
