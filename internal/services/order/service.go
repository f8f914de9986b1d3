package order

import (
	"context"
	"sync"

	"dhaba-orders/internal/logger"
	"dhaba-orders/internal/models"
)

// Service converts a session's cart into durable order records. This is the
// one state transition in the system.
type Service struct {
	carts  CartStore
	repo   OrderRepository
	pinger Pinger
	logger *logger.Logger

	mu           sync.Mutex
	sessionLocks map[string]*sync.Mutex
}

func NewService(carts CartStore, repo OrderRepository, pinger Pinger, log *logger.Logger) *Service {
	return &Service{
		carts:        carts,
		repo:         repo,
		pinger:       pinger,
		logger:       log,
		sessionLocks: make(map[string]*sync.Mutex),
	}
}

// Checkout snapshots the session's cart and writes one order per line as a
// single batch. The cart is cleared only after the batch commits; on any
// storage failure the cart is left intact so the caller can retry.
func (s *Service) Checkout(ctx context.Context, sessionID, paymentMode, requestID string) ([]models.Order, error) {
	if err := models.ValidatePaymentMode(paymentMode); err != nil {
		return nil, err
	}

	// Serialize checkouts per session so a double-submit cannot turn one
	// cart into two order batches.
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	lines := s.carts.ListItems(sessionID)
	if len(lines) == 0 {
		return []models.Order{}, nil
	}

	orders := make([]models.Order, 0, len(lines))
	for _, line := range lines {
		orders = append(orders, models.Order{
			FoodItem:    line.FoodItem,
			Quantity:    line.Quantity,
			Price:       line.LineTotal,
			PaymentMode: paymentMode,
			Status:      string(models.StatusPending),
		})
	}

	created, err := s.repo.Save(ctx, orders)
	if err != nil {
		s.logger.Error("checkout_failed", "Failed to persist order batch", requestID, err, map[string]interface{}{
			"session_id": sessionID,
			"line_count": len(lines),
		})
		return nil, &models.StorageError{Op: "save order batch", Err: err}
	}

	s.carts.Clear(sessionID)

	s.logger.Info("checkout_completed", "Cart converted to orders", requestID, map[string]interface{}{
		"session_id":   sessionID,
		"order_count":  len(created),
		"payment_mode": paymentMode,
	})

	return created, nil
}

// ListOrders returns every order ever placed, oldest first.
func (s *Service) ListOrders(ctx context.Context, requestID string) ([]models.Order, error) {
	orders, err := s.repo.ListAll(ctx)
	if err != nil {
		s.logger.Error("order_list_failed", "Failed to list orders", requestID, err, nil)
		return nil, &models.StorageError{Op: "list orders", Err: err}
	}
	return orders, nil
}

// HealthCheck checks the health of dependencies
func (s *Service) HealthCheck(ctx context.Context) bool {
	if s.pinger == nil {
		return true
	}
	if err := s.pinger.Ping(ctx); err != nil {
		s.logger.Error("health_check_failed", "Database ping failed", "", err, nil)
		return false
	}
	return true
}

func (s *Service) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.sessionLocks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.sessionLocks[sessionID] = lock
	}
	return lock
}
