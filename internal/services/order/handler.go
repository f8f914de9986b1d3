package order

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"dhaba-orders/internal/cart"
	"dhaba-orders/internal/logger"
	"dhaba-orders/internal/menu"
	"dhaba-orders/internal/messaging"
	"dhaba-orders/internal/models"
)

const sessionCookieName = "dhaba_session"

// Handler handles HTTP requests for the order service
type Handler struct {
	service   *Service
	carts     *cart.Store
	catalog   *menu.Catalog
	publisher *messaging.Publisher
	logger    *logger.Logger
}

// NewHandler creates a new order handler. publisher may be nil, in which case
// no notifications are published.
func NewHandler(service *Service, carts *cart.Store, catalog *menu.Catalog, publisher *messaging.Publisher, log *logger.Logger) *Handler {
	return &Handler{
		service:   service,
		carts:     carts,
		catalog:   catalog,
		publisher: publisher,
		logger:    log,
	}
}

// GetMenu handles GET /menu requests
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.catalog.Items(), logger.GenerateRequestID())
}

// AddToCart handles POST /cart/items requests. The form supplies the item
// name and quantity; the unit price always comes from the catalog, never from
// the client.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if err := r.ParseForm(); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid form data", requestID)
		return
	}

	foodItem := r.PostFormValue("food_item")

	quantity := 1
	if raw := r.PostFormValue("quantity"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.writeErrorResponse(w, http.StatusBadRequest, "quantity: must be a whole number", requestID)
			return
		}
		quantity = parsed
	}

	item, err := h.catalog.Find(foodItem)
	if err != nil {
		h.writeErrorResponse(w, http.StatusNotFound, err.Error(), requestID)
		return
	}

	sessionID := h.sessionID(w, r)
	if err := h.carts.AddItem(sessionID, item.Name, quantity, item.Price); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, err.Error(), requestID)
		return
	}

	h.logger.Debug("cart_item_added", "Item added to cart", requestID, map[string]interface{}{
		"session_id": sessionID,
		"food_item":  item.Name,
		"quantity":   quantity,
	})

	http.Redirect(w, r, "/cart", http.StatusSeeOther)
}

// ViewCart handles GET /cart requests
func (h *Handler) ViewCart(w http.ResponseWriter, r *http.Request) {
	sessionID := h.sessionID(w, r)

	items := h.carts.ListItems(sessionID)
	if items == nil {
		items = []models.CartLine{}
	}

	response := models.CartViewResponse{
		Items:      items,
		TotalPrice: h.carts.TotalPrice(sessionID),
	}

	h.writeJSON(w, http.StatusOK, response, logger.GenerateRequestID())
}

// Checkout handles POST /checkout requests
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	if err := r.ParseForm(); err != nil {
		h.writeErrorResponse(w, http.StatusBadRequest, "Invalid form data", requestID)
		return
	}

	paymentMode := r.PostFormValue("payment_mode")
	sessionID := h.sessionID(w, r)

	created, err := h.service.Checkout(r.Context(), sessionID, paymentMode, requestID)
	if err != nil {
		h.writeErrorResponse(w, statusForError(err), err.Error(), requestID)
		return
	}

	if h.publisher != nil && len(created) > 0 {
		msg := models.NewOrderPlacedMessage(created)
		if err := h.publisher.PublishOrderPlaced(r.Context(), msg); err != nil {
			// The orders are already committed; the notification is best
			// effort.
			h.logger.Error("notification_publish_failed", "Failed to publish order notification", requestID, err, map[string]interface{}{
				"order_count": len(created),
			})
		}
	}

	http.Redirect(w, r, "/orders", http.StatusSeeOther)
}

// ListOrders handles GET /orders requests
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	requestID := logger.GenerateRequestID()

	orders, err := h.service.ListOrders(r.Context(), requestID)
	if err != nil {
		h.writeErrorResponse(w, statusForError(err), "Internal server error", requestID)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}

	h.writeJSON(w, http.StatusOK, orders, requestID)
}

// HealthCheck handles GET /health requests
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	healthy := h.service.HealthCheck(r.Context())

	response := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "order-service",
		"healthy":   healthy,
	}

	w.Header().Set("Content-Type", "application/json")

	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		response["status"] = "unhealthy"
	}

	json.NewEncoder(w).Encode(response)
}

// SetupRoutes sets up the HTTP routes
func (h *Handler) SetupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /menu", h.withLogging(h.GetMenu))
	mux.HandleFunc("POST /cart/items", h.withLogging(h.AddToCart))
	mux.HandleFunc("GET /cart", h.withLogging(h.ViewCart))
	mux.HandleFunc("POST /checkout", h.withLogging(h.Checkout))
	mux.HandleFunc("GET /orders", h.withLogging(h.ListOrders))
	mux.HandleFunc("GET /health", h.withLogging(h.HealthCheck))

	return mux
}

// sessionID returns the caller's session identifier, minting a new cookie
// when none is present.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	id := newSessionID()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
	})
	return id
}

func newSessionID() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "sess_unknown"
	}
	return "sess_" + hex.EncodeToString(buf)
}

// statusForError maps the error taxonomy to HTTP status codes.
func statusForError(err error) int {
	var validationErr models.ValidationError
	var notFoundErr models.NotFoundError
	var storageErr *models.StorageError

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	case errors.As(err, &storageErr):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON writes a successful JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, statusCode int, payload interface{}, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("response_encoding_failed", "Failed to encode response", requestID, err, nil)
	}
}

// writeErrorResponse writes an error response in JSON format
func (h *Handler) writeErrorResponse(w http.ResponseWriter, statusCode int, message, requestID string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	errorResponse := map[string]interface{}{
		"error":      message,
		"timestamp":  time.Now().UTC().Format(time.RFC3339),
		"request_id": requestID,
	}

	json.NewEncoder(w).Encode(errorResponse)
}

// withLogging adds request logging middleware
func (h *Handler) withLogging(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := logger.GenerateRequestID()

		h.logger.Debug("request_started",
			fmt.Sprintf("%s %s", r.Method, r.URL.Path),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"remote_addr": r.RemoteAddr,
				"user_agent":  r.Header.Get("User-Agent"),
			})

		rw := &responseWriter{ResponseWriter: w, statusCode: 200}

		next(rw, r)

		duration := time.Since(start)
		h.logger.Debug("request_completed",
			fmt.Sprintf("%s %s - %d", r.Method, r.URL.Path, rw.statusCode),
			requestID,
			map[string]interface{}{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status_code": rw.statusCode,
				"duration_ms": duration.Milliseconds(),
			})
	}
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
