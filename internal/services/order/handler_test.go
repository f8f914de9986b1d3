package order

import (
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"dhaba-orders/internal/cart"
	"dhaba-orders/internal/logger"
	"dhaba-orders/internal/menu"
	"dhaba-orders/internal/models"
)

func newTestServer(t *testing.T) (*httptest.Server, *http.Client, *memoryRepository) {
	t.Helper()

	carts := cart.NewStore()
	repo := newMemoryRepository()
	log := logger.New("order-service-test")
	svc := NewService(carts, repo, repo, log)
	handler := NewHandler(svc, carts, menu.Default(), nil, log)

	server := httptest.NewServer(handler.SetupRoutes())
	t.Cleanup(server.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	client := &http.Client{Jar: jar}

	return server, client, repo
}

func decodeJSON(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestGetMenu(t *testing.T) {
	server, client, _ := newTestServer(t)

	resp, err := client.Get(server.URL + "/menu")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var items []models.MenuItem
	decodeJSON(t, resp, &items)
	require.Len(t, items, 5)
	require.Equal(t, models.MenuItem{Name: "Aloo Paratha", Price: 50}, items[0])
}

func TestOrderFlow(t *testing.T) {
	server, client, _ := newTestServer(t)

	// Add two items; the client follows the 303 to /cart.
	resp, err := client.PostForm(server.URL+"/cart/items", url.Values{
		"food_item": {"Aloo Paratha"},
		"quantity":  {"2"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp, err = client.PostForm(server.URL+"/cart/items", url.Values{
		"food_item": {"Tandoori Roti"},
		"quantity":  {"3"},
	})
	require.NoError(t, err)
	resp.Body.Close()

	// Cart shows both lines with catalog pricing.
	resp, err = client.Get(server.URL + "/cart")
	require.NoError(t, err)
	var cartView models.CartViewResponse
	decodeJSON(t, resp, &cartView)
	require.Len(t, cartView.Items, 2)
	require.Equal(t, int64(100), cartView.Items[0].LineTotal)
	require.Equal(t, int64(60), cartView.Items[1].LineTotal)
	require.Equal(t, int64(160), cartView.TotalPrice)

	// Checkout lands on the orders listing.
	resp, err = client.PostForm(server.URL+"/checkout", url.Values{
		"payment_mode": {"UPI"},
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []models.Order
	decodeJSON(t, resp, &orders)
	require.Len(t, orders, 2)
	require.Equal(t, "Aloo Paratha", orders[0].FoodItem)
	require.Equal(t, int64(100), orders[0].Price)
	require.Equal(t, "UPI", orders[0].PaymentMode)
	require.Equal(t, "Pending", orders[0].Status)
	require.Equal(t, "Tandoori Roti", orders[1].FoodItem)
	require.Equal(t, int64(60), orders[1].Price)

	// Cart is empty afterwards.
	resp, err = client.Get(server.URL + "/cart")
	require.NoError(t, err)
	decodeJSON(t, resp, &cartView)
	require.Empty(t, cartView.Items)
	require.Equal(t, int64(0), cartView.TotalPrice)
}

func TestAddToCart_UnknownItem(t *testing.T) {
	server, client, _ := newTestServer(t)

	resp, err := client.PostForm(server.URL+"/cart/items", url.Values{
		"food_item": {"Pizza"},
		"quantity":  {"1"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAddToCart_BadQuantity(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
	}{
		{name: "not a number", quantity: "two"},
		{name: "zero", quantity: "0"},
		{name: "negative", quantity: "-3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, client, _ := newTestServer(t)

			resp, err := client.PostForm(server.URL+"/cart/items", url.Values{
				"food_item": {"Dal Tadka"},
				"quantity":  {tt.quantity},
			})
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAddToCart_QuantityDefaultsToOne(t *testing.T) {
	server, client, _ := newTestServer(t)

	resp, err := client.PostForm(server.URL+"/cart/items", url.Values{
		"food_item": {"Dal Tadka"},
	})
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.Get(server.URL + "/cart")
	require.NoError(t, err)
	var cartView models.CartViewResponse
	decodeJSON(t, resp, &cartView)
	require.Len(t, cartView.Items, 1)
	require.Equal(t, 1, cartView.Items[0].Quantity)
	require.Equal(t, int64(100), cartView.TotalPrice)
}

func TestCheckout_RejectsBadPaymentMode(t *testing.T) {
	server, client, repo := newTestServer(t)

	resp, err := client.PostForm(server.URL+"/cart/items", url.Values{
		"food_item": {"Dal Tadka"},
		"quantity":  {"1"},
	})
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = client.PostForm(server.URL+"/checkout", url.Values{
		"payment_mode": {"Gold"},
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Zero(t, repo.saveCalls)
}

func TestListOrders_EmptyRepository(t *testing.T) {
	server, client, _ := newTestServer(t)

	resp, err := client.Get(server.URL + "/orders")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var orders []models.Order
	decodeJSON(t, resp, &orders)
	require.NotNil(t, orders)
	require.Empty(t, orders)
}

func TestSessionsSeeSeparateCarts(t *testing.T) {
	server, _, _ := newTestServer(t)

	newClient := func() *http.Client {
		jar, err := cookiejar.New(nil)
		require.NoError(t, err)
		return &http.Client{Jar: jar}
	}
	alice := newClient()
	bob := newClient()

	resp, err := alice.PostForm(server.URL+"/cart/items", url.Values{
		"food_item": {"Paneer Paratha"},
		"quantity":  {"1"},
	})
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = bob.Get(server.URL + "/cart")
	require.NoError(t, err)
	var cartView models.CartViewResponse
	decodeJSON(t, resp, &cartView)
	require.Empty(t, cartView.Items, "another session must not see the cart")
}

func TestHealth(t *testing.T) {
	server, client, _ := newTestServer(t)

	resp, err := client.Get(server.URL + "/health")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	decodeJSON(t, resp, &body)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, true, body["healthy"])
}
