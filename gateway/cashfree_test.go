package gateway_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templatehub/backend/gateway"
)

func orderRequest() gateway.OrderRequest {
	return gateway.OrderRequest{
		OrderID:       "order_7_abc123",
		Amount:        499.00,
		Currency:      "INR",
		CustomerID:    "cust_a",
		CustomerEmail: "a@b.com",
		CustomerPhone: "9999999999",
		ReturnURL:     "http://localhost:5173/payment-status?order_id=order_7_abc123",
		NotifyURL:     "https://backend.example.com/api/webhook",
	}
}

func TestCreateOrderSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/pg/orders", r.URL.Path)
		assert.Equal(t, "app_id_1", r.Header.Get("x-client-id"))
		assert.Equal(t, "secret_1", r.Header.Get("x-client-secret"))
		assert.Equal(t, "2023-08-01", r.Header.Get("x-api-version"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("failed to decode order payload: %v", err)
			return
		}
		assert.Equal(t, "order_7_abc123", body["order_id"])
		assert.Equal(t, 499.00, body["order_amount"])
		assert.Equal(t, "INR", body["order_currency"])

		customer := body["customer_details"].(map[string]interface{})
		assert.Equal(t, "cust_a", customer["customer_id"])
		assert.Equal(t, "a@b.com", customer["customer_email"])

		meta := body["order_meta"].(map[string]interface{})
		assert.Equal(t, "https://backend.example.com/api/webhook", meta["notify_url"])

		json.NewEncoder(w).Encode(map[string]string{"payment_session_id": "sess_1"})
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, "app_id_1", "secret_1", 5*time.Second)
	sessionID, err := client.CreateOrder(orderRequest())
	require.NoError(t, err)
	assert.Equal(t, "sess_1", sessionID)
}

func TestCreateOrderGatewayRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "authentication failed"})
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, "bad_id", "bad_secret", 5*time.Second)
	_, err := client.CreateOrder(orderRequest())
	require.Error(t, err)

	var gatewayErr *gateway.Error
	require.True(t, errors.As(err, &gatewayErr))
	assert.Equal(t, http.StatusUnauthorized, gatewayErr.StatusCode)
	assert.Equal(t, "authentication failed", gatewayErr.Message)
}

func TestCreateOrderMissingSessionID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"order_status": "ACTIVE"})
	}))
	defer server.Close()

	client := gateway.NewClient(server.URL, "app_id_1", "secret_1", 5*time.Second)
	_, err := client.CreateOrder(orderRequest())
	require.Error(t, err)

	var gatewayErr *gateway.Error
	require.True(t, errors.As(err, &gatewayErr))
	assert.Contains(t, gatewayErr.Message, "no payment session")
}

func TestCreateOrderNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := gateway.NewClient(server.URL, "app_id_1", "secret_1", time.Second)
	_, err := client.CreateOrder(orderRequest())
	require.Error(t, err)

	var gatewayErr *gateway.Error
	assert.True(t, errors.As(err, &gatewayErr))
}
