package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templatehub/backend/controllers"
	"github.com/templatehub/backend/gateway"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/payments"
)

type memoryStore struct {
	mu        sync.Mutex
	payments  map[string]*models.Payment
	templates map[uint]*models.Template
}

func (s *memoryStore) Create(payment *models.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *payment
	s.payments[payment.OrderID] = &copied
	return nil
}

func (s *memoryStore) FindByOrderID(orderID string) (*models.Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[orderID]
	if !ok {
		return nil, payments.ErrPaymentNotFound
	}
	copied := *payment
	return &copied, nil
}

func (s *memoryStore) FindTemplate(templateID uint) (*models.Template, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	template, ok := s.templates[templateID]
	if !ok {
		return nil, payments.ErrTemplateNotFound
	}
	copied := *template
	return &copied, nil
}

func (s *memoryStore) Transition(orderID, from, to string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	payment, ok := s.payments[orderID]
	if !ok || payment.Status != from {
		return false, nil
	}
	payment.Status = to
	return true, nil
}

type noopGateway struct{}

func (noopGateway) CreateOrder(req gateway.OrderRequest) (string, error) { return "sess_1", nil }

type countingMailer struct {
	mu    sync.Mutex
	count int
}

func (m *countingMailer) Send(to, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count++
	return nil
}

func webhookTestRouter(t *testing.T) (*gin.Engine, *memoryStore, *countingMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &memoryStore{
		payments: map[string]*models.Payment{
			"order_7_abc123": {
				TemplateID: 7,
				OrderID:    "order_7_abc123",
				UserEmail:  "a@b.com",
				Amount:     499.00,
				Status:     models.PaymentStatusPending,
			},
		},
		templates: map[uint]*models.Template{},
	}
	mailer := &countingMailer{}
	controllers.InitPaymentService(&payments.Service{
		Store:   store,
		Gateway: noopGateway{},
		Mailer:  mailer,
	})

	router := gin.New()
	router.POST("/api/webhook", controllers.PaymentWebhook)
	return router, store, mailer
}

func postWebhook(router *gin.Engine, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/webhook", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPaymentWebhookSuccessDeliveredTwice(t *testing.T) {
	t.Setenv("CASHFREE_WEBHOOK_SECRET", "")
	router, store, mailer := webhookTestRouter(t)

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"order_7_abc123"}}}`)

	first := postWebhook(router, body, nil)
	assert.Equal(t, http.StatusOK, first.Code)

	payment, err := store.FindByOrderID("order_7_abc123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
	assert.Equal(t, 1, mailer.count)

	// Duplicate delivery is acknowledged without a second fulfillment
	second := postWebhook(router, body, nil)
	assert.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, 1, mailer.count)
}

func TestPaymentWebhookUnknownEventAcknowledged(t *testing.T) {
	t.Setenv("CASHFREE_WEBHOOK_SECRET", "")
	router, store, mailer := webhookTestRouter(t)

	body := []byte(`{"type":"SOME_OTHER_EVENT","data":{"order":{"order_id":"order_7_abc123"}}}`)
	w := postWebhook(router, body, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "ignored", data["status"])

	payment, err := store.FindByOrderID("order_7_abc123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Zero(t, mailer.count)
}

func TestPaymentWebhookUnknownOrder(t *testing.T) {
	t.Setenv("CASHFREE_WEBHOOK_SECRET", "")
	router, _, _ := webhookTestRouter(t)

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"order_9_never"}}}`)
	w := postWebhook(router, body, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaymentWebhookMissingFields(t *testing.T) {
	t.Setenv("CASHFREE_WEBHOOK_SECRET", "")
	router, _, _ := webhookTestRouter(t)

	w := postWebhook(router, []byte(`{"data":{"order":{"order_id":"order_7_abc123"}}}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postWebhook(router, []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{}}`), nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentWebhookSignatureVerification(t *testing.T) {
	t.Setenv("CASHFREE_WEBHOOK_SECRET", "whsec_test")
	router, store, _ := webhookTestRouter(t)

	body := []byte(`{"type":"PAYMENT_SUCCESS_WEBHOOK","data":{"order":{"order_id":"order_7_abc123"}}}`)

	// Unsigned request is rejected without mutation
	w := postWebhook(router, body, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	payment, err := store.FindByOrderID("order_7_abc123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)

	// Properly signed request goes through
	timestamp := fmt.Sprintf("%d", 1712345678)
	signature := payments.ComputeSignature("whsec_test", timestamp, body)
	w = postWebhook(router, body, map[string]string{
		"x-webhook-timestamp": timestamp,
		"x-webhook-signature": signature,
	})
	assert.Equal(t, http.StatusOK, w.Code)

	payment, err = store.FindByOrderID("order_7_abc123")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusSuccess, payment.Status)
}
