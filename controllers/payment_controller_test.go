package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templatehub/backend/controllers"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/payments"
)

func initiateTestRouter(t *testing.T) (*gin.Engine, *memoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	landing := &models.Template{Title: "Startup Landing", Price: 499.00}
	landing.ID = 7

	store := &memoryStore{
		payments:  map[string]*models.Payment{},
		templates: map[uint]*models.Template{7: landing},
	}
	controllers.InitPaymentService(&payments.Service{
		Store:       store,
		Gateway:     noopGateway{},
		Mailer:      &countingMailer{},
		FrontendURL: "http://localhost:5173",
	})

	router := gin.New()
	router.POST("/api/templates/:id/initiate-payment", controllers.InitiatePayment)
	return router, store
}

func postInitiate(router *gin.Engine, templateID string, payload interface{}) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, "/api/templates/"+templateID+"/initiate-payment", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestInitiatePaymentHandler(t *testing.T) {
	router, store := initiateTestRouter(t)

	w := postInitiate(router, "7", gin.H{"email": "a@b.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.Equal(t, "sess_1", data["payment_session_id"])

	orderID := data["order_id"].(string)
	assert.True(t, strings.HasPrefix(orderID, "order_7_"))

	payment, err := store.FindByOrderID(orderID)
	require.NoError(t, err)
	assert.Equal(t, models.PaymentStatusPending, payment.Status)
	assert.Equal(t, 499.00, payment.Amount)
}

func TestInitiatePaymentHandlerUnknownTemplate(t *testing.T) {
	router, store := initiateTestRouter(t)

	w := postInitiate(router, "42", gin.H{"email": "a@b.com"})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, store.payments)
}

func TestInitiatePaymentHandlerInvalidInput(t *testing.T) {
	router, store := initiateTestRouter(t)

	w := postInitiate(router, "7", gin.H{"email": "no-at-sign"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postInitiate(router, "7", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postInitiate(router, "not-a-number", gin.H{"email": "a@b.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, store.payments)
}
