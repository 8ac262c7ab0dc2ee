// Package gateway implements the outbound Cashfree payment gateway client.
package gateway

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiVersion = "2023-08-01"

// OrderRequest carries the fields Cashfree needs to create a payment order.
type OrderRequest struct {
	OrderID       string
	Amount        float64
	Currency      string
	CustomerID    string
	CustomerEmail string
	CustomerPhone string
	ReturnURL     string
	NotifyURL     string
}

// Error is returned when the gateway rejects an order or responds in an
// unexpected shape. Message carries the gateway-provided reason when present.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("gateway error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("gateway error (status %d)", e.StatusCode)
}

// Client talks to the Cashfree orders API. Credentials travel in request
// headers and are never logged.
type Client struct {
	BaseURL    string
	AppID      string
	SecretKey  string
	HTTPClient *http.Client
}

// NewClient creates a gateway client with a bounded request timeout.
func NewClient(baseURL, appID, secretKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		BaseURL:    baseURL,
		AppID:      appID,
		SecretKey:  secretKey,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type orderPayload struct {
	OrderID         string          `json:"order_id"`
	OrderAmount     float64         `json:"order_amount"`
	OrderCurrency   string          `json:"order_currency"`
	CustomerDetails customerDetails `json:"customer_details"`
	OrderMeta       orderMeta       `json:"order_meta"`
}

type customerDetails struct {
	CustomerID    string `json:"customer_id"`
	CustomerEmail string `json:"customer_email"`
	CustomerPhone string `json:"customer_phone"`
}

type orderMeta struct {
	ReturnURL string `json:"return_url"`
	NotifyURL string `json:"notify_url"`
}

type orderResponse struct {
	PaymentSessionID string `json:"payment_session_id"`
	Message          string `json:"message"`
}

// CreateOrder registers an order with Cashfree and returns the payment
// session id the frontend uses to open the checkout UI.
func (c *Client) CreateOrder(req OrderRequest) (string, error) {
	payload := orderPayload{
		OrderID:       req.OrderID,
		OrderAmount:   req.Amount,
		OrderCurrency: req.Currency,
		CustomerDetails: customerDetails{
			CustomerID:    req.CustomerID,
			CustomerEmail: req.CustomerEmail,
			CustomerPhone: req.CustomerPhone,
		},
		OrderMeta: orderMeta{
			ReturnURL: req.ReturnURL,
			NotifyURL: req.NotifyURL,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode order payload: %v", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, c.BaseURL+"/pg/orders", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build order request: %v", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-version", apiVersion)
	httpReq.Header.Set("x-client-id", c.AppID)
	httpReq.Header.Set("x-client-secret", c.SecretKey)

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return "", &Error{Message: fmt.Sprintf("request failed: %v", err)}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{StatusCode: resp.StatusCode, Message: fmt.Sprintf("failed to read response: %v", err)}
	}

	var orderResp orderResponse
	if err := json.Unmarshal(respBody, &orderResp); err != nil && resp.StatusCode == http.StatusOK {
		return "", &Error{StatusCode: resp.StatusCode, Message: "invalid response body"}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{StatusCode: resp.StatusCode, Message: orderResp.Message}
	}

	if orderResp.PaymentSessionID == "" {
		return "", &Error{StatusCode: resp.StatusCode, Message: "no payment session in response"}
	}

	return orderResp.PaymentSessionID, nil
}
