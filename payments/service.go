// Package payments implements the payment lifecycle: order initiation with
// the gateway, webhook reconciliation, and purchase fulfillment.
package payments

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/templatehub/backend/gateway"
	"github.com/templatehub/backend/models"
)

// Sentinel errors surfaced to the HTTP layer.
var (
	ErrInvalidEmail     = errors.New("a valid email is required")
	ErrTemplateNotFound = errors.New("template not found")
	ErrPaymentNotFound  = errors.New("payment not found")
	ErrMissingEvent     = errors.New("no event or type specified")
	ErrMissingOrderID   = errors.New("no order_id found")
	ErrNotFulfillable   = errors.New("payment is not in SUCCESS status")
)

// Store is the persistence boundary for payments. Transition must be a
// status-guarded compare-and-swap: it only applies the change when the
// current status equals from, and reports whether a row was updated.
type Store interface {
	Create(payment *models.Payment) error
	FindByOrderID(orderID string) (*models.Payment, error)
	FindTemplate(templateID uint) (*models.Template, error)
	Transition(orderID, from, to string) (bool, error)
}

// Gateway creates orders with the external payment provider.
type Gateway interface {
	CreateOrder(req gateway.OrderRequest) (string, error)
}

// Mailer dispatches fulfillment and notification emails.
type Mailer interface {
	Send(to, subject, htmlBody string) error
}

// Logger is the subset of logging the service needs.
type Logger interface {
	Infof(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// Service owns the payment lifecycle. All collaborators are injected.
type Service struct {
	Store       Store
	Gateway     Gateway
	Mailer      Mailer
	Log         Logger
	FrontendURL string
	NotifyURL   string
}

// InitiateRequest is the input to Initiate.
type InitiateRequest struct {
	TemplateID uint
	Email      string
	Phone      string
}

// InitiateResult is returned to the client so it can open the gateway
// checkout UI and later poll the order status.
type InitiateResult struct {
	PaymentSessionID string `json:"payment_session_id"`
	OrderID          string `json:"order_id"`
}

// Initiate creates a PENDING payment record, registers the order with the
// gateway, and returns the checkout session. The payment row is persisted
// before the outbound call so a record exists even if the gateway call
// fails; a synchronous gateway failure marks the payment FAILED.
func (s *Service) Initiate(req InitiateRequest) (*InitiateResult, error) {
	if !strings.Contains(req.Email, "@") {
		return nil, ErrInvalidEmail
	}

	template, err := s.Store.FindTemplate(req.TemplateID)
	if err != nil {
		return nil, err
	}

	orderID := newOrderID(template.ID)
	payment := &models.Payment{
		TemplateID: template.ID,
		OrderID:    orderID,
		UserEmail:  req.Email,
		UserPhone:  req.Phone,
		Amount:     template.Price,
		Status:     models.PaymentStatusPending,
	}
	if err := s.Store.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment record: %v", err)
	}
	s.infof("Payment created: order %s, amount %.2f", orderID, payment.Amount)

	phone := req.Phone
	if phone == "" {
		phone = "9999999999"
	}
	sessionID, err := s.Gateway.CreateOrder(gateway.OrderRequest{
		OrderID:       orderID,
		Amount:        template.Price,
		Currency:      "INR",
		CustomerID:    "cust_" + localPart(req.Email),
		CustomerEmail: req.Email,
		CustomerPhone: phone,
		ReturnURL:     fmt.Sprintf("%s/payment-status?order_id=%s", s.FrontendURL, orderID),
		NotifyURL:     s.NotifyURL,
	})
	if err != nil {
		if _, terr := s.Store.Transition(orderID, models.PaymentStatusPending, models.PaymentStatusFailed); terr != nil {
			s.errorf("Failed to mark payment %s as FAILED: %v", orderID, terr)
		}
		s.errorf("Gateway order creation failed for %s: %v", orderID, err)
		return nil, err
	}

	s.infof("Gateway order created for %s", orderID)
	return &InitiateResult{PaymentSessionID: sessionID, OrderID: orderID}, nil
}

// WebhookPayload is the gateway notification body. Cashfree has shipped the
// event name under both "type" and "event"; either is accepted.
type WebhookPayload struct {
	Type  string `json:"type"`
	Event string `json:"event"`
	Data  struct {
		Order struct {
			OrderID string `json:"order_id"`
		} `json:"order"`
	} `json:"data"`
}

// Webhook outcomes.
const (
	OutcomeSuccess      = "success"
	OutcomeFailed       = "failed"
	OutcomeIgnored      = "ignored"
	OutcomeAlreadyFinal = "already_final"
)

var failureEvents = map[string]bool{
	"PAYMENT_FAILED_WEBHOOK":       true,
	"PAYMENT_CANCELLED_WEBHOOK":    true,
	"PAYMENT_USER_DROPPED_WEBHOOK": true,
}

// HandleWebhook reconciles an asynchronous gateway notification. Webhooks
// are delivered at least once and possibly concurrently, so all transitions
// go through the store's status-guarded compare-and-swap: duplicates find
// the row already terminal and become no-ops, and fulfillment is dispatched
// only by the single delivery that wins the PENDING->SUCCESS swap.
func (s *Service) HandleWebhook(payload WebhookPayload) (string, error) {
	event := payload.Type
	if event == "" {
		event = payload.Event
	}
	if event == "" {
		return "", ErrMissingEvent
	}

	orderID := payload.Data.Order.OrderID
	if orderID == "" {
		return "", ErrMissingOrderID
	}

	payment, err := s.Store.FindByOrderID(orderID)
	if err != nil {
		return "", err
	}

	switch {
	case event == "PAYMENT_SUCCESS_WEBHOOK":
		applied, err := s.Store.Transition(orderID, models.PaymentStatusPending, models.PaymentStatusSuccess)
		if err != nil {
			return "", fmt.Errorf("failed to update payment %s: %v", orderID, err)
		}
		if !applied {
			s.infof("Duplicate SUCCESS webhook for order %s ignored", orderID)
			return OutcomeAlreadyFinal, nil
		}
		s.infof("Updated payment status for order %s to SUCCESS", orderID)
		payment.Status = models.PaymentStatusSuccess
		s.fulfill(payment)
		return OutcomeSuccess, nil

	case failureEvents[event]:
		applied, err := s.Store.Transition(orderID, models.PaymentStatusPending, models.PaymentStatusFailed)
		if err != nil {
			return "", fmt.Errorf("failed to update payment %s: %v", orderID, err)
		}
		if !applied {
			s.infof("Duplicate %s webhook for order %s ignored", event, orderID)
			return OutcomeAlreadyFinal, nil
		}
		s.infof("Updated payment status for order %s to FAILED", orderID)
		return OutcomeFailed, nil

	default:
		s.infof("Unknown webhook event type: %s", event)
		return OutcomeIgnored, nil
	}
}

// ResendFulfillment re-dispatches the purchase email for an already
// successful payment. Unlike the webhook path, the mailer error is returned
// so the admin caller knows whether the resend worked.
func (s *Service) ResendFulfillment(orderID string) error {
	payment, err := s.Store.FindByOrderID(orderID)
	if err != nil {
		return err
	}
	if payment.Status != models.PaymentStatusSuccess {
		return ErrNotFulfillable
	}
	return s.sendPurchaseEmail(payment)
}

// fulfill dispatches the purchase email. The SUCCESS status is already
// durably persisted at this point, so a dispatch failure is logged and
// never propagated: the webhook must still be acknowledged.
func (s *Service) fulfill(payment *models.Payment) {
	if err := s.sendPurchaseEmail(payment); err != nil {
		s.errorf("Failed to send purchase email for order %s to %s: %v", payment.OrderID, payment.UserEmail, err)
		return
	}
	s.infof("Purchase email sent to %s for order %s", payment.UserEmail, payment.OrderID)
}

func (s *Service) sendPurchaseEmail(payment *models.Payment) error {
	subject := fmt.Sprintf("Your Template Purchase - %s", payment.Template.Title)
	return s.Mailer.Send(payment.UserEmail, subject, purchaseEmailBody(payment))
}

func purchaseEmailBody(payment *models.Payment) string {
	download := "<p>Our team will contact you shortly with your download link.</p>"
	if payment.Template.ZipFileURL != "" {
		download = fmt.Sprintf(`<p><a href="%s">Download your template</a></p>`, payment.Template.ZipFileURL)
	}
	return fmt.Sprintf(`
		<h2>Thank you for your purchase!</h2>
		<p>Your payment for <strong>%s</strong> was successful.</p>
		<p>Order ID: %s<br>Amount: %.2f</p>
		%s
		<p>Need help? Reach us at support@templatehub.com.</p>
	`, payment.Template.Title, payment.OrderID, payment.Amount, download)
}

// newOrderID builds a collision-resistant order identifier. The template id
// prefix is kept for readability; the suffix is random rather than a
// timestamp so two initiations in the same second cannot collide.
func newOrderID(templateID uint) string {
	return fmt.Sprintf("order_%d_%s", templateID, strings.ReplaceAll(uuid.New().String(), "-", ""))
}

func localPart(email string) string {
	if idx := strings.Index(email, "@"); idx > 0 {
		return email[:idx]
	}
	return email
}

func (s *Service) infof(format string, v ...interface{}) {
	if s.Log != nil {
		s.Log.Infof(format, v...)
	}
}

func (s *Service) errorf(format string, v ...interface{}) {
	if s.Log != nil {
		s.Log.Errorf(format, v...)
	}
}
