package models

import (
	"time"
)

// Payment statuses. PENDING is the only legal initial value; SUCCESS and
// FAILED are terminal.
const (
	PaymentStatusPending = "PENDING"
	PaymentStatusSuccess = "SUCCESS"
	PaymentStatusFailed  = "FAILED"
)

// Payment represents one purchase attempt for a template. OrderID is the
// join key the gateway sends back in webhook notifications.
type Payment struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TemplateID uint      `json:"template_id"`
	Template   Template  `json:"template,omitempty" gorm:"foreignKey:TemplateID"`
	OrderID    string    `json:"order_id" gorm:"uniqueIndex;not null"`
	UserEmail  string    `json:"user_email"`
	UserPhone  string    `json:"user_phone"`
	Amount     float64   `json:"amount"`
	Status     string    `json:"status"` // PENDING, SUCCESS, FAILED
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
