package models

import (
	"time"
)

// Support inquiry types
const (
	InquiryTypePaymentFailure   = "PAYMENT_FAILURE"
	InquiryTypePaymentStatus    = "PAYMENT_STATUS"
	InquiryTypeTemplateDownload = "TEMPLATE_DOWNLOAD"
	InquiryTypeGeneral          = "GENERAL"
)

// Support inquiry statuses
const (
	InquiryStatusOpen       = "OPEN"
	InquiryStatusInProgress = "IN_PROGRESS"
	InquiryStatusResolved   = "RESOLVED"
)

// SupportInquiry represents a user support request, optionally linked to a
// payment by order id.
type SupportInquiry struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	InquiryID   string    `json:"inquiry_id" gorm:"uniqueIndex;not null"`
	Email       string    `json:"email"`
	InquiryType string    `json:"inquiry_type"`
	Description string    `json:"description"`
	OrderID     string    `json:"order_id"` // optional, links to a Payment
	Status      string    `json:"status" gorm:"default:OPEN"`
	Response    string    `json:"response"` // admin response
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
