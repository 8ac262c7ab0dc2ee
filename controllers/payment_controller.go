package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/gateway"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/payments"
	"github.com/templatehub/backend/utils"
)

var paymentService *payments.Service

// InitPaymentService wires the payment service used by the payment and
// webhook handlers. Called once from main.
func InitPaymentService(service *payments.Service) {
	paymentService = service
}

// InitiatePaymentRequest represents the payment initiation request body
type InitiatePaymentRequest struct {
	Email string `json:"email" binding:"required"`
	Phone string `json:"phone"`
}

// InitiatePayment handles POST /templates/:id/initiate-payment
func InitiatePayment(c *gin.Context) {
	utils.LogInfo("InitiatePayment called for template %s", c.Param("id"))

	templateID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.LogError("Invalid template ID: %v", err)
		utils.BadRequest(c, "Invalid template ID", err.Error())
		return
	}

	var req InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid initiate payment request: %v", err)
		utils.BadRequest(c, "A valid email is required.", err.Error())
		return
	}

	result, err := paymentService.Initiate(payments.InitiateRequest{
		TemplateID: uint(templateID),
		Email:      req.Email,
		Phone:      req.Phone,
	})
	if err != nil {
		var gatewayErr *gateway.Error
		switch {
		case errors.Is(err, payments.ErrInvalidEmail):
			utils.BadRequest(c, "A valid email is required.", nil)
		case errors.Is(err, payments.ErrTemplateNotFound):
			utils.NotFound(c, "Template not found")
		case errors.As(err, &gatewayErr):
			utils.LogError("Gateway failure for template %d: %v", templateID, err)
			utils.BadGateway(c, "Failed to initiate payment.", gatewayErr.Message)
		default:
			utils.LogError("Failed to initiate payment for template %d: %v", templateID, err)
			utils.InternalServerError(c, "Failed to initiate payment.", err.Error())
		}
		return
	}

	utils.LogInfo("Payment initiated for order %s", result.OrderID)
	utils.Success(c, "Payment initiated successfully", result)
}

// GetPaymentStatus handles GET /payments/:orderId - the frontend return_url
// polls this after the gateway redirects back.
func GetPaymentStatus(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogDebug("Fetching payment status for order %s", orderID)

	var payment models.Payment
	if err := config.DB.Preload("Template").Where("order_id = ?", orderID).First(&payment).Error; err != nil {
		utils.LogError("Payment not found for order %s: %v", orderID, err)
		utils.NotFound(c, "Payment not found")
		return
	}

	utils.Success(c, "Payment retrieved successfully", gin.H{
		"order_id":       payment.OrderID,
		"status":         payment.Status,
		"amount":         payment.Amount,
		"template_id":    payment.TemplateID,
		"template_title": payment.Template.Title,
		"created_at":     payment.CreatedAt,
		"updated_at":     payment.UpdatedAt,
	})
}
