package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/payments"
	"github.com/templatehub/backend/utils"
)

// ListPayments handles GET /admin/payments with optional status and search filters
func ListPayments(c *gin.Context) {
	utils.LogInfo("ListPayments called")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	query := config.DB.Model(&models.Payment{}).Preload("Template")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("order_id ILIKE ? OR user_email ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	var records []models.Payment
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&records).Error; err != nil {
		utils.LogError("Failed to fetch payments: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", err.Error())
		return
	}

	utils.SuccessWithPagination(c, "Payments retrieved successfully", records, total, page, limit)
}

// ResendFulfillment handles POST /admin/payments/:orderId/resend - the
// recovery path when the purchase email failed or got lost. The resend is
// an explicit admin action, never a persistence side effect.
func ResendFulfillment(c *gin.Context) {
	orderID := c.Param("orderId")
	utils.LogInfo("ResendFulfillment called for order %s", orderID)

	err := paymentService.ResendFulfillment(orderID)
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrPaymentNotFound):
			utils.NotFound(c, "Payment not found")
		case errors.Is(err, payments.ErrNotFulfillable):
			utils.BadRequest(c, "Payment is not in SUCCESS status", nil)
		default:
			utils.LogError("Failed to resend fulfillment for order %s: %v", orderID, err)
			utils.InternalServerError(c, "Failed to resend purchase email", err.Error())
		}
		return
	}

	utils.LogInfo("Fulfillment email resent for order %s", orderID)
	utils.Success(c, "Purchase email resent successfully", gin.H{"order_id": orderID})
}
