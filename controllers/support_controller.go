package controllers

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

var inquiryTypes = map[string]bool{
	models.InquiryTypePaymentFailure:   true,
	models.InquiryTypePaymentStatus:    true,
	models.InquiryTypeTemplateDownload: true,
	models.InquiryTypeGeneral:          true,
}

var inquiryStatuses = map[string]bool{
	models.InquiryStatusOpen:       true,
	models.InquiryStatusInProgress: true,
	models.InquiryStatusResolved:   true,
}

// CreateInquiryRequest represents the support inquiry submission
type CreateInquiryRequest struct {
	Email       string `json:"email" binding:"required"`
	InquiryType string `json:"inquiry_type" binding:"required"`
	Description string `json:"description" binding:"required"`
	OrderID     string `json:"order_id"`
}

// CreateInquiry handles POST /support
func CreateInquiry(c *gin.Context) {
	utils.LogInfo("CreateInquiry called")

	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid inquiry request: %v", err)
		utils.BadRequest(c, "Email, inquiry type, and description are required", err.Error())
		return
	}

	if !utils.ValidEmail(req.Email) {
		utils.BadRequest(c, "A valid email is required.", nil)
		return
	}
	if !inquiryTypes[req.InquiryType] {
		utils.BadRequest(c, "Invalid inquiry type", nil)
		return
	}

	// An inquiry may link to a payment; a link to an order this system never
	// created is a client error, not something to store.
	if req.OrderID != "" {
		var payment models.Payment
		if err := config.DB.Where("order_id = ?", req.OrderID).First(&payment).Error; err != nil {
			utils.LogError("Inquiry references unknown order %s", req.OrderID)
			utils.BadRequest(c, "Order not found for the given order_id", nil)
			return
		}
	}

	inquiry := models.SupportInquiry{
		InquiryID:   newInquiryID(),
		Email:       req.Email,
		InquiryType: req.InquiryType,
		Description: req.Description,
		OrderID:     req.OrderID,
		Status:      models.InquiryStatusOpen,
	}
	if err := config.DB.Create(&inquiry).Error; err != nil {
		utils.LogError("Failed to create inquiry: %v", err)
		utils.InternalServerError(c, "Failed to create inquiry", err.Error())
		return
	}
	utils.LogInfo("Inquiry created: %s", inquiry.InquiryID)

	sendSupportEmails(&inquiry)

	utils.Created(c, "Inquiry submitted successfully. You will receive a confirmation email.", gin.H{
		"inquiry_id": inquiry.InquiryID,
	})
}

// TrackInquiryRequest represents the inquiry tracking request
type TrackInquiryRequest struct {
	InquiryID string `json:"inquiry_id" binding:"required"`
	Email     string `json:"email" binding:"required"`
}

// TrackInquiry handles POST /support/track
func TrackInquiry(c *gin.Context) {
	utils.LogInfo("TrackInquiry called")

	var req TrackInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid track request: %v", err)
		utils.BadRequest(c, "Inquiry ID and email are required.", err.Error())
		return
	}

	var inquiry models.SupportInquiry
	if err := config.DB.Where("inquiry_id = ? AND email = ?", req.InquiryID, req.Email).First(&inquiry).Error; err != nil {
		utils.LogError("Inquiry not found: %s", req.InquiryID)
		utils.NotFound(c, "Inquiry not found or email does not match.")
		return
	}

	utils.Success(c, "Inquiry retrieved successfully", inquiry)
}

// RespondToInquiryRequest represents the admin response request
type RespondToInquiryRequest struct {
	Response string `json:"response" binding:"required"`
	Status   string `json:"status"`
}

// RespondToInquiry handles POST /admin/support/:id/respond (admin only)
func RespondToInquiry(c *gin.Context) {
	inquiryID := c.Param("id")
	utils.LogInfo("RespondToInquiry called for inquiry %s", inquiryID)

	var req RespondToInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid respond request: %v", err)
		utils.BadRequest(c, "Response is required.", err.Error())
		return
	}
	if req.Status == "" {
		req.Status = models.InquiryStatusResolved
	}
	if !inquiryStatuses[req.Status] {
		utils.BadRequest(c, "Invalid status.", nil)
		return
	}

	var inquiry models.SupportInquiry
	if err := config.DB.Where("inquiry_id = ?", inquiryID).First(&inquiry).Error; err != nil {
		utils.LogError("Inquiry not found: %s", inquiryID)
		utils.NotFound(c, "Inquiry not found")
		return
	}

	inquiry.Response = req.Response
	inquiry.Status = req.Status
	if err := config.DB.Save(&inquiry).Error; err != nil {
		utils.LogError("Failed to update inquiry %s: %v", inquiryID, err)
		utils.InternalServerError(c, "Failed to update inquiry", err.Error())
		return
	}
	utils.LogInfo("Inquiry %s updated to %s", inquiryID, inquiry.Status)

	sendResponseEmail(&inquiry)

	utils.Success(c, "Response saved and emailed to user.", gin.H{
		"inquiry_id": inquiry.InquiryID,
		"status":     inquiry.Status,
	})
}

func newInquiryID() string {
	return fmt.Sprintf("SUPP-%s", strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:10]))
}
