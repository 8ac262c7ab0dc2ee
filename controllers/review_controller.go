package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

// SubmitReviewRequest represents the review submission request
type SubmitReviewRequest struct {
	TemplateID uint   `json:"template" binding:"required"`
	User       string `json:"user" binding:"required"`
	Rating     int    `json:"rating" binding:"required,min=1,max=5"`
	Comment    string `json:"comment" binding:"required"`
}

// SubmitReview handles POST /reviews/submit and returns the refreshed template
func SubmitReview(c *gin.Context) {
	utils.LogInfo("SubmitReview called")

	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review request: %v", err)
		utils.BadRequest(c, "Invalid review", err.Error())
		return
	}

	var template models.Template
	if err := config.DB.First(&template, req.TemplateID).Error; err != nil {
		utils.LogError("Template not found for review: %v", err)
		utils.NotFound(c, "Template not found")
		return
	}

	review := models.Review{
		TemplateID: req.TemplateID,
		User:       req.User,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review: %v", err)
		utils.InternalServerError(c, "Failed to create review", err.Error())
		return
	}
	utils.LogInfo("Review created for template ID: %d", req.TemplateID)

	// Reload with reviews so the client can refresh the rating in place
	if err := config.DB.Preload("Reviews").First(&template, req.TemplateID).Error; err != nil {
		utils.LogError("Failed to reload template: %v", err)
		utils.InternalServerError(c, "Failed to reload template", err.Error())
		return
	}

	utils.Created(c, "Review submitted successfully", gin.H{
		"review":         review,
		"template":       template,
		"average_rating": template.AverageRating(),
	})
}

// GetTemplateReviews handles fetching reviews for a template
func GetTemplateReviews(c *gin.Context) {
	templateID := c.Param("id")
	utils.LogDebug("Fetching reviews for template ID: %s", templateID)

	var reviews []models.Review
	if err := config.DB.Where("template_id = ?", templateID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", err.Error())
		return
	}

	utils.Success(c, "Reviews retrieved successfully", reviews)
}
