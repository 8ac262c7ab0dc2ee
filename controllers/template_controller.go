package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

// TemplateListItem represents a minimal template item for list view
type TemplateListItem struct {
	ID             uint     `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	CategoryID     uint     `json:"category_id"`
	Price          float64  `json:"price"`
	ImageURL       string   `json:"image_url"`
	TechStack      []string `json:"tech_stack"`
	LivePreviewURL string   `json:"live_preview_url"`
	AverageRating  float64  `json:"average_rating"`
	ReviewCount    int      `json:"review_count"`
}

// GetTemplates handles listing templates with category filter, search, and pagination
func GetTemplates(c *gin.Context) {
	utils.LogInfo("GetTemplates called with query params: %v", c.Request.URL.Query())

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "12"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	query := config.DB.Model(&models.Template{}).Preload("Category").Preload("Reviews")

	if categoryID := c.Query("category"); categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count templates: %v", err)
		utils.InternalServerError(c, "Failed to fetch templates", err.Error())
		return
	}

	var templates []models.Template
	if err := query.Order("created_at DESC").Offset((page - 1) * limit).Limit(limit).Find(&templates).Error; err != nil {
		utils.LogError("Failed to fetch templates: %v", err)
		utils.InternalServerError(c, "Failed to fetch templates", err.Error())
		return
	}
	utils.LogDebug("Found %d templates", len(templates))

	items := make([]TemplateListItem, 0, len(templates))
	for _, t := range templates {
		items = append(items, TemplateListItem{
			ID:             t.ID,
			Title:          t.Title,
			Description:    t.Description,
			CategoryID:     t.CategoryID,
			Price:          t.Price,
			ImageURL:       t.ImageURL,
			TechStack:      t.TechStack,
			LivePreviewURL: t.LivePreviewURL,
			AverageRating:  t.AverageRating(),
			ReviewCount:    len(t.Reviews),
		})
	}

	utils.SuccessWithPagination(c, "Templates retrieved successfully", items, total, page, limit)
}

// GetTemplateDetails retrieves details of a specific template with its reviews
func GetTemplateDetails(c *gin.Context) {
	templateID := c.Param("id")
	utils.LogInfo("GetTemplateDetails called for template ID: %s", templateID)

	var template models.Template
	if err := config.DB.Preload("Category").Preload("Reviews").First(&template, templateID).Error; err != nil {
		utils.LogError("Template not found: %v", err)
		utils.NotFound(c, "Template not found")
		return
	}

	utils.Success(c, "Template retrieved successfully", gin.H{
		"template":       template,
		"average_rating": template.AverageRating(),
	})
}
