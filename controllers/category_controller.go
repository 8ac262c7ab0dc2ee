package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

// GetCategories handles listing all categories
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	var categories []models.Category
	if err := config.DB.Order("name ASC").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories", err.Error())
		return
	}

	utils.Success(c, "Categories retrieved successfully", categories)
}

// CreateCategoryRequest represents the category creation request
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateCategory handles creating a new category (admin only)
func CreateCategory(c *gin.Context) {
	utils.LogInfo("CreateCategory called")

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid category request: %v", err)
		utils.BadRequest(c, "Category name is required", err.Error())
		return
	}

	category := models.Category{Name: req.Name}
	if err := config.DB.Create(&category).Error; err != nil {
		utils.LogError("Failed to create category: %v", err)
		utils.Conflict(c, "Failed to create category", err.Error())
		return
	}

	utils.LogInfo("Category created: %s", category.Name)
	utils.Created(c, "Category created successfully", category)
}
