package controllers

import (
	"github.com/templatehub/backend/config"
	"github.com/templatehub/backend/models"
	"github.com/templatehub/backend/utils"
)

// SeedCatalog creates a default category and a couple of sample templates
// when the catalog is empty, so a fresh deployment has something to show.
func SeedCatalog() error {
	var count int64
	if err := config.DB.Model(&models.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	category := models.Category{Name: "Landing Pages"}
	if err := config.DB.Create(&category).Error; err != nil {
		return err
	}

	templates := []models.Template{
		{
			Title:       "Startup Landing",
			Description: "A clean single-page landing template for product launches.",
			CategoryID:  category.ID,
			Price:       499.00,
			Features:    []string{"Responsive Design", "SEO Optimized"},
			TechStack:   []string{"React", "Tailwind CSS"},
		},
		{
			Title:       "Portfolio Minimal",
			Description: "A minimal portfolio template for designers and developers.",
			CategoryID:  category.ID,
			Price:       299.00,
			Features:    []string{"Dark Mode", "Responsive Design"},
			TechStack:   []string{"Next.js", "Tailwind CSS"},
		},
	}
	if err := config.DB.Create(&templates).Error; err != nil {
		return err
	}

	utils.LogInfo("Seeded catalog with default category and %d templates", len(templates))
	return nil
}
