package models

import (
	"time"

	"gorm.io/gorm"
)

// Admin represents an administrator in the system
type Admin struct {
	gorm.Model
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	LastLogin time.Time `json:"last_login"`
	IsActive  bool      `json:"is_active" gorm:"default:true"`
}

// Category represents a template category
type Category struct {
	gorm.Model
	Name      string     `json:"name" gorm:"uniqueIndex;not null"`
	Templates []Template `json:"templates,omitempty"`
}

// Template represents a website template available for purchase
type Template struct {
	gorm.Model
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	CategoryID       uint     `json:"category_id"`
	Category         Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Price            float64  `json:"price"`
	ImageURL         string   `json:"image_url"`
	AdditionalImages []string `json:"additional_images" gorm:"serializer:json"`
	Features         []string `json:"features" gorm:"serializer:json"`
	TechStack        []string `json:"tech_stack" gorm:"serializer:json"`
	LivePreviewURL   string   `json:"live_preview_url"`
	ZipFileURL       string   `json:"zip_file_url"`
	Reviews          []Review `json:"reviews,omitempty"`
}

// Review represents a user review for a template
type Review struct {
	gorm.Model
	TemplateID uint   `json:"template_id"`
	User       string `json:"user"`
	Rating     int    `json:"rating"` // 1-5 stars
	Comment    string `json:"comment"`
}

// AverageRating returns the mean rating across the loaded reviews, rounded
// to one decimal place.
func (t *Template) AverageRating() float64 {
	if len(t.Reviews) == 0 {
		return 0
	}
	var sum int
	for _, review := range t.Reviews {
		sum += review.Rating
	}
	avg := float64(sum) / float64(len(t.Reviews))
	return float64(int(avg*10+0.5)) / 10
}
