package payments

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/templatehub/backend/models"
)

// GormStore is the Postgres-backed payment store.
type GormStore struct {
	DB *gorm.DB
}

// Create persists a new payment row.
func (s *GormStore) Create(payment *models.Payment) error {
	return s.DB.Create(payment).Error
}

// FindByOrderID loads a payment with its template by gateway order id.
func (s *GormStore) FindByOrderID(orderID string) (*models.Payment, error) {
	var payment models.Payment
	err := s.DB.Preload("Template").Where("order_id = ?", orderID).First(&payment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPaymentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load payment %s: %v", orderID, err)
	}
	return &payment, nil
}

// FindTemplate resolves a catalog template by id.
func (s *GormStore) FindTemplate(templateID uint) (*models.Template, error) {
	var template models.Template
	err := s.DB.First(&template, templateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTemplateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load template %d: %v", templateID, err)
	}
	return &template, nil
}

// Transition applies a status change only if the current status matches
// from. The single guarded UPDATE makes concurrent duplicate webhooks safe:
// exactly one delivery observes RowsAffected == 1 and the rest see the row
// already moved on.
func (s *GormStore) Transition(orderID, from, to string) (bool, error) {
	result := s.DB.Model(&models.Payment{}).
		Where("order_id = ? AND status = ?", orderID, from).
		Update("status", to)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}
