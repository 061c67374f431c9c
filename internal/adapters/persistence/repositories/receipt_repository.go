package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// receiptRepository implements ReceiptRepository interface
type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) ReceiptRepository {
	return &receiptRepository{db: db}
}

// Create creates a new receipt record
func (r *receiptRepository) Create(ctx context.Context, receipt *models.Receipt) error {
	return r.db.WithContext(ctx).Create(receipt).Error
}

// GetByID gets a receipt record by ID
func (r *receiptRepository) GetByID(ctx context.Context, id uint) (*models.Receipt, error) {
	var receipt models.Receipt
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&receipt).Error
	if err != nil {
		return nil, err
	}
	return &receipt, nil
}

// Delete removes a receipt record
func (r *receiptRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Receipt{}, id).Error
}
