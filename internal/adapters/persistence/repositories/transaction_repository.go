package repositories

import (
	"context"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// transactionRepository implements TransactionRepository interface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create creates a new transaction
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Create(transaction).Error
}

// GetByID gets a transaction by ID
func (r *transactionRepository) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	var transaction models.Transaction
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&transaction).Error
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

// Update updates a transaction
func (r *transactionRepository) Update(ctx context.Context, transaction *models.Transaction) error {
	return r.db.WithContext(ctx).Save(transaction).Error
}

// ListByEventID lists transactions of an event with pagination
func (r *transactionRepository) ListByEventID(ctx context.Context, eventID uint, offset, limit int) ([]*models.Transaction, int64, error) {
	var transactions []*models.Transaction
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("event_id = ?", eventID)
	query.Count(&total)

	err := query.
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&transactions).Error

	return transactions, total, err
}

// ListByEventIDAndType lists transactions of an event filtered by type
func (r *transactionRepository) ListByEventIDAndType(ctx context.Context, eventID uint, transactionType string) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND type = ?", eventID, transactionType).
		Find(&transactions).Error
	return transactions, err
}

// ListByCreatedAtWindow lists transactions created in [inclusiveFrom, exclusiveTo)
func (r *transactionRepository) ListByCreatedAtWindow(ctx context.Context, inclusiveFrom, exclusiveTo time.Time) ([]*models.Transaction, error) {
	var transactions []*models.Transaction
	err := r.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", inclusiveFrom, exclusiveTo).
		Find(&transactions).Error
	return transactions, err
}
