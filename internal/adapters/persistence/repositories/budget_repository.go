package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// budgetRepository implements BudgetRepository interface
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository
func NewBudgetRepository(db *gorm.DB) BudgetRepository {
	return &budgetRepository{db: db}
}

// Create creates a new budget line
func (r *budgetRepository) Create(ctx context.Context, budget *models.Budget) error {
	return r.db.WithContext(ctx).Create(budget).Error
}

// GetByID gets a budget line by ID
func (r *budgetRepository) GetByID(ctx context.Context, id uint) (*models.Budget, error) {
	var budget models.Budget
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&budget).Error
	if err != nil {
		return nil, err
	}
	return &budget, nil
}

// Update updates a budget line
func (r *budgetRepository) Update(ctx context.Context, budget *models.Budget) error {
	return r.db.WithContext(ctx).Save(budget).Error
}

// Delete removes a budget line
func (r *budgetRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Budget{}, id).Error
}

// ListByEventID lists budget lines of an event
func (r *budgetRepository) ListByEventID(ctx context.Context, eventID uint) ([]*models.Budget, error) {
	var budgets []*models.Budget
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&budgets).Error
	return budgets, err
}

// ListByEventIDAndType lists budget lines of an event filtered by type
func (r *budgetRepository) ListByEventIDAndType(ctx context.Context, eventID uint, transactionType string) ([]*models.Budget, error) {
	var budgets []*models.Budget
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND type = ?", eventID, transactionType).
		Find(&budgets).Error
	return budgets, err
}
