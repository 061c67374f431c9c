package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// yearSessionRepository implements YearSessionRepository interface
type yearSessionRepository struct {
	db *gorm.DB
}

// NewYearSessionRepository creates a new year session repository
func NewYearSessionRepository(db *gorm.DB) YearSessionRepository {
	return &yearSessionRepository{db: db}
}

// Create creates a new year session master row
func (r *yearSessionRepository) Create(ctx context.Context, yearSession *models.YearSession) error {
	return r.db.WithContext(ctx).Create(yearSession).Error
}

// GetByID gets a year session by ID
func (r *yearSessionRepository) GetByID(ctx context.Context, id uint) (*models.YearSession, error) {
	var yearSession models.YearSession
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&yearSession).Error
	if err != nil {
		return nil, err
	}
	return &yearSession, nil
}

// GetByValue gets a year session by its string value
func (r *yearSessionRepository) GetByValue(ctx context.Context, value string) (*models.YearSession, error) {
	var yearSession models.YearSession
	err := r.db.WithContext(ctx).Where("value = ?", value).First(&yearSession).Error
	if err != nil {
		return nil, err
	}
	return &yearSession, nil
}

// GetLatest gets the most recent year session row
func (r *yearSessionRepository) GetLatest(ctx context.Context) (*models.YearSession, error) {
	var yearSession models.YearSession
	err := r.db.WithContext(ctx).Order("value DESC").First(&yearSession).Error
	if err != nil {
		return nil, err
	}
	return &yearSession, nil
}

// ListAll lists every year session row
func (r *yearSessionRepository) ListAll(ctx context.Context) ([]*models.YearSession, error) {
	var yearSessions []*models.YearSession
	err := r.db.WithContext(ctx).Order("value DESC").Find(&yearSessions).Error
	return yearSessions, err
}
