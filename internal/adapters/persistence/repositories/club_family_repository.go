package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// clubFamilyRepository implements ClubFamilyRepository interface
type clubFamilyRepository struct {
	db *gorm.DB
}

// NewClubFamilyRepository creates a new club family repository
func NewClubFamilyRepository(db *gorm.DB) ClubFamilyRepository {
	return &clubFamilyRepository{db: db}
}

// Create creates a new club family
func (r *clubFamilyRepository) Create(ctx context.Context, family *models.ClubFamily) error {
	return r.db.WithContext(ctx).Create(family).Error
}

// GetByID gets a club family by ID
func (r *clubFamilyRepository) GetByID(ctx context.Context, id uint) (*models.ClubFamily, error) {
	var family models.ClubFamily
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&family).Error
	if err != nil {
		return nil, err
	}
	return &family, nil
}

// Update updates a club family
func (r *clubFamilyRepository) Update(ctx context.Context, family *models.ClubFamily) error {
	return r.db.WithContext(ctx).Save(family).Error
}

// Delete removes a club family
func (r *clubFamilyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ClubFamily{}, id).Error
}

// ListAll lists every club family
func (r *clubFamilyRepository) ListAll(ctx context.Context) ([]*models.ClubFamily, error) {
	var families []*models.ClubFamily
	err := r.db.WithContext(ctx).Order("name ASC").Find(&families).Error
	return families, err
}
