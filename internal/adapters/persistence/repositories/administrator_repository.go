package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// administratorRepository implements AdministratorRepository interface
type administratorRepository struct {
	db *gorm.DB
}

// NewAdministratorRepository creates a new administrator repository
func NewAdministratorRepository(db *gorm.DB) AdministratorRepository {
	return &administratorRepository{db: db}
}

// Create creates a new administrator record
func (r *administratorRepository) Create(ctx context.Context, admin *models.Administrator) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

// GetByID gets an administrator record by ID
func (r *administratorRepository) GetByID(ctx context.Context, id uint) (*models.Administrator, error) {
	var admin models.Administrator
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Update updates an administrator record
func (r *administratorRepository) Update(ctx context.Context, admin *models.Administrator) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

// Delete removes an administrator record
func (r *administratorRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Administrator{}, id).Error
}

// List lists administrator records with pagination
func (r *administratorRepository) List(ctx context.Context, offset, limit int) ([]*models.Administrator, int64, error) {
	var admins []*models.Administrator
	var total int64

	r.db.WithContext(ctx).Model(&models.Administrator{}).Count(&total)

	err := r.db.WithContext(ctx).
		Preload("User").
		Order("year_session DESC").
		Offset(offset).
		Limit(limit).
		Find(&admins).Error

	return admins, total, err
}

// ListByUserID lists administrator records of a user
func (r *administratorRepository) ListByUserID(ctx context.Context, userID uint) ([]*models.Administrator, error) {
	var admins []*models.Administrator
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("year_session DESC").
		Find(&admins).Error
	return admins, err
}

// ExistsByUserIDAndYearSessionAndStatus checks for any administrator role of the
// user in the session with the status
func (r *administratorRepository) ExistsByUserIDAndYearSessionAndStatus(ctx context.Context, userID uint, yearSession, status string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Administrator{}).
		Where("user_id = ? AND year_session = ? AND status = ?", userID, yearSession, status).
		Count(&count).Error
	return count > 0, err
}

// ExistsByUserIDAndRoleAndYearSessionAndStatus checks for a specific administrator role
func (r *administratorRepository) ExistsByUserIDAndRoleAndYearSessionAndStatus(ctx context.Context, userID uint, role, yearSession, status string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Administrator{}).
		Where("user_id = ? AND role = ? AND year_session = ? AND status = ?", userID, role, yearSession, status).
		Count(&count).Error
	return count > 0, err
}
