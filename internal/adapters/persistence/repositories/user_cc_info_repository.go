package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// userCCInfoRepository implements UserCCInfoRepository interface
type userCCInfoRepository struct {
	db *gorm.DB
}

// NewUserCCInfoRepository creates a new club family role repository
func NewUserCCInfoRepository(db *gorm.DB) UserCCInfoRepository {
	return &userCCInfoRepository{db: db}
}

// Create creates a new family role record
func (r *userCCInfoRepository) Create(ctx context.Context, info *models.UserCCInfo) error {
	return r.db.WithContext(ctx).Create(info).Error
}

// GetByID gets a family role record by ID
func (r *userCCInfoRepository) GetByID(ctx context.Context, id uint) (*models.UserCCInfo, error) {
	var info models.UserCCInfo
	err := r.db.WithContext(ctx).Preload("ClubFamily").Where("id = ?", id).First(&info).Error
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Update updates a family role record
func (r *userCCInfoRepository) Update(ctx context.Context, info *models.UserCCInfo) error {
	return r.db.WithContext(ctx).Save(info).Error
}

// Delete removes a family role record
func (r *userCCInfoRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.UserCCInfo{}, id).Error
}

// ListByUserID lists all family role records of a user
func (r *userCCInfoRepository) ListByUserID(ctx context.Context, userID uint) ([]*models.UserCCInfo, error) {
	var infos []*models.UserCCInfo
	err := r.db.WithContext(ctx).
		Preload("ClubFamily").
		Where("user_id = ?", userID).
		Order("year_session DESC").
		Find(&infos).Error
	return infos, err
}

// ListByUserIDAndYearSession lists family role records of a user in one session
func (r *userCCInfoRepository) ListByUserIDAndYearSession(ctx context.Context, userID uint, yearSession string) ([]*models.UserCCInfo, error) {
	var infos []*models.UserCCInfo
	err := r.db.WithContext(ctx).
		Preload("ClubFamily").
		Where("user_id = ? AND year_session = ?", userID, yearSession).
		Find(&infos).Error
	return infos, err
}
