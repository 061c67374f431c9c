package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// facultyRepository implements FacultyRepository interface
type facultyRepository struct {
	db *gorm.DB
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *gorm.DB) FacultyRepository {
	return &facultyRepository{db: db}
}

// Create creates a new faculty
func (r *facultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	return r.db.WithContext(ctx).Create(faculty).Error
}

// GetByID gets a faculty by ID
func (r *facultyRepository) GetByID(ctx context.Context, id uint) (*models.Faculty, error) {
	var faculty models.Faculty
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&faculty).Error
	if err != nil {
		return nil, err
	}
	return &faculty, nil
}

// Update updates a faculty
func (r *facultyRepository) Update(ctx context.Context, faculty *models.Faculty) error {
	return r.db.WithContext(ctx).Save(faculty).Error
}

// Delete removes a faculty
func (r *facultyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Faculty{}, id).Error
}

// ListAll lists every faculty
func (r *facultyRepository) ListAll(ctx context.Context) ([]*models.Faculty, error) {
	var faculties []*models.Faculty
	err := r.db.WithContext(ctx).Order("name ASC").Find(&faculties).Error
	return faculties, err
}

// ExistsByName checks if a faculty with the name exists
func (r *facultyRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Faculty{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}
