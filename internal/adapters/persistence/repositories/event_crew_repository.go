package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// eventCrewRepository implements EventCrewRepository interface
type eventCrewRepository struct {
	db *gorm.DB
}

// NewEventCrewRepository creates a new event crew repository
func NewEventCrewRepository(db *gorm.DB) EventCrewRepository {
	return &eventCrewRepository{db: db}
}

// Create creates a new event crew assignment
func (r *eventCrewRepository) Create(ctx context.Context, crew *models.EventCrew) error {
	return r.db.WithContext(ctx).Create(crew).Error
}

// GetByID gets an event crew assignment by ID
func (r *eventCrewRepository) GetByID(ctx context.Context, id uint) (*models.EventCrew, error) {
	var crew models.EventCrew
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&crew).Error
	if err != nil {
		return nil, err
	}
	return &crew, nil
}

// Delete removes an event crew assignment
func (r *eventCrewRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.EventCrew{}, id).Error
}

// ListByEventID lists crew assignments of an event
func (r *eventCrewRepository) ListByEventID(ctx context.Context, eventID uint) ([]*models.EventCrew, error) {
	var crews []*models.EventCrew
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("event_id = ?", eventID).
		Find(&crews).Error
	return crews, err
}

// ListByUserID lists crew assignments of a user
func (r *eventCrewRepository) ListByUserID(ctx context.Context, userID uint) ([]*models.EventCrew, error) {
	var crews []*models.EventCrew
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&crews).Error
	return crews, err
}

// GetByEventIDAndUserID gets a crew assignment by event and user
func (r *eventCrewRepository) GetByEventIDAndUserID(ctx context.Context, eventID, userID uint) (*models.EventCrew, error) {
	var crew models.EventCrew
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&crew).Error
	if err != nil {
		return nil, err
	}
	return &crew, nil
}

// ExistsByEventIDAndUserIDAndRole checks if a crew assignment with the role exists
func (r *eventCrewRepository) ExistsByEventIDAndUserIDAndRole(ctx context.Context, eventID, userID uint, role string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventCrew{}).
		Where("event_id = ? AND user_id = ? AND role = ?", eventID, userID, role).
		Count(&count).Error
	return count > 0, err
}

// ExistsByEventIDAndUserID checks if any crew assignment exists
func (r *eventCrewRepository) ExistsByEventIDAndUserID(ctx context.Context, eventID, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.EventCrew{}).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		Count(&count).Error
	return count > 0, err
}
