package repositories

import (
	"context"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// eventAttendeeRepository implements EventAttendeeRepository interface
type eventAttendeeRepository struct {
	db *gorm.DB
}

// NewEventAttendeeRepository creates a new event attendee repository
func NewEventAttendeeRepository(db *gorm.DB) EventAttendeeRepository {
	return &eventAttendeeRepository{db: db}
}

// Create creates a new event attendee
func (r *eventAttendeeRepository) Create(ctx context.Context, attendee *models.EventAttendee) error {
	return r.db.WithContext(ctx).Create(attendee).Error
}

// GetByEventIDAndUserID gets an attendee registration by event and user
func (r *eventAttendeeRepository) GetByEventIDAndUserID(ctx context.Context, eventID, userID uint) (*models.EventAttendee, error) {
	var attendee models.EventAttendee
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", eventID, userID).
		First(&attendee).Error
	if err != nil {
		return nil, err
	}
	return &attendee, nil
}

// ListByEventID lists attendees of an event with pagination
func (r *eventAttendeeRepository) ListByEventID(ctx context.Context, eventID uint, offset, limit int) ([]*models.EventAttendee, int64, error) {
	var attendees []*models.EventAttendee
	var total int64

	query := r.db.WithContext(ctx).Model(&models.EventAttendee{}).
		Where("event_id = ?", eventID)
	query.Count(&total)

	err := query.
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&attendees).Error

	return attendees, total, err
}

// ListByUserID lists event registrations of a user
func (r *eventAttendeeRepository) ListByUserID(ctx context.Context, userID uint) ([]*models.EventAttendee, error) {
	var attendees []*models.EventAttendee
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&attendees).Error
	return attendees, err
}
