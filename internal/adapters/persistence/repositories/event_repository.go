package repositories

import (
	"context"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// eventRepository implements EventRepository interface
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository
func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

// Create creates a new event
func (r *eventRepository) Create(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetByID gets an event by ID
func (r *eventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Update updates an event
func (r *eventRepository) Update(ctx context.Context, event *models.Event) error {
	return r.db.WithContext(ctx).Save(event).Error
}

// Delete soft deletes an event
func (r *eventRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Event{}, id).Error
}

// List lists events with pagination
func (r *eventRepository) List(ctx context.Context, offset, limit int) ([]*models.Event, int64, error) {
	var events []*models.Event
	var total int64

	r.db.WithContext(ctx).Model(&models.Event{}).Count(&total)

	err := r.db.WithContext(ctx).
		Order("start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}

// ListByStartDateRange lists events whose start date falls in [from, to)
func (r *eventRepository) ListByStartDateRange(ctx context.Context, from, to time.Time, offset, limit int) ([]*models.Event, int64, error) {
	var events []*models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("start_date >= ? AND start_date < ?", from, to)
	query.Count(&total)

	err := query.
		Order("start_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}

// ListUpcoming lists events starting after now
func (r *eventRepository) ListUpcoming(ctx context.Context, offset, limit int) ([]*models.Event, int64, error) {
	var events []*models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("start_date > ?", time.Now())
	query.Count(&total)

	err := query.
		Order("start_date ASC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}

// ListPast lists events that already started
func (r *eventRepository) ListPast(ctx context.Context, offset, limit int) ([]*models.Event, int64, error) {
	var events []*models.Event
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Event{}).
		Where("start_date <= ?", time.Now())
	query.Count(&total)

	err := query.
		Order("start_date DESC").
		Offset(offset).
		Limit(limit).
		Find(&events).Error

	return events, total, err
}

// ListAll lists every event without pagination
func (r *eventRepository) ListAll(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.WithContext(ctx).Order("start_date DESC").Find(&events).Error
	return events, err
}

// ListEndedWithStatus lists events with the given status that ended before the instant
func (r *eventRepository) ListEndedWithStatus(ctx context.Context, before time.Time, status string) ([]*models.Event, error) {
	var events []*models.Event
	err := r.db.WithContext(ctx).
		Where("end_date < ? AND status = ?", before, status).
		Find(&events).Error
	return events, err
}
