package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"gorm.io/gorm"
)

// EventService handles event management business logic
type EventService struct {
	eventRepo repositories.EventRepository
	security  *SecurityService
}

// NewEventService creates a new event service
func NewEventService(eventRepo repositories.EventRepository, security *SecurityService) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		security:  security,
	}
}

// CreateEventInput represents create event input
type CreateEventInput struct {
	Name              string    `json:"name" validate:"required,max=100"`
	Description       string    `json:"description"`
	Remarks           string    `json:"remarks"`
	Venue             string    `json:"venue"`
	StartDate         time.Time `json:"start_date" validate:"required"`
	EndDate           time.Time `json:"end_date" validate:"required"`
	Fee               float64   `json:"fee"`
	RequiredTransport bool      `json:"required_transport"`
	ImageURL          string    `json:"image_url"`
}

// UpdateEventInput represents update event input
type UpdateEventInput struct {
	Name              *string    `json:"name"`
	Description       *string    `json:"description"`
	Remarks           *string    `json:"remarks"`
	Venue             *string    `json:"venue"`
	StartDate         *time.Time `json:"start_date"`
	EndDate           *time.Time `json:"end_date"`
	Fee               *float64   `json:"fee"`
	RequiredTransport *bool      `json:"required_transport"`
	Status            *string    `json:"status"`
	ImageURL          *string    `json:"image_url"`
}

// Create creates a new event; only a current administrator may create events
func (s *EventService) Create(ctx context.Context, userID uint, input *CreateEventInput) (*models.Event, error) {
	isAdmin, err := s.security.IsCurrentAdministrator(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !isAdmin {
		return nil, domain.ErrForbidden
	}

	if input.EndDate.Before(input.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	event := &models.Event{
		Name:              input.Name,
		Description:       input.Description,
		Remarks:           input.Remarks,
		Venue:             input.Venue,
		StartDate:         input.StartDate,
		EndDate:           input.EndDate,
		Fee:               input.Fee,
		RequiredTransport: input.RequiredTransport,
		Status:            models.EventStatusOpen,
		ImageURL:          input.ImageURL,
	}

	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	log.Printf("✅ Event created: %s (ID: %d)", event.Name, event.ID)
	return event, nil
}

// GetByID gets an event by ID
func (s *EventService) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	return s.findNotCancelled(ctx, id)
}

// List lists events with pagination
func (s *EventService) List(ctx context.Context, offset, limit int) ([]*models.Event, int64, error) {
	return s.eventRepo.List(ctx, offset, limit)
}

// ListUpcoming lists events starting from now, soonest first
func (s *EventService) ListUpcoming(ctx context.Context, offset, limit int) ([]*models.Event, int64, error) {
	return s.eventRepo.ListUpcoming(ctx, offset, limit)
}

// ListPast lists ended events, most recent first
func (s *EventService) ListPast(ctx context.Context, offset, limit int) ([]*models.Event, int64, error) {
	return s.eventRepo.ListPast(ctx, offset, limit)
}

// ListByDateRange lists events whose start date falls within [from, to]
func (s *EventService) ListByDateRange(ctx context.Context, from, to time.Time, offset, limit int) ([]*models.Event, int64, error) {
	return s.eventRepo.ListByStartDateRange(ctx, from, to, offset, limit)
}

// Update updates an event; caller must be event head or current administrator
func (s *EventService) Update(ctx context.Context, userID, eventID uint, input *UpdateEventInput) (*models.Event, error) {
	allowed, err := s.security.CanManageEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	event, err := s.findNotCancelled(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		event.Name = *input.Name
	}
	if input.Description != nil {
		event.Description = *input.Description
	}
	if input.Remarks != nil {
		event.Remarks = *input.Remarks
	}
	if input.Venue != nil {
		event.Venue = *input.Venue
	}
	if input.StartDate != nil {
		event.StartDate = *input.StartDate
	}
	if input.EndDate != nil {
		event.EndDate = *input.EndDate
	}
	if input.Fee != nil {
		event.Fee = *input.Fee
	}
	if input.RequiredTransport != nil {
		event.RequiredTransport = *input.RequiredTransport
	}
	if input.ImageURL != nil {
		event.ImageURL = *input.ImageURL
	}
	if input.Status != nil {
		switch *input.Status {
		case models.EventStatusOpen, models.EventStatusPostponed, models.EventStatusClosed:
			event.Status = *input.Status
		case models.EventStatusCancelled:
			// Cancellation goes through Cancel, which has its own guard
			return nil, domain.ErrInvalidInput
		default:
			return nil, domain.ErrInvalidInput
		}
	}

	if event.EndDate.Before(event.StartDate) {
		return nil, domain.ErrInvalidInput
	}

	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	log.Printf("✅ Event updated: %s (ID: %d)", event.Name, event.ID)
	return event, nil
}

// Cancel marks an event as cancelled; caller must be event head or current
// administrator. Ended events stay as they are.
func (s *EventService) Cancel(ctx context.Context, userID, eventID uint) (*models.Event, error) {
	allowed, err := s.security.CanDeactivateEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	event, err := s.findNotCancelled(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.IsEnded() {
		return nil, domain.ErrEventEnded
	}

	event.Status = models.EventStatusCancelled
	if err := s.eventRepo.Update(ctx, event); err != nil {
		return nil, err
	}

	log.Printf("✅ Event cancelled: %s (ID: %d)", event.Name, event.ID)
	return event, nil
}

// Delete soft-deletes an event; caller must be system admin, event head or
// current administrator.
func (s *EventService) Delete(ctx context.Context, userID uint, systemRole string, eventID uint) error {
	allowed, err := s.security.CanDeleteEvent(ctx, userID, systemRole, eventID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if err := s.eventRepo.Delete(ctx, eventID); err != nil {
		return err
	}

	log.Printf("✅ Event deleted (ID: %d)", eventID)
	return nil
}

// findNotCancelled loads an event and rejects cancelled ones
func (s *EventService) findNotCancelled(ctx context.Context, eventID uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	if event.IsCancelled() {
		return nil, domain.ErrEventCancelled
	}
	return event, nil
}
