package services

import (
	"context"
	"errors"
	"log"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"gorm.io/gorm"
)

// EventAttendeeService handles event registration
type EventAttendeeService struct {
	attendeeRepo repositories.EventAttendeeRepository
	eventRepo    repositories.EventRepository
	userRepo     repositories.UserRepository
	security     *SecurityService
}

// NewEventAttendeeService creates a new event attendee service
func NewEventAttendeeService(
	attendeeRepo repositories.EventAttendeeRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	security *SecurityService,
) *EventAttendeeService {
	return &EventAttendeeService{
		attendeeRepo: attendeeRepo,
		eventRepo:    eventRepo,
		userRepo:     userRepo,
		security:     security,
	}
}

// RegisterAttendeeInput represents event registration input
type RegisterAttendeeInput struct {
	EventID          uint `json:"event_id" validate:"required"`
	ProvideTransport bool `json:"provide_transport"`
}

// EventAttendeeResponse is an attendee joined with user names
type EventAttendeeResponse struct {
	ID               uint   `json:"id"`
	EventID          uint   `json:"event_id"`
	UserID           uint   `json:"user_id"`
	ProvideTransport bool   `json:"provide_transport"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Email            string `json:"email"`
}

// Register registers a user for an event. Registration is rejected for
// cancelled events, ended events and duplicate registrations.
func (s *EventAttendeeService) Register(ctx context.Context, userID uint, input *RegisterAttendeeInput) (*models.EventAttendee, error) {
	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}

	if event.IsCancelled() {
		return nil, domain.ErrEventCancelled
	}
	if event.IsEnded() {
		return nil, domain.ErrEventEnded
	}

	if _, err := s.attendeeRepo.GetByEventIDAndUserID(ctx, input.EventID, userID); err == nil {
		return nil, domain.ErrDuplicateEntry
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	attendee := &models.EventAttendee{
		EventID:          input.EventID,
		UserID:           userID,
		ProvideTransport: input.ProvideTransport,
	}
	if err := s.attendeeRepo.Create(ctx, attendee); err != nil {
		return nil, err
	}

	log.Printf("✅ User %d registered for event %d", userID, input.EventID)
	return attendee, nil
}

// ListByEventID lists attendees of an event with user details. The roster is
// only visible to the event's crew and current administrators.
func (s *EventAttendeeService) ListByEventID(ctx context.Context, actorID, eventID uint, offset, limit int) ([]*EventAttendeeResponse, int64, error) {
	allowed, err := s.security.CanAccessEventActivity(ctx, actorID, eventID)
	if err != nil {
		return nil, 0, err
	}
	if !allowed {
		return nil, 0, domain.ErrForbidden
	}

	attendees, total, err := s.attendeeRepo.ListByEventID(ctx, eventID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]*EventAttendeeResponse, 0, len(attendees))
	for _, attendee := range attendees {
		resp := &EventAttendeeResponse{
			ID:               attendee.ID,
			EventID:          attendee.EventID,
			UserID:           attendee.UserID,
			ProvideTransport: attendee.ProvideTransport,
		}
		if user, err := s.userRepo.GetByID(ctx, attendee.UserID); err == nil {
			resp.FirstName = user.FirstName
			resp.LastName = user.LastName
			resp.Email = user.Email
		}
		responses = append(responses, resp)
	}
	return responses, total, nil
}

// ListByUserID lists events a user has registered for
func (s *EventAttendeeService) ListByUserID(ctx context.Context, userID uint) ([]*models.EventAttendee, error) {
	return s.attendeeRepo.ListByUserID(ctx, userID)
}
