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

// EventCrewService handles event crew assignments
type EventCrewService struct {
	eventCrewRepo repositories.EventCrewRepository
	eventRepo     repositories.EventRepository
	userRepo      repositories.UserRepository
	security      *SecurityService
}

// NewEventCrewService creates a new event crew service
func NewEventCrewService(
	eventCrewRepo repositories.EventCrewRepository,
	eventRepo repositories.EventRepository,
	userRepo repositories.UserRepository,
	security *SecurityService,
) *EventCrewService {
	return &EventCrewService{
		eventCrewRepo: eventCrewRepo,
		eventRepo:     eventRepo,
		userRepo:      userRepo,
		security:      security,
	}
}

// CreateEventCrewInput represents crew assignment input
type CreateEventCrewInput struct {
	EventID uint   `json:"event_id" validate:"required"`
	UserID  uint   `json:"user_id" validate:"required"`
	Role    string `json:"role" validate:"required"`
}

// EventCrewResponse is a crew assignment joined with user names
type EventCrewResponse struct {
	ID        uint   `json:"id"`
	EventID   uint   `json:"event_id"`
	UserID    uint   `json:"user_id"`
	Role      string `json:"role"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// Create assigns a user to an event crew; caller must be event head or
// current administrator.
func (s *EventCrewService) Create(ctx context.Context, actorID uint, input *CreateEventCrewInput) (*models.EventCrew, error) {
	allowed, err := s.security.CanManageEvent(ctx, actorID, input.EventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if input.Role != models.EventCrewRoleHead && input.Role != models.EventCrewRoleMember {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.eventCrewRepo.ExistsByEventIDAndUserID(ctx, input.EventID, input.UserID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEntry
	}

	crew := &models.EventCrew{
		EventID: input.EventID,
		UserID:  input.UserID,
		Role:    input.Role,
	}
	if err := s.eventCrewRepo.Create(ctx, crew); err != nil {
		return nil, err
	}

	log.Printf("✅ Crew assigned: user %d as %s of event %d", input.UserID, input.Role, input.EventID)
	return crew, nil
}

// ListByEventID lists crew of an event with user details
func (s *EventCrewService) ListByEventID(ctx context.Context, eventID uint) ([]*EventCrewResponse, error) {
	crews, err := s.eventCrewRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	responses := make([]*EventCrewResponse, 0, len(crews))
	for _, crew := range crews {
		resp := &EventCrewResponse{
			ID:      crew.ID,
			EventID: crew.EventID,
			UserID:  crew.UserID,
			Role:    crew.Role,
		}
		if user, err := s.userRepo.GetByID(ctx, crew.UserID); err == nil {
			resp.FirstName = user.FirstName
			resp.LastName = user.LastName
			resp.Email = user.Email
		}
		responses = append(responses, resp)
	}
	return responses, nil
}

// Delete removes a crew assignment; caller must be event head or current
// administrator of the crew's event.
func (s *EventCrewService) Delete(ctx context.Context, actorID, crewID uint) error {
	crew, err := s.eventCrewRepo.GetByID(ctx, crewID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrNotFound
		}
		return err
	}

	allowed, err := s.security.CanManageEvent(ctx, actorID, crew.EventID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if err := s.eventCrewRepo.Delete(ctx, crewID); err != nil {
		return err
	}

	log.Printf("✅ Crew assignment %d removed from event %d", crewID, crew.EventID)
	return nil
}
