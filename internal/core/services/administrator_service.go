package services

import (
	"context"
	"errors"
	"log"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/yearsession"

	"gorm.io/gorm"
)

var validAdminRoles = map[string]bool{
	models.AdminRoleCCHead:     true,
	models.AdminRoleViceCCHead: true,
	models.AdminRoleSecretary:  true,
	models.AdminRoleTreasurer:  true,
}

// AdministratorService handles committee appointments
type AdministratorService struct {
	adminRepo repositories.AdministratorRepository
	userRepo  repositories.UserRepository
	security  *SecurityService
}

// NewAdministratorService creates a new administrator service
func NewAdministratorService(
	adminRepo repositories.AdministratorRepository,
	userRepo repositories.UserRepository,
	security *SecurityService,
) *AdministratorService {
	return &AdministratorService{
		adminRepo: adminRepo,
		userRepo:  userRepo,
		security:  security,
	}
}

// canManageAppointments allows the system admin and the current CC head to
// change committee appointments.
func (s *AdministratorService) canManageAppointments(ctx context.Context, actorID uint, systemRole string) error {
	if systemRole == models.SystemRoleAdmin {
		return nil
	}
	isHead, err := s.security.IsCurrentCCHead(ctx, actorID)
	if err != nil {
		return err
	}
	if !isHead {
		return domain.ErrForbidden
	}
	return nil
}

// CreateAdministratorInput represents committee appointment input
type CreateAdministratorInput struct {
	UserID      uint   `json:"user_id" validate:"required"`
	Role        string `json:"role" validate:"required"`
	YearSession string `json:"year_session" validate:"required"`
}

// UpdateAdministratorInput represents appointment update input
type UpdateAdministratorInput struct {
	Role   *string `json:"role"`
	Status *string `json:"status"`
}

// Create appoints a user to the committee for a year session
func (s *AdministratorService) Create(ctx context.Context, actorID uint, systemRole string, input *CreateAdministratorInput) (*models.Administrator, error) {
	if err := s.canManageAppointments(ctx, actorID, systemRole); err != nil {
		return nil, err
	}
	if !validAdminRoles[input.Role] {
		return nil, domain.ErrInvalidInput
	}
	if !yearsession.IsValid(input.YearSession) {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}

	exists, err := s.adminRepo.ExistsByUserIDAndRoleAndYearSessionAndStatus(
		ctx, input.UserID, input.Role, input.YearSession, models.AdminStatusActive)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateEntry
	}

	admin := &models.Administrator{
		UserID:      input.UserID,
		Role:        input.Role,
		YearSession: input.YearSession,
		Status:      models.AdminStatusActive,
	}
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, err
	}

	log.Printf("✅ Administrator appointed: user %d as %s for %s", input.UserID, input.Role, input.YearSession)
	return admin, nil
}

// GetByID gets an appointment by ID
func (s *AdministratorService) GetByID(ctx context.Context, id uint) (*models.Administrator, error) {
	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return admin, nil
}

// List lists appointments with pagination
func (s *AdministratorService) List(ctx context.Context, offset, limit int) ([]*models.Administrator, int64, error) {
	return s.adminRepo.List(ctx, offset, limit)
}

// ListByUserID lists all appointments of a user across sessions
func (s *AdministratorService) ListByUserID(ctx context.Context, userID uint) ([]*models.Administrator, error) {
	return s.adminRepo.ListByUserID(ctx, userID)
}

// Update changes role or status of an appointment
func (s *AdministratorService) Update(ctx context.Context, actorID uint, systemRole string, id uint, input *UpdateAdministratorInput) (*models.Administrator, error) {
	if err := s.canManageAppointments(ctx, actorID, systemRole); err != nil {
		return nil, err
	}

	admin, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil {
		if !validAdminRoles[*input.Role] {
			return nil, domain.ErrInvalidInput
		}
		admin.Role = *input.Role
	}
	if input.Status != nil {
		if *input.Status != models.AdminStatusActive && *input.Status != models.AdminStatusDeactivate {
			return nil, domain.ErrInvalidInput
		}
		admin.Status = *input.Status
	}

	if err := s.adminRepo.Update(ctx, admin); err != nil {
		return nil, err
	}

	log.Printf("✅ Administrator %d updated", id)
	return admin, nil
}

// Deactivate marks an appointment as no longer effective without losing the
// appointment history.
func (s *AdministratorService) Deactivate(ctx context.Context, actorID uint, systemRole string, id uint) (*models.Administrator, error) {
	status := models.AdminStatusDeactivate
	return s.Update(ctx, actorID, systemRole, id, &UpdateAdministratorInput{Status: &status})
}

// Delete removes an appointment
func (s *AdministratorService) Delete(ctx context.Context, actorID uint, systemRole string, id uint) error {
	if err := s.canManageAppointments(ctx, actorID, systemRole); err != nil {
		return err
	}

	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	if err := s.adminRepo.Delete(ctx, id); err != nil {
		return err
	}

	log.Printf("✅ Administrator %d deleted", id)
	return nil
}
