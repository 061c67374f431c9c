package services

import (
	"context"
	"errors"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/yearsession"

	"gorm.io/gorm"
)

// SecurityService resolves the club roles a user currently holds and composes
// them into the authorization decisions used by the route layer. Decisions are
// never cached; every call re-queries role state.
type SecurityService struct {
	adminRepo      repositories.AdministratorRepository
	eventCrewRepo  repositories.EventCrewRepository
	eventRepo      repositories.EventRepository
	userCCInfoRepo repositories.UserCCInfoRepository

	// currentSession is swappable so role windows can be pinned in tests
	currentSession func() string
}

// NewSecurityService creates a new security service
func NewSecurityService(
	adminRepo repositories.AdministratorRepository,
	eventCrewRepo repositories.EventCrewRepository,
	eventRepo repositories.EventRepository,
	userCCInfoRepo repositories.UserCCInfoRepository,
) *SecurityService {
	return &SecurityService{
		adminRepo:      adminRepo,
		eventCrewRepo:  eventCrewRepo,
		eventRepo:      eventRepo,
		userCCInfoRepo: userCCInfoRepo,
		currentSession: yearsession.Current,
	}
}

// ============================================================
// Role resolution
// ============================================================

// IsCurrentCCHead reports whether the user holds an ACTIVE CC_HEAD
// administrator role in the current year session.
func (s *SecurityService) IsCurrentCCHead(ctx context.Context, userID uint) (bool, error) {
	return s.adminRepo.ExistsByUserIDAndRoleAndYearSessionAndStatus(
		ctx, userID, models.AdminRoleCCHead, s.currentSession(), models.AdminStatusActive)
}

// IsCurrentAdministrator reports whether the user holds any ACTIVE
// administrator role in the current year session.
func (s *SecurityService) IsCurrentAdministrator(ctx context.Context, userID uint) (bool, error) {
	return s.adminRepo.ExistsByUserIDAndYearSessionAndStatus(
		ctx, userID, s.currentSession(), models.AdminStatusActive)
}

// IsEventHead reports whether the user is HEAD crew of the event. Crew roles
// are never filtered by session; a head of a past event remains its head.
func (s *SecurityService) IsEventHead(ctx context.Context, userID, eventID uint) (bool, error) {
	return s.eventCrewRepo.ExistsByEventIDAndUserIDAndRole(ctx, eventID, userID, models.EventCrewRoleHead)
}

// IsEventCrew reports whether the user holds any crew role of the event.
func (s *SecurityService) IsEventCrew(ctx context.Context, userID, eventID uint) (bool, error) {
	return s.eventCrewRepo.ExistsByEventIDAndUserID(ctx, eventID, userID)
}

// GetUserRoles returns every club role currently effective for the user.
// Administrator and family roles are scoped to the current year session;
// event crew roles are always returned with the session derived from the
// event's start date, skipping events that no longer exist.
func (s *SecurityService) GetUserRoles(ctx context.Context, userID uint) ([]domain.UserRole, error) {
	current := s.currentSession()
	var roles []domain.UserRole

	admins, err := s.adminRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, admin := range admins {
		if admin.YearSession != current || !admin.IsActive() {
			continue
		}
		roles = append(roles, domain.UserRole{
			RoleKind:    domain.RoleKindAdministrator,
			Role:        admin.Role,
			YearSession: admin.YearSession,
			AssignedAt:  admin.CreatedAt,
		})
	}

	crews, err := s.eventCrewRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, crew := range crews {
		event, err := s.eventRepo.GetByID(ctx, crew.EventID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, err
		}
		roles = append(roles, domain.UserRole{
			RoleKind:    domain.RoleKindEventCrew,
			Role:        crew.Role,
			YearSession: yearsession.ToYearSession(event.StartDate),
			EventID:     event.ID,
			EventName:   event.Name,
			AssignedAt:  crew.CreatedAt,
		})
	}

	infos, err := s.userCCInfoRepo.ListByUserIDAndYearSession(ctx, userID, current)
	if err != nil {
		return nil, err
	}
	for _, info := range infos {
		roles = append(roles, domain.UserRole{
			RoleKind:    domain.RoleKindClubFamily,
			Role:        info.FamilyRole,
			YearSession: info.YearSession,
			ClubFamily:  info.ClubFamily.Name,
			AssignedAt:  info.CreatedAt,
		})
	}

	return roles, nil
}

// ============================================================
// Authorization predicates
// ============================================================

// requireEvent resolves the event or maps a missing row to ErrEventNotFound so
// the HTTP layer can answer 404 instead of 403.
func (s *SecurityService) requireEvent(ctx context.Context, eventID uint) (*models.Event, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// CanManageEvent allows current administrators and the event's head.
func (s *SecurityService) CanManageEvent(ctx context.Context, userID, eventID uint) (bool, error) {
	if _, err := s.requireEvent(ctx, eventID); err != nil {
		return false, err
	}
	isAdmin, err := s.IsCurrentAdministrator(ctx, userID)
	if err != nil {
		return false, err
	}
	if isAdmin {
		return true, nil
	}
	return s.IsEventHead(ctx, userID, eventID)
}

// CanSubmitBudgetOrTransaction allows current administrators and the event's
// head. Plain crew members are deliberately denied.
func (s *SecurityService) CanSubmitBudgetOrTransaction(ctx context.Context, userID, eventID uint) (bool, error) {
	return s.CanManageEvent(ctx, userID, eventID)
}

// CanDeleteEvent allows the coarse ADMIN system role, the event's head, or any
// current administrator. Any one path suffices.
func (s *SecurityService) CanDeleteEvent(ctx context.Context, userID uint, systemRole string, eventID uint) (bool, error) {
	if _, err := s.requireEvent(ctx, eventID); err != nil {
		return false, err
	}
	if systemRole == models.SystemRoleAdmin {
		return true, nil
	}
	isHead, err := s.IsEventHead(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	if isHead {
		return true, nil
	}
	return s.IsCurrentAdministrator(ctx, userID)
}

// CanDeactivateEvent allows current administrators and the event's head.
func (s *SecurityService) CanDeactivateEvent(ctx context.Context, userID, eventID uint) (bool, error) {
	return s.CanManageEvent(ctx, userID, eventID)
}

// CanAccessEventActivity allows any crew member and current administrators.
func (s *SecurityService) CanAccessEventActivity(ctx context.Context, userID, eventID uint) (bool, error) {
	if _, err := s.requireEvent(ctx, eventID); err != nil {
		return false, err
	}
	isCrew, err := s.IsEventCrew(ctx, userID, eventID)
	if err != nil {
		return false, err
	}
	if isCrew {
		return true, nil
	}
	return s.IsCurrentAdministrator(ctx, userID)
}
