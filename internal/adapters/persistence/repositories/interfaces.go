package repositories

import (
	"context"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ListNotEventCrew(ctx context.Context, eventID uint) ([]*models.User, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// EventRepository defines event repository interface
type EventRepository interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id uint) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Event, int64, error)
	ListByStartDateRange(ctx context.Context, from, to time.Time, offset, limit int) ([]*models.Event, int64, error)
	ListUpcoming(ctx context.Context, offset, limit int) ([]*models.Event, int64, error)
	ListPast(ctx context.Context, offset, limit int) ([]*models.Event, int64, error)
	ListAll(ctx context.Context) ([]*models.Event, error)
	ListEndedWithStatus(ctx context.Context, before time.Time, status string) ([]*models.Event, error)
}

// EventCrewRepository defines event crew repository interface
type EventCrewRepository interface {
	Create(ctx context.Context, crew *models.EventCrew) error
	GetByID(ctx context.Context, id uint) (*models.EventCrew, error)
	Delete(ctx context.Context, id uint) error
	ListByEventID(ctx context.Context, eventID uint) ([]*models.EventCrew, error)
	ListByUserID(ctx context.Context, userID uint) ([]*models.EventCrew, error)
	GetByEventIDAndUserID(ctx context.Context, eventID, userID uint) (*models.EventCrew, error)
	ExistsByEventIDAndUserIDAndRole(ctx context.Context, eventID, userID uint, role string) (bool, error)
	ExistsByEventIDAndUserID(ctx context.Context, eventID, userID uint) (bool, error)
}

// EventAttendeeRepository defines event attendee repository interface
type EventAttendeeRepository interface {
	Create(ctx context.Context, attendee *models.EventAttendee) error
	GetByEventIDAndUserID(ctx context.Context, eventID, userID uint) (*models.EventAttendee, error)
	ListByEventID(ctx context.Context, eventID uint, offset, limit int) ([]*models.EventAttendee, int64, error)
	ListByUserID(ctx context.Context, userID uint) ([]*models.EventAttendee, error)
}

// AdministratorRepository defines administrator repository interface
type AdministratorRepository interface {
	Create(ctx context.Context, admin *models.Administrator) error
	GetByID(ctx context.Context, id uint) (*models.Administrator, error)
	Update(ctx context.Context, admin *models.Administrator) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, offset, limit int) ([]*models.Administrator, int64, error)
	ListByUserID(ctx context.Context, userID uint) ([]*models.Administrator, error)
	ExistsByUserIDAndYearSessionAndStatus(ctx context.Context, userID uint, yearSession, status string) (bool, error)
	ExistsByUserIDAndRoleAndYearSessionAndStatus(ctx context.Context, userID uint, role, yearSession, status string) (bool, error)
}

// UserCCInfoRepository defines club family role repository interface
type UserCCInfoRepository interface {
	Create(ctx context.Context, info *models.UserCCInfo) error
	GetByID(ctx context.Context, id uint) (*models.UserCCInfo, error)
	Update(ctx context.Context, info *models.UserCCInfo) error
	Delete(ctx context.Context, id uint) error
	ListByUserID(ctx context.Context, userID uint) ([]*models.UserCCInfo, error)
	ListByUserIDAndYearSession(ctx context.Context, userID uint, yearSession string) ([]*models.UserCCInfo, error)
}

// ClubFamilyRepository defines club family repository interface
type ClubFamilyRepository interface {
	Create(ctx context.Context, family *models.ClubFamily) error
	GetByID(ctx context.Context, id uint) (*models.ClubFamily, error)
	Update(ctx context.Context, family *models.ClubFamily) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]*models.ClubFamily, error)
}

// BudgetRepository defines budget repository interface
type BudgetRepository interface {
	Create(ctx context.Context, budget *models.Budget) error
	GetByID(ctx context.Context, id uint) (*models.Budget, error)
	Update(ctx context.Context, budget *models.Budget) error
	Delete(ctx context.Context, id uint) error
	ListByEventID(ctx context.Context, eventID uint) ([]*models.Budget, error)
	ListByEventIDAndType(ctx context.Context, eventID uint, transactionType string) ([]*models.Budget, error)
}

// TransactionRepository defines transaction repository interface
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	GetByID(ctx context.Context, id uint) (*models.Transaction, error)
	Update(ctx context.Context, transaction *models.Transaction) error
	ListByEventID(ctx context.Context, eventID uint, offset, limit int) ([]*models.Transaction, int64, error)
	ListByEventIDAndType(ctx context.Context, eventID uint, transactionType string) ([]*models.Transaction, error)
	ListByCreatedAtWindow(ctx context.Context, inclusiveFrom, exclusiveTo time.Time) ([]*models.Transaction, error)
}

// ReceiptRepository defines receipt repository interface
type ReceiptRepository interface {
	Create(ctx context.Context, receipt *models.Receipt) error
	GetByID(ctx context.Context, id uint) (*models.Receipt, error)
	Delete(ctx context.Context, id uint) error
}

// FacultyRepository defines faculty repository interface
type FacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetByID(ctx context.Context, id uint) (*models.Faculty, error)
	Update(ctx context.Context, faculty *models.Faculty) error
	Delete(ctx context.Context, id uint) error
	ListAll(ctx context.Context) ([]*models.Faculty, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

// YearSessionRepository defines year session master data repository interface
type YearSessionRepository interface {
	Create(ctx context.Context, yearSession *models.YearSession) error
	GetByID(ctx context.Context, id uint) (*models.YearSession, error)
	GetByValue(ctx context.Context, value string) (*models.YearSession, error)
	GetLatest(ctx context.Context) (*models.YearSession, error)
	ListAll(ctx context.Context) ([]*models.YearSession, error)
}
