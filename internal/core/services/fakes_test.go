package services

import (
	"context"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// In-memory repository fakes used by the service tests. Only read paths carry
// real behavior; write paths append to the backing slices.

type fakeAdministratorRepo struct {
	admins []*models.Administrator
}

func (f *fakeAdministratorRepo) Create(_ context.Context, admin *models.Administrator) error {
	f.admins = append(f.admins, admin)
	return nil
}

func (f *fakeAdministratorRepo) GetByID(_ context.Context, id uint) (*models.Administrator, error) {
	for _, admin := range f.admins {
		if admin.ID == id {
			return admin, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAdministratorRepo) Update(_ context.Context, _ *models.Administrator) error {
	return nil
}

func (f *fakeAdministratorRepo) Delete(_ context.Context, id uint) error {
	for i, admin := range f.admins {
		if admin.ID == id {
			f.admins = append(f.admins[:i], f.admins[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeAdministratorRepo) List(_ context.Context, offset, limit int) ([]*models.Administrator, int64, error) {
	return f.admins, int64(len(f.admins)), nil
}

func (f *fakeAdministratorRepo) ListByUserID(_ context.Context, userID uint) ([]*models.Administrator, error) {
	var out []*models.Administrator
	for _, admin := range f.admins {
		if admin.UserID == userID {
			out = append(out, admin)
		}
	}
	return out, nil
}

func (f *fakeAdministratorRepo) ExistsByUserIDAndYearSessionAndStatus(_ context.Context, userID uint, yearSession, status string) (bool, error) {
	for _, admin := range f.admins {
		if admin.UserID == userID && admin.YearSession == yearSession && admin.Status == status {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdministratorRepo) ExistsByUserIDAndRoleAndYearSessionAndStatus(_ context.Context, userID uint, role, yearSession, status string) (bool, error) {
	for _, admin := range f.admins {
		if admin.UserID == userID && admin.Role == role && admin.YearSession == yearSession && admin.Status == status {
			return true, nil
		}
	}
	return false, nil
}

type fakeEventCrewRepo struct {
	crews []*models.EventCrew
}

func (f *fakeEventCrewRepo) Create(_ context.Context, crew *models.EventCrew) error {
	f.crews = append(f.crews, crew)
	return nil
}

func (f *fakeEventCrewRepo) GetByID(_ context.Context, id uint) (*models.EventCrew, error) {
	for _, crew := range f.crews {
		if crew.ID == id {
			return crew, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventCrewRepo) Delete(_ context.Context, id uint) error {
	for i, crew := range f.crews {
		if crew.ID == id {
			f.crews = append(f.crews[:i], f.crews[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeEventCrewRepo) ListByEventID(_ context.Context, eventID uint) ([]*models.EventCrew, error) {
	var out []*models.EventCrew
	for _, crew := range f.crews {
		if crew.EventID == eventID {
			out = append(out, crew)
		}
	}
	return out, nil
}

func (f *fakeEventCrewRepo) ListByUserID(_ context.Context, userID uint) ([]*models.EventCrew, error) {
	var out []*models.EventCrew
	for _, crew := range f.crews {
		if crew.UserID == userID {
			out = append(out, crew)
		}
	}
	return out, nil
}

func (f *fakeEventCrewRepo) GetByEventIDAndUserID(_ context.Context, eventID, userID uint) (*models.EventCrew, error) {
	for _, crew := range f.crews {
		if crew.EventID == eventID && crew.UserID == userID {
			return crew, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventCrewRepo) ExistsByEventIDAndUserIDAndRole(_ context.Context, eventID, userID uint, role string) (bool, error) {
	for _, crew := range f.crews {
		if crew.EventID == eventID && crew.UserID == userID && crew.Role == role {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEventCrewRepo) ExistsByEventIDAndUserID(_ context.Context, eventID, userID uint) (bool, error) {
	for _, crew := range f.crews {
		if crew.EventID == eventID && crew.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeEventRepo struct {
	events []*models.Event
}

func (f *fakeEventRepo) Create(_ context.Context, event *models.Event) error {
	f.events = append(f.events, event)
	return nil
}

func (f *fakeEventRepo) GetByID(_ context.Context, id uint) (*models.Event, error) {
	for _, event := range f.events {
		if event.ID == id {
			return event, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventRepo) Update(_ context.Context, _ *models.Event) error {
	return nil
}

func (f *fakeEventRepo) Delete(_ context.Context, id uint) error {
	for i, event := range f.events {
		if event.ID == id {
			f.events = append(f.events[:i], f.events[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeEventRepo) List(_ context.Context, offset, limit int) ([]*models.Event, int64, error) {
	return f.events, int64(len(f.events)), nil
}

func (f *fakeEventRepo) ListByStartDateRange(_ context.Context, from, to time.Time, offset, limit int) ([]*models.Event, int64, error) {
	var out []*models.Event
	for _, event := range f.events {
		if !event.StartDate.Before(from) && event.StartDate.Before(to) {
			out = append(out, event)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventRepo) ListUpcoming(_ context.Context, offset, limit int) ([]*models.Event, int64, error) {
	var out []*models.Event
	for _, event := range f.events {
		if event.StartDate.After(time.Now()) {
			out = append(out, event)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventRepo) ListPast(_ context.Context, offset, limit int) ([]*models.Event, int64, error) {
	var out []*models.Event
	for _, event := range f.events {
		if !event.StartDate.After(time.Now()) {
			out = append(out, event)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventRepo) ListAll(_ context.Context) ([]*models.Event, error) {
	return f.events, nil
}

func (f *fakeEventRepo) ListEndedWithStatus(_ context.Context, before time.Time, status string) ([]*models.Event, error) {
	var out []*models.Event
	for _, event := range f.events {
		if event.EndDate.Before(before) && event.Status == status {
			out = append(out, event)
		}
	}
	return out, nil
}

type fakeUserCCInfoRepo struct {
	infos []*models.UserCCInfo
}

func (f *fakeUserCCInfoRepo) Create(_ context.Context, info *models.UserCCInfo) error {
	f.infos = append(f.infos, info)
	return nil
}

func (f *fakeUserCCInfoRepo) GetByID(_ context.Context, id uint) (*models.UserCCInfo, error) {
	for _, info := range f.infos {
		if info.ID == id {
			return info, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserCCInfoRepo) Update(_ context.Context, _ *models.UserCCInfo) error {
	return nil
}

func (f *fakeUserCCInfoRepo) Delete(_ context.Context, id uint) error {
	for i, info := range f.infos {
		if info.ID == id {
			f.infos = append(f.infos[:i], f.infos[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserCCInfoRepo) ListByUserID(_ context.Context, userID uint) ([]*models.UserCCInfo, error) {
	var out []*models.UserCCInfo
	for _, info := range f.infos {
		if info.UserID == userID {
			out = append(out, info)
		}
	}
	return out, nil
}

func (f *fakeUserCCInfoRepo) ListByUserIDAndYearSession(_ context.Context, userID uint, yearSession string) ([]*models.UserCCInfo, error) {
	var out []*models.UserCCInfo
	for _, info := range f.infos {
		if info.UserID == userID && info.YearSession == yearSession {
			out = append(out, info)
		}
	}
	return out, nil
}

type fakeBudgetRepo struct {
	budgets []*models.Budget
}

func (f *fakeBudgetRepo) Create(_ context.Context, budget *models.Budget) error {
	f.budgets = append(f.budgets, budget)
	return nil
}

func (f *fakeBudgetRepo) GetByID(_ context.Context, id uint) (*models.Budget, error) {
	for _, budget := range f.budgets {
		if budget.ID == id {
			return budget, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBudgetRepo) Update(_ context.Context, _ *models.Budget) error {
	return nil
}

func (f *fakeBudgetRepo) Delete(_ context.Context, id uint) error {
	for i, budget := range f.budgets {
		if budget.ID == id {
			f.budgets = append(f.budgets[:i], f.budgets[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeBudgetRepo) ListByEventID(_ context.Context, eventID uint) ([]*models.Budget, error) {
	var out []*models.Budget
	for _, budget := range f.budgets {
		if budget.EventID == eventID {
			out = append(out, budget)
		}
	}
	return out, nil
}

func (f *fakeBudgetRepo) ListByEventIDAndType(_ context.Context, eventID uint, transactionType string) ([]*models.Budget, error) {
	var out []*models.Budget
	for _, budget := range f.budgets {
		if budget.EventID == eventID && budget.Type == transactionType {
			out = append(out, budget)
		}
	}
	return out, nil
}

type fakeTransactionRepo struct {
	transactions []*models.Transaction
}

func (f *fakeTransactionRepo) Create(_ context.Context, transaction *models.Transaction) error {
	f.transactions = append(f.transactions, transaction)
	return nil
}

func (f *fakeTransactionRepo) GetByID(_ context.Context, id uint) (*models.Transaction, error) {
	for _, transaction := range f.transactions {
		if transaction.ID == id {
			return transaction, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTransactionRepo) Update(_ context.Context, _ *models.Transaction) error {
	return nil
}

func (f *fakeTransactionRepo) ListByEventID(_ context.Context, eventID uint, offset, limit int) ([]*models.Transaction, int64, error) {
	var out []*models.Transaction
	for _, transaction := range f.transactions {
		if transaction.EventID == eventID {
			out = append(out, transaction)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeTransactionRepo) ListByEventIDAndType(_ context.Context, eventID uint, transactionType string) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, transaction := range f.transactions {
		if transaction.EventID == eventID && transaction.Type == transactionType {
			out = append(out, transaction)
		}
	}
	return out, nil
}

func (f *fakeTransactionRepo) ListByCreatedAtWindow(_ context.Context, inclusiveFrom, exclusiveTo time.Time) ([]*models.Transaction, error) {
	var out []*models.Transaction
	for _, transaction := range f.transactions {
		if !transaction.CreatedAt.Before(inclusiveFrom) && transaction.CreatedAt.Before(exclusiveTo) {
			out = append(out, transaction)
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	users []*models.User
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = uint(len(f.users) + 1)
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	for _, user := range f.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) Update(_ context.Context, _ *models.User) error {
	return nil
}

func (f *fakeUserRepo) Delete(_ context.Context, id uint) error {
	for i, user := range f.users {
		if user.ID == id {
			f.users = append(f.users[:i], f.users[i+1:]...)
			return nil
		}
	}
	return nil
}

func (f *fakeUserRepo) List(_ context.Context, offset, limit int) ([]*models.User, int64, error) {
	return f.users, int64(len(f.users)), nil
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, user := range f.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) ListNotEventCrew(_ context.Context, eventID uint) ([]*models.User, error) {
	return f.users, nil
}

type fakeRefreshTokenRepo struct {
	tokens []*models.RefreshToken
}

func (f *fakeRefreshTokenRepo) Create(_ context.Context, token *models.RefreshToken) error {
	token.ID = uint(len(f.tokens) + 1)
	f.tokens = append(f.tokens, token)
	return nil
}

func (f *fakeRefreshTokenRepo) GetByTokenHash(_ context.Context, tokenHash string) (*models.RefreshToken, error) {
	for _, token := range f.tokens {
		if token.TokenHash == tokenHash {
			return token, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRefreshTokenRepo) RevokeByTokenHash(_ context.Context, tokenHash string) error {
	now := time.Now()
	for _, token := range f.tokens {
		if token.TokenHash == tokenHash {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) RevokeAllByUserID(_ context.Context, userID uint) error {
	now := time.Now()
	for _, token := range f.tokens {
		if token.UserID == userID {
			token.RevokedAt = &now
		}
	}
	return nil
}

func (f *fakeRefreshTokenRepo) DeleteExpired(_ context.Context) error {
	var kept []*models.RefreshToken
	for _, token := range f.tokens {
		if !token.IsExpired() {
			kept = append(kept, token)
		}
	}
	f.tokens = kept
	return nil
}

type fakeEventAttendeeRepo struct {
	attendees []*models.EventAttendee
}

func (f *fakeEventAttendeeRepo) Create(_ context.Context, attendee *models.EventAttendee) error {
	attendee.ID = uint(len(f.attendees) + 1)
	f.attendees = append(f.attendees, attendee)
	return nil
}

func (f *fakeEventAttendeeRepo) GetByEventIDAndUserID(_ context.Context, eventID, userID uint) (*models.EventAttendee, error) {
	for _, attendee := range f.attendees {
		if attendee.EventID == eventID && attendee.UserID == userID {
			return attendee, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEventAttendeeRepo) ListByEventID(_ context.Context, eventID uint, offset, limit int) ([]*models.EventAttendee, int64, error) {
	var out []*models.EventAttendee
	for _, attendee := range f.attendees {
		if attendee.EventID == eventID {
			out = append(out, attendee)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeEventAttendeeRepo) ListByUserID(_ context.Context, userID uint) ([]*models.EventAttendee, error) {
	var out []*models.EventAttendee
	for _, attendee := range f.attendees {
		if attendee.UserID == userID {
			out = append(out, attendee)
		}
	}
	return out, nil
}

type fakeReceiptRepo struct {
	receipts []*models.Receipt
}

func (f *fakeReceiptRepo) Create(_ context.Context, receipt *models.Receipt) error {
	receipt.ID = uint(len(f.receipts) + 1)
	f.receipts = append(f.receipts, receipt)
	return nil
}

func (f *fakeReceiptRepo) GetByID(_ context.Context, id uint) (*models.Receipt, error) {
	for _, receipt := range f.receipts {
		if receipt.ID == id {
			return receipt, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeReceiptRepo) Delete(_ context.Context, id uint) error {
	for i, receipt := range f.receipts {
		if receipt.ID == id {
			f.receipts = append(f.receipts[:i], f.receipts[i+1:]...)
			return nil
		}
	}
	return nil
}
