package services

import (
	"context"
	"testing"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdministratorService(adminRepo *fakeAdministratorRepo, userRepo *fakeUserRepo) *AdministratorService {
	security := newTestSecurityService(adminRepo, &fakeEventCrewRepo{}, &fakeEventRepo{}, &fakeUserCCInfoRepo{})
	return NewAdministratorService(adminRepo, userRepo, security)
}

func ccHead(userID uint) *models.Administrator {
	return &models.Administrator{
		ID:          99,
		UserID:      userID,
		Role:        models.AdminRoleCCHead,
		YearSession: currentSession,
		Status:      models.AdminStatusActive,
	}
}

func TestAdministratorService_Create(t *testing.T) {
	userRepo := &fakeUserRepo{users: []*models.User{{ID: defaultUserID, Email: "member@fivefishes.club"}}}
	adminRepo := &fakeAdministratorRepo{}
	s := newTestAdministratorService(adminRepo, userRepo)

	admin, err := s.Create(context.Background(), 2, models.SystemRoleAdmin, &CreateAdministratorInput{
		UserID:      defaultUserID,
		Role:        models.AdminRoleSecretary,
		YearSession: currentSession,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AdminStatusActive, admin.Status)
	assert.Len(t, adminRepo.admins, 1)
}

func TestAdministratorService_Create_ByCCHead(t *testing.T) {
	headID := uint(7)
	userRepo := &fakeUserRepo{users: []*models.User{{ID: defaultUserID}}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{ccHead(headID)}}
	s := newTestAdministratorService(adminRepo, userRepo)

	_, err := s.Create(context.Background(), headID, models.SystemRoleUser, &CreateAdministratorInput{
		UserID:      defaultUserID,
		Role:        models.AdminRoleSecretary,
		YearSession: currentSession,
	})
	assert.NoError(t, err)
}

func TestAdministratorService_Create_Forbidden(t *testing.T) {
	userRepo := &fakeUserRepo{users: []*models.User{{ID: defaultUserID}}}
	s := newTestAdministratorService(&fakeAdministratorRepo{}, userRepo)

	_, err := s.Create(context.Background(), defaultUserID, models.SystemRoleUser, &CreateAdministratorInput{
		UserID:      defaultUserID,
		Role:        models.AdminRoleSecretary,
		YearSession: currentSession,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestAdministratorService_Create_Duplicate(t *testing.T) {
	userRepo := &fakeUserRepo{users: []*models.User{{ID: defaultUserID}}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{
		{ID: 1, UserID: defaultUserID, Role: models.AdminRoleSecretary, YearSession: currentSession, Status: models.AdminStatusActive},
	}}
	s := newTestAdministratorService(adminRepo, userRepo)

	_, err := s.Create(context.Background(), 2, models.SystemRoleAdmin, &CreateAdministratorInput{
		UserID:      defaultUserID,
		Role:        models.AdminRoleSecretary,
		YearSession: currentSession,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
}

func TestAdministratorService_Create_DeactivatedNotDuplicate(t *testing.T) {
	userRepo := &fakeUserRepo{users: []*models.User{{ID: defaultUserID}}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{
		{ID: 1, UserID: defaultUserID, Role: models.AdminRoleSecretary, YearSession: currentSession, Status: models.AdminStatusDeactivate},
	}}
	s := newTestAdministratorService(adminRepo, userRepo)

	_, err := s.Create(context.Background(), 2, models.SystemRoleAdmin, &CreateAdministratorInput{
		UserID:      defaultUserID,
		Role:        models.AdminRoleSecretary,
		YearSession: currentSession,
	})
	assert.NoError(t, err)
}

func TestAdministratorService_Create_Rejections(t *testing.T) {
	userRepo := &fakeUserRepo{users: []*models.User{{ID: defaultUserID}}}
	s := newTestAdministratorService(&fakeAdministratorRepo{}, userRepo)

	tests := []struct {
		name    string
		input   CreateAdministratorInput
		wantErr error
	}{
		{"unknown role", CreateAdministratorInput{UserID: defaultUserID, Role: "PRESIDENT", YearSession: currentSession}, domain.ErrInvalidInput},
		{"bad session", CreateAdministratorInput{UserID: defaultUserID, Role: models.AdminRoleTreasurer, YearSession: "2021-2022"}, domain.ErrInvalidInput},
		{"missing user", CreateAdministratorInput{UserID: 42, Role: models.AdminRoleTreasurer, YearSession: currentSession}, domain.ErrUserNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), 2, models.SystemRoleAdmin, &tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestAdministratorService_Deactivate(t *testing.T) {
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{
		{ID: 1, UserID: defaultUserID, Role: models.AdminRoleTreasurer, YearSession: currentSession, Status: models.AdminStatusActive},
	}}
	s := newTestAdministratorService(adminRepo, &fakeUserRepo{})

	admin, err := s.Deactivate(context.Background(), 2, models.SystemRoleAdmin, 1)
	require.NoError(t, err)
	assert.Equal(t, models.AdminStatusDeactivate, admin.Status)
	assert.Equal(t, models.AdminRoleTreasurer, admin.Role)
}

func TestAdministratorService_Update_InvalidStatus(t *testing.T) {
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{
		{ID: 1, UserID: defaultUserID, Role: models.AdminRoleTreasurer, YearSession: currentSession, Status: models.AdminStatusActive},
	}}
	s := newTestAdministratorService(adminRepo, &fakeUserRepo{})

	status := "SUSPENDED"
	_, err := s.Update(context.Background(), 2, models.SystemRoleAdmin, 1, &UpdateAdministratorInput{Status: &status})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestAdministratorService_Delete_Missing(t *testing.T) {
	s := newTestAdministratorService(&fakeAdministratorRepo{}, &fakeUserRepo{})

	err := s.Delete(context.Background(), 2, models.SystemRoleAdmin, 7)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
