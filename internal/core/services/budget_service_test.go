package services

import (
	"context"
	"testing"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBudgetService(
	budgetRepo *fakeBudgetRepo,
	eventRepo *fakeEventRepo,
	adminRepo *fakeAdministratorRepo,
	crewRepo *fakeEventCrewRepo,
) *BudgetService {
	security := newTestSecurityService(adminRepo, crewRepo, eventRepo, &fakeUserCCInfoRepo{})
	return NewBudgetService(budgetRepo, eventRepo, security)
}

func TestBudgetService_Create(t *testing.T) {
	budgetRepo := &fakeBudgetRepo{}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	s := newTestBudgetService(budgetRepo, eventRepo, adminRepo, &fakeEventCrewRepo{})

	budget, err := s.Create(context.Background(), defaultUserID, &CreateBudgetInput{
		EventID: defaultEventID,
		Name:    "Venue rental",
		Amount:  1200,
		Type:    models.TransactionTypeExpense,
	})
	require.NoError(t, err)
	assert.Equal(t, defaultEventID, budget.EventID)
	assert.Len(t, budgetRepo.budgets, 1)
}

func TestBudgetService_Create_EventHead(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	crewRepo := &fakeEventCrewRepo{crews: []*models.EventCrew{
		{ID: 1, EventID: defaultEventID, UserID: defaultUserID, Role: models.EventCrewRoleHead},
	}}
	s := newTestBudgetService(&fakeBudgetRepo{}, eventRepo, &fakeAdministratorRepo{}, crewRepo)

	_, err := s.Create(context.Background(), defaultUserID, &CreateBudgetInput{
		EventID: defaultEventID,
		Name:    "Food",
		Amount:  300,
		Type:    models.TransactionTypeExpense,
	})
	assert.NoError(t, err)
}

func TestBudgetService_Create_CrewMemberForbidden(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	crewRepo := &fakeEventCrewRepo{crews: []*models.EventCrew{
		{ID: 1, EventID: defaultEventID, UserID: defaultUserID, Role: models.EventCrewRoleMember},
	}}
	s := newTestBudgetService(&fakeBudgetRepo{}, eventRepo, &fakeAdministratorRepo{}, crewRepo)

	_, err := s.Create(context.Background(), defaultUserID, &CreateBudgetInput{
		EventID: defaultEventID,
		Name:    "Food",
		Amount:  300,
		Type:    models.TransactionTypeExpense,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBudgetService_Create_InvalidInput(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	s := newTestBudgetService(&fakeBudgetRepo{}, eventRepo, adminRepo, &fakeEventCrewRepo{})

	tests := []struct {
		name  string
		input CreateBudgetInput
	}{
		{"zero amount", CreateBudgetInput{EventID: defaultEventID, Name: "x", Amount: 0, Type: models.TransactionTypeIncome}},
		{"negative amount", CreateBudgetInput{EventID: defaultEventID, Name: "x", Amount: -5, Type: models.TransactionTypeIncome}},
		{"unknown type", CreateBudgetInput{EventID: defaultEventID, Name: "x", Amount: 10, Type: "TRANSFER"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(context.Background(), defaultUserID, &tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestBudgetService_Update(t *testing.T) {
	budgetRepo := &fakeBudgetRepo{budgets: []*models.Budget{
		{ID: 1, EventID: defaultEventID, Name: "Venue rental", Amount: 1200, Type: models.TransactionTypeExpense},
	}}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	s := newTestBudgetService(budgetRepo, eventRepo, adminRepo, &fakeEventCrewRepo{})

	amount := 900.0
	budget, err := s.Update(context.Background(), defaultUserID, 1, &UpdateBudgetInput{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 900.0, budget.Amount)
	assert.Equal(t, "Venue rental", budget.Name)
}

func TestBudgetService_Update_Missing(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	s := newTestBudgetService(&fakeBudgetRepo{}, eventRepo, adminRepo, &fakeEventCrewRepo{})

	_, err := s.Update(context.Background(), defaultUserID, 99, &UpdateBudgetInput{})
	assert.ErrorIs(t, err, domain.ErrBudgetNotFound)
}

func TestBudgetService_Delete_Forbidden(t *testing.T) {
	budgetRepo := &fakeBudgetRepo{budgets: []*models.Budget{
		{ID: 1, EventID: defaultEventID, Name: "Venue rental", Amount: 1200, Type: models.TransactionTypeExpense},
	}}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	s := newTestBudgetService(budgetRepo, eventRepo, &fakeAdministratorRepo{}, &fakeEventCrewRepo{})

	err := s.Delete(context.Background(), defaultUserID, 1)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.Len(t, budgetRepo.budgets, 1)
}
