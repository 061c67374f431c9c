package services

import (
	"context"
	"strings"
	"testing"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTransactionService(
	transactionRepo *fakeTransactionRepo,
	receiptRepo *fakeReceiptRepo,
	eventRepo *fakeEventRepo,
	adminRepo *fakeAdministratorRepo,
	crewRepo *fakeEventCrewRepo,
) *TransactionService {
	security := newTestSecurityService(adminRepo, crewRepo, eventRepo, &fakeUserCCInfoRepo{})
	return NewTransactionService(transactionRepo, receiptRepo, eventRepo, security)
}

func TestTransactionService_Create(t *testing.T) {
	transactionRepo := &fakeTransactionRepo{}
	receiptRepo := &fakeReceiptRepo{}
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	s := newTestTransactionService(transactionRepo, receiptRepo, eventRepo, adminRepo, &fakeEventCrewRepo{})

	transaction, err := s.Create(context.Background(), defaultUserID, &CreateTransactionInput{
		EventID: defaultEventID,
		Title:   "Ticket sales",
		Type:    models.TransactionTypeIncome,
		Amount:  320.50,
		Receipt: &CreateReceiptInput{FileName: "tickets.pdf", FileType: "application/pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusPending, transaction.Status)
	assert.Equal(t, defaultUserID, transaction.CreatedBy)
	assert.NotZero(t, transaction.ReceiptID)
	assert.Len(t, receiptRepo.receipts, 1)

	// Stored name gets renamed server-side but keeps the upload's extension
	stored := receiptRepo.receipts[0]
	assert.NotEqual(t, "tickets.pdf", stored.FileName)
	assert.True(t, strings.HasSuffix(stored.FileName, ".pdf"))
}

func TestTransactionService_Create_Forbidden(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	crewRepo := &fakeEventCrewRepo{crews: []*models.EventCrew{
		{ID: 1, EventID: defaultEventID, UserID: defaultUserID, Role: models.EventCrewRoleMember},
	}}
	s := newTestTransactionService(&fakeTransactionRepo{}, &fakeReceiptRepo{}, eventRepo, &fakeAdministratorRepo{}, crewRepo)

	_, err := s.Create(context.Background(), defaultUserID, &CreateTransactionInput{
		EventID: defaultEventID,
		Title:   "Ticket sales",
		Type:    models.TransactionTypeIncome,
		Amount:  10,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTransactionService_Create_InvalidInput(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}

	tests := []struct {
		name   string
		input  *CreateTransactionInput
	}{
		{"ZeroAmount", &CreateTransactionInput{EventID: defaultEventID, Type: models.TransactionTypeIncome, Amount: 0}},
		{"NegativeAmount", &CreateTransactionInput{EventID: defaultEventID, Type: models.TransactionTypeExpense, Amount: -5}},
		{"UnknownType", &CreateTransactionInput{EventID: defaultEventID, Type: "TRANSFER", Amount: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestTransactionService(&fakeTransactionRepo{}, &fakeReceiptRepo{}, eventRepo, adminRepo, &fakeEventCrewRepo{})
			_, err := s.Create(context.Background(), defaultUserID, tt.input)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestTransactionService_UpdateStatus(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	transactionRepo := &fakeTransactionRepo{transactions: []*models.Transaction{
		{ID: 1, EventID: defaultEventID, Status: models.TransactionStatusPending, Type: models.TransactionTypeIncome, Amount: 10},
	}}
	s := newTestTransactionService(transactionRepo, &fakeReceiptRepo{}, eventRepo, adminRepo, &fakeEventCrewRepo{})

	transaction, err := s.UpdateStatus(context.Background(), defaultUserID, 1, models.TransactionStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionStatusCompleted, transaction.Status)

	// Settled transactions are immutable.
	_, err = s.UpdateStatus(context.Background(), defaultUserID, 1, models.TransactionStatusInvalid)
	assert.ErrorIs(t, err, domain.ErrTransactionNotPending)
}

func TestTransactionService_UpdateStatus_BackToPendingRejected(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	transactionRepo := &fakeTransactionRepo{transactions: []*models.Transaction{
		{ID: 1, EventID: defaultEventID, Status: models.TransactionStatusPending, Type: models.TransactionTypeIncome, Amount: 10},
	}}
	s := newTestTransactionService(transactionRepo, &fakeReceiptRepo{}, eventRepo, adminRepo, &fakeEventCrewRepo{})

	_, err := s.UpdateStatus(context.Background(), defaultUserID, 1, models.TransactionStatusPending)
	assert.ErrorIs(t, err, domain.ErrInvalidTransactionState)
}

func TestTransactionService_Update_SettledRejected(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{openEvent(defaultEventID)}}
	adminRepo := &fakeAdministratorRepo{admins: []*models.Administrator{currentAdmin(defaultUserID)}}
	transactionRepo := &fakeTransactionRepo{transactions: []*models.Transaction{
		{ID: 1, EventID: defaultEventID, Status: models.TransactionStatusCompleted, Type: models.TransactionTypeIncome, Amount: 10},
	}}
	s := newTestTransactionService(transactionRepo, &fakeReceiptRepo{}, eventRepo, adminRepo, &fakeEventCrewRepo{})

	title := "Edited"
	_, err := s.Update(context.Background(), defaultUserID, 1, &UpdateTransactionInput{Title: &title})
	assert.ErrorIs(t, err, domain.ErrTransactionNotPending)
}

func TestTransactionService_GetReceipt(t *testing.T) {
	receiptRepo := &fakeReceiptRepo{receipts: []*models.Receipt{
		{ID: 5, FileName: "receipt.jpg"},
	}}
	transactionRepo := &fakeTransactionRepo{transactions: []*models.Transaction{
		{ID: 1, EventID: defaultEventID, ReceiptID: 5},
		{ID: 2, EventID: defaultEventID},
	}}
	s := newTestTransactionService(transactionRepo, receiptRepo, &fakeEventRepo{}, &fakeAdministratorRepo{}, &fakeEventCrewRepo{})

	receipt, err := s.GetReceipt(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "receipt.jpg", receipt.FileName)

	_, err = s.GetReceipt(context.Background(), 2)
	assert.ErrorIs(t, err, domain.ErrReceiptNotFound)
}
