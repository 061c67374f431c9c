package services

import (
	"context"
	"errors"
	"log"
	"path"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionService handles event transactions and receipts
type TransactionService struct {
	transactionRepo repositories.TransactionRepository
	receiptRepo     repositories.ReceiptRepository
	eventRepo       repositories.EventRepository
	security        *SecurityService
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepository,
	receiptRepo repositories.ReceiptRepository,
	eventRepo repositories.EventRepository,
	security *SecurityService,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		receiptRepo:     receiptRepo,
		eventRepo:       eventRepo,
		security:        security,
	}
}

// CreateTransactionInput represents transaction input
type CreateTransactionInput struct {
	EventID     uint                `json:"event_id" validate:"required"`
	Title       string              `json:"title" validate:"required,max=100"`
	Type        string              `json:"type" validate:"required"`
	Amount      float64             `json:"amount" validate:"required,gt=0"`
	Description string              `json:"description"`
	Receipt     *CreateReceiptInput `json:"receipt"`
}

// CreateReceiptInput represents receipt metadata attached to a transaction
type CreateReceiptInput struct {
	FileName     string `json:"file_name" validate:"required,max=100"`
	FileType     string `json:"file_type"`
	ReceiptURL   string `json:"receipt_url"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// UpdateTransactionInput updates descriptive fields of a pending transaction
type UpdateTransactionInput struct {
	Title       *string  `json:"title"`
	Amount      *float64 `json:"amount"`
	Description *string  `json:"description"`
}

// Create records a transaction against an event; caller must be event head or
// current administrator. New transactions always start PENDING.
func (s *TransactionService) Create(ctx context.Context, actorID uint, input *CreateTransactionInput) (*models.Transaction, error) {
	allowed, err := s.security.CanSubmitBudgetOrTransaction(ctx, actorID, input.EventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

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

	if input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != models.TransactionTypeIncome && input.Type != models.TransactionTypeExpense {
		return nil, domain.ErrInvalidInput
	}

	transaction := &models.Transaction{
		EventID:     input.EventID,
		Title:       input.Title,
		Type:        input.Type,
		Status:      models.TransactionStatusPending,
		Amount:      input.Amount,
		Description: input.Description,
		CreatedBy:   actorID,
	}

	if input.Receipt != nil {
		// Stored name is server-assigned so uploads can never collide
		receipt := &models.Receipt{
			FileName:     uuid.NewString() + path.Ext(input.Receipt.FileName),
			FileType:     input.Receipt.FileType,
			ReceiptURL:   input.Receipt.ReceiptURL,
			ThumbnailURL: input.Receipt.ThumbnailURL,
		}
		if err := s.receiptRepo.Create(ctx, receipt); err != nil {
			return nil, err
		}
		transaction.ReceiptID = receipt.ID
	}

	if err := s.transactionRepo.Create(ctx, transaction); err != nil {
		return nil, err
	}

	log.Printf("✅ Transaction created for event %d: %s %.2f", input.EventID, input.Type, input.Amount)
	return transaction, nil
}

// GetByID gets a transaction by ID
func (s *TransactionService) GetByID(ctx context.Context, id uint) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}
	return transaction, nil
}

// ListByEventID lists transactions of an event with pagination
func (s *TransactionService) ListByEventID(ctx context.Context, eventID uint, offset, limit int) ([]*models.Transaction, int64, error) {
	return s.transactionRepo.ListByEventID(ctx, eventID, offset, limit)
}

// Update edits descriptive fields of a transaction while it is still pending
func (s *TransactionService) Update(ctx context.Context, actorID, transactionID uint, input *UpdateTransactionInput) (*models.Transaction, error) {
	transaction, err := s.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.security.CanSubmitBudgetOrTransaction(ctx, actorID, transaction.EventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if transaction.Status != models.TransactionStatusPending {
		return nil, domain.ErrTransactionNotPending
	}

	if input.Title != nil {
		transaction.Title = *input.Title
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domain.ErrInvalidInput
		}
		transaction.Amount = *input.Amount
	}
	if input.Description != nil {
		transaction.Description = *input.Description
	}

	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	log.Printf("✅ Transaction %d updated", transactionID)
	return transaction, nil
}

// UpdateStatus settles a pending transaction as COMPLETED or INVALID. Settled
// transactions are immutable.
func (s *TransactionService) UpdateStatus(ctx context.Context, actorID, transactionID uint, status string) (*models.Transaction, error) {
	if status != models.TransactionStatusCompleted && status != models.TransactionStatusInvalid {
		return nil, domain.ErrInvalidTransactionState
	}

	transaction, err := s.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.security.CanSubmitBudgetOrTransaction(ctx, actorID, transaction.EventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if transaction.Status != models.TransactionStatusPending {
		return nil, domain.ErrTransactionNotPending
	}

	transaction.Status = status
	if err := s.transactionRepo.Update(ctx, transaction); err != nil {
		return nil, err
	}

	log.Printf("✅ Transaction %d settled as %s", transactionID, status)
	return transaction, nil
}

// GetReceipt loads the receipt attached to a transaction
func (s *TransactionService) GetReceipt(ctx context.Context, transactionID uint) (*models.Receipt, error) {
	transaction, err := s.GetByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if transaction.ReceiptID == 0 {
		return nil, domain.ErrReceiptNotFound
	}

	receipt, err := s.receiptRepo.GetByID(ctx, transaction.ReceiptID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReceiptNotFound
		}
		return nil, err
	}
	return receipt, nil
}
