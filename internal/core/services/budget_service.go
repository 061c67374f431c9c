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

// BudgetService handles event budget lines
type BudgetService struct {
	budgetRepo repositories.BudgetRepository
	eventRepo  repositories.EventRepository
	security   *SecurityService
}

// NewBudgetService creates a new budget service
func NewBudgetService(
	budgetRepo repositories.BudgetRepository,
	eventRepo repositories.EventRepository,
	security *SecurityService,
) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		eventRepo:  eventRepo,
		security:   security,
	}
}

// CreateBudgetInput represents budget line input
type CreateBudgetInput struct {
	EventID uint    `json:"event_id" validate:"required"`
	Name    string  `json:"name" validate:"required,max=100"`
	Amount  float64 `json:"amount" validate:"required,gt=0"`
	Type    string  `json:"type" validate:"required"`
	Details string  `json:"details"`
}

// UpdateBudgetInput represents budget line update input
type UpdateBudgetInput struct {
	Name    *string  `json:"name"`
	Amount  *float64 `json:"amount"`
	Type    *string  `json:"type"`
	Details *string  `json:"details"`
}

// Create adds a budget line to an event; caller must be event head or current
// administrator.
func (s *BudgetService) Create(ctx context.Context, actorID uint, input *CreateBudgetInput) (*models.Budget, error) {
	allowed, err := s.security.CanSubmitBudgetOrTransaction(ctx, actorID, input.EventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if input.Amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if input.Type != models.TransactionTypeIncome && input.Type != models.TransactionTypeExpense {
		return nil, domain.ErrInvalidInput
	}

	budget := &models.Budget{
		EventID: input.EventID,
		Name:    input.Name,
		Amount:  input.Amount,
		Type:    input.Type,
		Details: input.Details,
	}
	if err := s.budgetRepo.Create(ctx, budget); err != nil {
		return nil, err
	}

	log.Printf("✅ Budget line created for event %d: %s %.2f", input.EventID, input.Type, input.Amount)
	return budget, nil
}

// GetByID gets a budget line by ID
func (s *BudgetService) GetByID(ctx context.Context, id uint) (*models.Budget, error) {
	budget, err := s.budgetRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrBudgetNotFound
		}
		return nil, err
	}
	return budget, nil
}

// ListByEventID lists budget lines of an event
func (s *BudgetService) ListByEventID(ctx context.Context, eventID uint) ([]*models.Budget, error) {
	return s.budgetRepo.ListByEventID(ctx, eventID)
}

// Update updates a budget line; caller must be event head or current
// administrator of the budget's event.
func (s *BudgetService) Update(ctx context.Context, actorID, budgetID uint, input *UpdateBudgetInput) (*models.Budget, error) {
	budget, err := s.GetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.security.CanSubmitBudgetOrTransaction(ctx, actorID, budget.EventID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	if input.Name != nil {
		budget.Name = *input.Name
	}
	if input.Amount != nil {
		if *input.Amount <= 0 {
			return nil, domain.ErrInvalidInput
		}
		budget.Amount = *input.Amount
	}
	if input.Type != nil {
		if *input.Type != models.TransactionTypeIncome && *input.Type != models.TransactionTypeExpense {
			return nil, domain.ErrInvalidInput
		}
		budget.Type = *input.Type
	}
	if input.Details != nil {
		budget.Details = *input.Details
	}

	if err := s.budgetRepo.Update(ctx, budget); err != nil {
		return nil, err
	}

	log.Printf("✅ Budget line %d updated", budgetID)
	return budget, nil
}

// Delete removes a budget line; caller must be event head or current
// administrator of the budget's event.
func (s *BudgetService) Delete(ctx context.Context, actorID, budgetID uint) error {
	budget, err := s.GetByID(ctx, budgetID)
	if err != nil {
		return err
	}

	allowed, err := s.security.CanSubmitBudgetOrTransaction(ctx, actorID, budget.EventID)
	if err != nil {
		return err
	}
	if !allowed {
		return domain.ErrForbidden
	}

	if err := s.budgetRepo.Delete(ctx, budgetID); err != nil {
		return err
	}

	log.Printf("✅ Budget line %d deleted", budgetID)
	return nil
}
