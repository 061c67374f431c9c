package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/repositories"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/pkg/yearsession"

	"gorm.io/gorm"
)

// FinanceReportStatistic holds the six settlement totals of one year session.
// INCOME/INVALID feeds BadDebt; the mapping is fixed, there is no catch-all.
type FinanceReportStatistic struct {
	RealiseIncome  float64 `json:"realise_income"`
	PendingIncome  float64 `json:"pending_income"`
	RealiseExpense float64 `json:"realise_expense"`
	PendingExpense float64 `json:"pending_expense"`
	InvalidExpense float64 `json:"invalid_expense"`
	BadDebt        float64 `json:"bad_debt"`
}

// FinanceReport holds the actual-vs-budgeted totals of one event
type FinanceReport struct {
	Event               *models.Event `json:"event"`
	TotalBudgetIncome   float64       `json:"total_budget_income"`
	TotalBudgetExpenses float64       `json:"total_budget_expenses"`
	TotalIncome         float64       `json:"total_income"`
	TotalExpenses       float64       `json:"total_expenses"`
}

// MonthlyBreakdown buckets transaction amounts by type and calendar month over
// the half-open window [inclusiveFrom, exclusiveTo). The result always holds
// all 12 academic months for both INCOME and EXPENSE, defaulting to zero; an
// inverted window yields the all-zero table.
func MonthlyBreakdown(transactions []*models.Transaction, inclusiveFrom, exclusiveTo time.Time) map[string]map[time.Month]float64 {
	result := map[string]map[time.Month]float64{
		models.TransactionTypeIncome:  make(map[time.Month]float64, 12),
		models.TransactionTypeExpense: make(map[time.Month]float64, 12),
	}
	for transactionType := range result {
		for _, month := range yearsession.Months() {
			result[transactionType][month] = 0
		}
	}

	for _, transaction := range transactions {
		if transaction.CreatedAt.Before(inclusiveFrom) || !transaction.CreatedAt.Before(exclusiveTo) {
			continue
		}
		buckets, ok := result[transaction.Type]
		if !ok {
			continue
		}
		month := transaction.CreatedAt.In(yearsession.Location()).Month()
		buckets[month] += transaction.Amount
	}
	return result
}

// ComputeStatistic reduces transactions inside [inclusiveFrom, exclusiveTo)
// into the six settlement totals. Pairs outside the fixed mapping are not
// counted anywhere.
func ComputeStatistic(transactions []*models.Transaction, inclusiveFrom, exclusiveTo time.Time) FinanceReportStatistic {
	var stat FinanceReportStatistic

	for _, transaction := range transactions {
		if transaction.CreatedAt.Before(inclusiveFrom) || !transaction.CreatedAt.Before(exclusiveTo) {
			continue
		}
		switch transaction.Type {
		case models.TransactionTypeIncome:
			switch transaction.Status {
			case models.TransactionStatusCompleted:
				stat.RealiseIncome += transaction.Amount
			case models.TransactionStatusPending:
				stat.PendingIncome += transaction.Amount
			case models.TransactionStatusInvalid:
				stat.BadDebt += transaction.Amount
			}
		case models.TransactionTypeExpense:
			switch transaction.Status {
			case models.TransactionStatusCompleted:
				stat.RealiseExpense += transaction.Amount
			case models.TransactionStatusPending:
				stat.PendingExpense += transaction.Amount
			case models.TransactionStatusInvalid:
				stat.InvalidExpense += transaction.Amount
			}
		}
	}
	return stat
}

// SumTransactionAmounts totals the amounts of a transaction slice
func SumTransactionAmounts(transactions []*models.Transaction) float64 {
	var total float64
	for _, transaction := range transactions {
		total += transaction.Amount
	}
	return total
}

// SumBudgetAmounts totals the amounts of a budget slice
func SumBudgetAmounts(budgets []*models.Budget) float64 {
	var total float64
	for _, budget := range budgets {
		total += budget.Amount
	}
	return total
}

// FinanceReportService builds finance reports from budget and transaction data
type FinanceReportService struct {
	eventRepo       repositories.EventRepository
	budgetRepo      repositories.BudgetRepository
	transactionRepo repositories.TransactionRepository
}

// NewFinanceReportService creates a new finance report service
func NewFinanceReportService(
	eventRepo repositories.EventRepository,
	budgetRepo repositories.BudgetRepository,
	transactionRepo repositories.TransactionRepository,
) *FinanceReportService {
	return &FinanceReportService{
		eventRepo:       eventRepo,
		budgetRepo:      budgetRepo,
		transactionRepo: transactionRepo,
	}
}

// GetByEventID builds the finance report of one event
func (s *FinanceReportService) GetByEventID(ctx context.Context, eventID uint) (*FinanceReport, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEventNotFound
		}
		return nil, err
	}
	return s.buildReport(ctx, event)
}

// List builds finance reports for all events, paginated in memory since every
// report needs its own aggregation queries anyway
func (s *FinanceReportService) List(ctx context.Context, offset, limit int) ([]*FinanceReport, int64, error) {
	events, err := s.eventRepo.ListAll(ctx)
	if err != nil {
		return nil, 0, err
	}

	total := int64(len(events))
	if offset >= len(events) {
		return []*FinanceReport{}, total, nil
	}
	end := offset + limit
	if end > len(events) {
		end = len(events)
	}

	reports := make([]*FinanceReport, 0, end-offset)
	for _, event := range events[offset:end] {
		report, err := s.buildReport(ctx, event)
		if err != nil {
			return nil, 0, err
		}
		reports = append(reports, report)
	}
	return reports, total, nil
}

func (s *FinanceReportService) buildReport(ctx context.Context, event *models.Event) (*FinanceReport, error) {
	budgetIncome, err := s.budgetRepo.ListByEventIDAndType(ctx, event.ID, models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	budgetExpenses, err := s.budgetRepo.ListByEventIDAndType(ctx, event.ID, models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}
	income, err := s.transactionRepo.ListByEventIDAndType(ctx, event.ID, models.TransactionTypeIncome)
	if err != nil {
		return nil, err
	}
	expenses, err := s.transactionRepo.ListByEventIDAndType(ctx, event.ID, models.TransactionTypeExpense)
	if err != nil {
		return nil, err
	}

	return &FinanceReport{
		Event:               event,
		TotalBudgetIncome:   SumBudgetAmounts(budgetIncome),
		TotalBudgetExpenses: SumBudgetAmounts(budgetExpenses),
		TotalIncome:         SumTransactionAmounts(income),
		TotalExpenses:       SumTransactionAmounts(expenses),
	}, nil
}

// MonthlyByYearSession reports the per-month income and expense totals of one
// year session
func (s *FinanceReportService) MonthlyByYearSession(ctx context.Context, session string) (map[string]map[time.Month]float64, error) {
	inclusiveFrom, err := yearsession.FirstInstantOf(session)
	if err != nil {
		return nil, err
	}
	next, err := yearsession.Next(session)
	if err != nil {
		return nil, err
	}
	exclusiveTo, err := yearsession.FirstInstantOf(next)
	if err != nil {
		return nil, err
	}
	log.Printf("monthly finance report %s: from %s to %s", session, inclusiveFrom, exclusiveTo)

	transactions, err := s.transactionRepo.ListByCreatedAtWindow(ctx, inclusiveFrom, exclusiveTo)
	if err != nil {
		return nil, err
	}
	return MonthlyBreakdown(transactions, inclusiveFrom, exclusiveTo), nil
}

// StatisticOfCurrentYearSession reports the six settlement totals of the
// current year session
func (s *FinanceReportService) StatisticOfCurrentYearSession(ctx context.Context) (*FinanceReportStatistic, error) {
	current := yearsession.Current()
	inclusiveFrom, err := yearsession.FirstInstantOf(current)
	if err != nil {
		return nil, err
	}
	next, err := yearsession.Next(current)
	if err != nil {
		return nil, err
	}
	exclusiveTo, err := yearsession.FirstInstantOf(next)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.ListByCreatedAtWindow(ctx, inclusiveFrom, exclusiveTo)
	if err != nil {
		return nil, err
	}
	stat := ComputeStatistic(transactions, inclusiveFrom, exclusiveTo)
	return &stat, nil
}
