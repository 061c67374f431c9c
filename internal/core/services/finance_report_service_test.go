package services

import (
	"context"
	"testing"
	"time"

	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/adapters/persistence/models"
	"github.com/Five-Fishes/Club-Management-Spring-Server/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWindow(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	from := time.Date(2021, time.September, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2022, time.September, 1, 0, 0, 0, 0, time.UTC)
	return from, to
}

func TestMonthlyBreakdown(t *testing.T) {
	from, to := sessionWindow(t)

	transactions := []*models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: 100, CreatedAt: time.Date(2021, time.October, 3, 10, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeIncome, Amount: 50, CreatedAt: time.Date(2021, time.October, 20, 8, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeExpense, Amount: 30, CreatedAt: time.Date(2022, time.February, 14, 0, 0, 0, 0, time.UTC)},
		// outside window, must be ignored
		{Type: models.TransactionTypeIncome, Amount: 999, CreatedAt: time.Date(2021, time.August, 31, 23, 59, 59, 0, time.UTC)},
		{Type: models.TransactionTypeExpense, Amount: 999, CreatedAt: to},
	}

	result := MonthlyBreakdown(transactions, from, to)

	require.Len(t, result, 2)
	require.Len(t, result[models.TransactionTypeIncome], 12)
	require.Len(t, result[models.TransactionTypeExpense], 12)

	assert.Equal(t, 150.0, result[models.TransactionTypeIncome][time.October])
	assert.Equal(t, 30.0, result[models.TransactionTypeExpense][time.February])

	// Untouched months stay present at zero.
	assert.Equal(t, 0.0, result[models.TransactionTypeIncome][time.December])
	assert.Equal(t, 0.0, result[models.TransactionTypeExpense][time.August])
}

func TestMonthlyBreakdown_EmptyInput(t *testing.T) {
	from, to := sessionWindow(t)

	result := MonthlyBreakdown(nil, from, to)

	require.Len(t, result, 2)
	for _, transactionType := range []string{models.TransactionTypeIncome, models.TransactionTypeExpense} {
		require.Len(t, result[transactionType], 12)
		for month, amount := range result[transactionType] {
			assert.Zero(t, amount, "month %s", month)
		}
	}
}

func TestMonthlyBreakdown_InvertedWindowYieldsZeroTable(t *testing.T) {
	from, to := sessionWindow(t)

	transactions := []*models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: 100, CreatedAt: time.Date(2021, time.October, 3, 0, 0, 0, 0, time.UTC)},
	}

	result := MonthlyBreakdown(transactions, to, from)
	assert.Equal(t, 0.0, result[models.TransactionTypeIncome][time.October])
	require.Len(t, result[models.TransactionTypeIncome], 12)
}

func TestComputeStatistic(t *testing.T) {
	from, to := sessionWindow(t)
	inWindow := time.Date(2021, time.November, 1, 0, 0, 0, 0, time.UTC)

	transactions := []*models.Transaction{
		{Type: models.TransactionTypeIncome, Status: models.TransactionStatusCompleted, Amount: 100, CreatedAt: inWindow},
		{Type: models.TransactionTypeIncome, Status: models.TransactionStatusPending, Amount: 50, CreatedAt: inWindow},
		{Type: models.TransactionTypeExpense, Status: models.TransactionStatusCompleted, Amount: 30, CreatedAt: inWindow},
		{Type: models.TransactionTypeExpense, Status: models.TransactionStatusInvalid, Amount: 20, CreatedAt: inWindow},
	}

	stat := ComputeStatistic(transactions, from, to)

	assert.Equal(t, 100.0, stat.RealiseIncome)
	assert.Equal(t, 50.0, stat.PendingIncome)
	assert.Equal(t, 30.0, stat.RealiseExpense)
	assert.Equal(t, 20.0, stat.InvalidExpense)
	assert.Equal(t, 0.0, stat.PendingExpense)
	assert.Equal(t, 0.0, stat.BadDebt)
}

func TestComputeStatistic_InvalidIncomeIsBadDebt(t *testing.T) {
	from, to := sessionWindow(t)
	inWindow := time.Date(2022, time.March, 1, 0, 0, 0, 0, time.UTC)

	transactions := []*models.Transaction{
		{Type: models.TransactionTypeIncome, Status: models.TransactionStatusInvalid, Amount: 75, CreatedAt: inWindow},
	}

	stat := ComputeStatistic(transactions, from, to)
	assert.Equal(t, 75.0, stat.BadDebt)
	assert.Equal(t, 0.0, stat.RealiseIncome)
}

func TestComputeStatistic_WindowFiltering(t *testing.T) {
	from, to := sessionWindow(t)

	transactions := []*models.Transaction{
		// exactly on the inclusive lower bound: counted
		{Type: models.TransactionTypeIncome, Status: models.TransactionStatusCompleted, Amount: 10, CreatedAt: from},
		// exactly on the exclusive upper bound: not counted
		{Type: models.TransactionTypeIncome, Status: models.TransactionStatusCompleted, Amount: 20, CreatedAt: to},
	}

	stat := ComputeStatistic(transactions, from, to)
	assert.Equal(t, 10.0, stat.RealiseIncome)
}

func TestFinanceReportService_GetByEventID(t *testing.T) {
	event := &models.Event{ID: 7, Name: "Charity Run"}
	eventRepo := &fakeEventRepo{events: []*models.Event{event}}
	budgetRepo := &fakeBudgetRepo{budgets: []*models.Budget{
		{EventID: 7, Type: models.TransactionTypeIncome, Amount: 500},
		{EventID: 7, Type: models.TransactionTypeIncome, Amount: 250},
		{EventID: 7, Type: models.TransactionTypeExpense, Amount: 300},
		{EventID: 8, Type: models.TransactionTypeIncome, Amount: 999}, // other event
	}}
	transactionRepo := &fakeTransactionRepo{transactions: []*models.Transaction{
		{EventID: 7, Type: models.TransactionTypeIncome, Amount: 400},
		{EventID: 7, Type: models.TransactionTypeExpense, Amount: 120},
		{EventID: 7, Type: models.TransactionTypeExpense, Amount: 80},
	}}

	s := NewFinanceReportService(eventRepo, budgetRepo, transactionRepo)

	report, err := s.GetByEventID(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, 750.0, report.TotalBudgetIncome)
	assert.Equal(t, 300.0, report.TotalBudgetExpenses)
	assert.Equal(t, 400.0, report.TotalIncome)
	assert.Equal(t, 200.0, report.TotalExpenses)
	assert.Equal(t, event, report.Event)
}

func TestFinanceReportService_GetByEventID_NotFound(t *testing.T) {
	s := NewFinanceReportService(&fakeEventRepo{}, &fakeBudgetRepo{}, &fakeTransactionRepo{})

	_, err := s.GetByEventID(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestFinanceReportService_GetByEventID_NoLines(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{{ID: 1, Name: "Quiet Event"}}}
	s := NewFinanceReportService(eventRepo, &fakeBudgetRepo{}, &fakeTransactionRepo{})

	report, err := s.GetByEventID(context.Background(), 1)
	require.NoError(t, err)

	// Empty finance data yields zero totals, not errors.
	assert.Zero(t, report.TotalBudgetIncome)
	assert.Zero(t, report.TotalBudgetExpenses)
	assert.Zero(t, report.TotalIncome)
	assert.Zero(t, report.TotalExpenses)
}

func TestFinanceReportService_MonthlyByYearSession(t *testing.T) {
	transactionRepo := &fakeTransactionRepo{transactions: []*models.Transaction{
		{Type: models.TransactionTypeIncome, Amount: 100, CreatedAt: time.Date(2021, time.September, 15, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeExpense, Amount: 40, CreatedAt: time.Date(2022, time.July, 1, 0, 0, 0, 0, time.UTC)},
		{Type: models.TransactionTypeIncome, Amount: 999, CreatedAt: time.Date(2020, time.October, 1, 0, 0, 0, 0, time.UTC)},
	}}

	s := NewFinanceReportService(&fakeEventRepo{}, &fakeBudgetRepo{}, transactionRepo)

	result, err := s.MonthlyByYearSession(context.Background(), "2021/2022")
	require.NoError(t, err)

	assert.Equal(t, 100.0, result[models.TransactionTypeIncome][time.September])
	assert.Equal(t, 40.0, result[models.TransactionTypeExpense][time.July])
	assert.Equal(t, 0.0, result[models.TransactionTypeIncome][time.October])

	_, err = s.MonthlyByYearSession(context.Background(), "bad-session")
	assert.Error(t, err)
}

func TestFinanceReportService_List_Pagination(t *testing.T) {
	eventRepo := &fakeEventRepo{events: []*models.Event{
		{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"},
	}}
	s := NewFinanceReportService(eventRepo, &fakeBudgetRepo{}, &fakeTransactionRepo{})

	reports, total, err := s.List(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, reports, 2)

	reports, total, err = s.List(context.Background(), 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Len(t, reports, 1)

	reports, _, err = s.List(context.Background(), 10, 2)
	require.NoError(t, err)
	assert.Empty(t, reports)
}
