package services

import (
	"log/slog"
	"time"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates a month of transactions into summary figures
type DashboardService struct {
	transactionService TransactionServiceInterface
	metrics            MetricsRecorderInterface
	logger             *slog.Logger
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	transactionService TransactionServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) DashboardServiceInterface {
	return &DashboardService{
		transactionService: transactionService,
		metrics:            metrics,
		logger:             logger,
	}
}

// MonthOverview loads the user's transactions for the requested month and
// folds them into totals and a per-category expense breakdown.
func (s *DashboardService) MonthOverview(userID uuid.UUID, month, search string) ([]models.Transaction, *models.MonthSummary, time.Time, error) {
	started := time.Now()

	transactions, monthStart, err := s.transactionService.Query(userID, month, search)
	if err != nil {
		s.recordRequest("error")
		// Query errors are already domain errors (ErrInvalidMonth) or
		// wrapped repository failures; pass them through unchanged so
		// handlers can match the sentinels.
		return nil, nil, time.Time{}, err
	}

	summary := Summarize(transactions)

	s.recordRequest("success")
	if s.metrics != nil {
		s.metrics.RecordProcessingTime("dashboard_aggregation", time.Since(started))
	}

	return transactions, summary, monthStart, nil
}

// Summarize folds transactions into a month summary. Income and expense
// totals come from the category type of each transaction; the expense
// breakdown keeps categories in first-seen order so the chart is stable
// for a given transaction ordering.
func Summarize(transactions []models.Transaction) *models.MonthSummary {
	summary := &models.MonthSummary{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	expenseIndex := make(map[string]int)

	for _, txn := range transactions {
		switch txn.Category.Type {
		case models.CategoryTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case models.CategoryTypeExpense:
			summary.TotalExpense = summary.TotalExpense.Add(txn.Amount)

			name := txn.Category.Name
			if idx, seen := expenseIndex[name]; seen {
				summary.Breakdown[idx].Amount = summary.Breakdown[idx].Amount.Add(txn.Amount)
			} else {
				expenseIndex[name] = len(summary.Breakdown)
				summary.Breakdown = append(summary.Breakdown, models.CategoryAmount{
					Name:   name,
					Amount: txn.Amount,
				})
			}
		}
	}

	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpense)

	return summary
}

func (s *DashboardService) recordRequest(status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("dashboard_request", map[string]string{
		"status": status,
	})
}
