package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidAmount       = errors.New("amount must be a positive number")
	ErrInvalidDate         = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidMonth        = errors.New("month must be in YYYY-MM format")
	ErrCategoryNotOwned    = errors.New("category does not exist or belongs to another user")
	ErrDescriptionTooLong  = fmt.Errorf("description must be at most %d characters", models.MaxDescriptionLength)
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewTransactionService creates a new transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransactionServiceInterface {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		metrics:         metrics,
		logger:          logger,
	}
}

// Create records a new transaction for the user. The category must belong
// to the same user, the amount must be positive and the date, when given,
// must be a calendar day; it defaults to today.
func (s *TransactionService) Create(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	amount, err := parseAmount(req.Amount)
	if err != nil {
		s.recordOperation("create", "invalid_amount")
		return nil, err
	}

	date, err := parseDateOrToday(req.Date)
	if err != nil {
		s.recordOperation("create", "invalid_date")
		return nil, err
	}

	description := strings.TrimSpace(req.Description)
	if len(description) > models.MaxDescriptionLength {
		return nil, ErrDescriptionTooLong
	}

	category, err := s.resolveOwnedCategory(userID, req.CategoryID)
	if err != nil {
		s.recordOperation("create", "invalid_category")
		return nil, err
	}

	transaction := &models.Transaction{
		Amount:      amount,
		Description: description,
		Date:        date,
		CategoryID:  category.ID,
		UserID:      userID,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	transaction.Category = *category

	s.recordOperation("create", "success")
	s.recordAmount(amount, category.Type)
	s.logger.Info("transaction created",
		"transaction_id", transaction.ID,
		"user_id", userID,
		"category_id", category.ID)

	return transaction, nil
}

// Update modifies a transaction owned by the user. Omitted fields keep
// their current value; a changed category must also belong to the user.
func (s *TransactionService) Update(userID, transactionID uuid.UUID, req *dto.UpdateTransactionRequest) (*models.Transaction, error) {
	transaction, err := s.getOwnedTransaction(userID, transactionID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		amount, err := parseAmount(*req.Amount)
		if err != nil {
			s.recordOperation("update", "invalid_amount")
			return nil, err
		}
		transaction.Amount = amount
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			s.recordOperation("update", "invalid_date")
			return nil, err
		}
		transaction.Date = date
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if len(description) > models.MaxDescriptionLength {
			return nil, ErrDescriptionTooLong
		}
		transaction.Description = description
	}

	if req.CategoryID != nil {
		category, err := s.resolveOwnedCategory(userID, *req.CategoryID)
		if err != nil {
			s.recordOperation("update", "invalid_category")
			return nil, err
		}
		transaction.CategoryID = category.ID
		transaction.Category = *category
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}

	s.recordOperation("update", "success")
	s.logger.Info("transaction updated", "transaction_id", transactionID, "user_id", userID)

	return transaction, nil
}

// Delete removes a transaction owned by the user
func (s *TransactionService) Delete(userID, transactionID uuid.UUID) error {
	if _, err := s.getOwnedTransaction(userID, transactionID); err != nil {
		return err
	}

	if err := s.transactionRepo.Delete(transactionID); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.recordOperation("delete", "success")
	s.logger.Info("transaction deleted", "transaction_id", transactionID, "user_id", userID)

	return nil
}

// Query returns the user's transactions for a month, optionally filtered by
// a free text search. An empty month means the current month.
func (s *TransactionService) Query(userID uuid.UUID, month, search string) ([]models.Transaction, time.Time, error) {
	monthStart, err := resolveMonth(month)
	if err != nil {
		return nil, time.Time{}, err
	}

	start, end := models.MonthBounds(monthStart)
	transactions, err := s.transactionRepo.GetByMonth(repositories.TransactionQuery{
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
		Search:    strings.TrimSpace(search),
	})
	if err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query transactions: %w", err)
	}

	return transactions, monthStart, nil
}

func (s *TransactionService) getOwnedTransaction(userID, transactionID uuid.UUID) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(transactionID)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	// Not-found rather than forbidden: don't leak other users' transaction IDs
	if !transaction.IsOwnedBy(userID) {
		return nil, ErrTransactionNotFound
	}

	return transaction, nil
}

func (s *TransactionService) resolveOwnedCategory(userID uuid.UUID, categoryID string) (*models.Category, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return nil, ErrCategoryNotOwned
	}

	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil, ErrCategoryNotOwned
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if category.UserID != userID {
		return nil, ErrCategoryNotOwned
	}

	return category, nil
}

func (s *TransactionService) recordOperation(operation, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("transaction_operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
}

func (s *TransactionService) recordAmount(amount decimal.Decimal, categoryType string) {
	if s.metrics == nil {
		return
	}
	value, _ := amount.Float64()
	s.metrics.RecordGauge("transaction_amount", value, map[string]string{
		"category_type": categoryType,
	})
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount.Round(2), nil
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(models.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return date.UTC(), nil
}

func parseDateOrToday(raw string) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return models.TruncateToDay(time.Now().UTC()), nil
	}
	return parseDate(raw)
}

func resolveMonth(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		now := time.Now().UTC()
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), nil
	}

	month, err := time.Parse(models.MonthLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidMonth
	}
	return month.UTC(), nil
}
