package services

import (
	"fmt"
	"log/slog"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	demoUsername = "demo"
	demoEmail    = "demo@fintrack.local"
	demoPassword = "demo-password"

	demoMonths          = 3
	demoExpensesPerWeek = 4
)

// SeedService populates a development database with a demo user and a few
// months of plausible activity. Intended for local environments only.
type SeedService struct {
	authService     AuthServiceInterface
	categoryRepo    repositories.CategoryRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
	logger          *slog.Logger
}

// NewSeedService creates a new seed service
func NewSeedService(
	authService AuthServiceInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	logger *slog.Logger,
) *SeedService {
	return &SeedService{
		authService:     authService,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		logger:          logger,
	}
}

// SeedDemoData registers the demo user and fills the last few months with
// generated transactions. It is idempotent: an existing demo user means the
// database was already seeded and nothing is touched.
func (s *SeedService) SeedDemoData() error {
	if _, err := s.userRepo.GetByUsername(demoUsername); err == nil {
		s.logger.Info("demo data already present, skipping seed")
		return nil
	}

	user, err := s.authService.Register(&dto.RegisterRequest{
		Username: demoUsername,
		Email:    demoEmail,
		Password: demoPassword,
	})
	if err != nil {
		return fmt.Errorf("failed to register demo user: %w", err)
	}

	categories, err := s.categoryRepo.GetByUserID(user.ID)
	if err != nil {
		return fmt.Errorf("failed to load demo categories: %w", err)
	}

	var income, expenses []models.Category
	for _, cat := range categories {
		if cat.IsIncome() {
			income = append(income, cat)
		} else {
			expenses = append(expenses, cat)
		}
	}

	created := 0
	now := time.Now().UTC()

	for monthsBack := 0; monthsBack < demoMonths; monthsBack++ {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).
			AddDate(0, -monthsBack, 0)

		n, err := s.seedMonth(user.ID, monthStart, income, expenses)
		if err != nil {
			return err
		}
		created += n
	}

	s.logger.Info("demo data seeded",
		"user_id", user.ID,
		"transactions", created)

	return nil
}

func (s *SeedService) seedMonth(userID uuid.UUID, monthStart time.Time, income, expenses []models.Category) (int, error) {
	created := 0

	// One salary-style deposit per income category at the start of the month
	for i, cat := range income {
		amount := decimal.NewFromFloat(gofakeit.Float64Range(800, 4200)).Round(2)
		txn := &models.Transaction{
			Amount:      amount,
			Description: gofakeit.Company() + " payment",
			Date:        monthStart.AddDate(0, 0, i),
			CategoryID:  cat.ID,
			UserID:      userID,
		}
		if err := s.transactionRepo.Create(txn); err != nil {
			return created, fmt.Errorf("failed to seed income transaction: %w", err)
		}
		created++
	}

	if len(expenses) == 0 {
		return created, nil
	}

	_, monthEnd := models.MonthBounds(monthStart)
	for day := monthStart; day.Before(monthEnd); day = day.AddDate(0, 0, 7) {
		for i := 0; i < demoExpensesPerWeek; i++ {
			cat := expenses[gofakeit.Number(0, len(expenses)-1)]
			date := day.AddDate(0, 0, gofakeit.Number(0, 6))
			if !date.Before(monthEnd) {
				continue
			}

			txn := &models.Transaction{
				Amount:      decimal.NewFromFloat(gofakeit.Float64Range(3, 250)).Round(2),
				Description: gofakeit.ProductName(),
				Date:        date,
				CategoryID:  cat.ID,
				UserID:      userID,
			}
			if err := s.transactionRepo.Create(txn); err != nil {
				return created, fmt.Errorf("failed to seed expense transaction: %w", err)
			}
			created++
		}
	}

	return created, nil
}
