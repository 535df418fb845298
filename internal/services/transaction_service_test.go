package services

import (
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionService(t *testing.T) {
	suite.Run(t, new(TransactionServiceSuite))
}

type TransactionServiceSuite struct {
	suite.Suite
	db      *database.DB
	service TransactionServiceInterface
	user    *models.User
	salary  *models.Category
	food    *models.Category
}

func (s *TransactionServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.service = NewTransactionService(
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		nil,
		slog.Default(),
	)
	s.user = database.CreateTestUser(s.T(), s.db, "alice")
	s.salary = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Salary", models.CategoryTypeIncome)
	s.food = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Food", models.CategoryTypeExpense)
}

func (s *TransactionServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionServiceSuite) TestCreate_Success() {
	transaction, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:      "42.50",
		Description: "Lunch",
		Date:        "2026-03-15",
		CategoryID:  s.food.ID.String(),
	})
	s.NoError(err)
	s.True(transaction.Amount.Equal(decimal.NewFromFloat(42.50)))
	s.Equal("Lunch", transaction.Description)
	s.Equal(s.food.ID, transaction.CategoryID)
	s.Equal(s.user.ID, transaction.UserID)
	s.Equal("Food", transaction.Category.Name)
}

func (s *TransactionServiceSuite) TestCreate_DateDefaultsToToday() {
	transaction, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:     "10.00",
		CategoryID: s.food.ID.String(),
	})
	s.NoError(err)

	today := models.TruncateToDay(time.Now().UTC())
	s.True(transaction.Date.Equal(today))
}

func (s *TransactionServiceSuite) TestCreate_RoundsAmountToCents() {
	transaction, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:     "10.999",
		CategoryID: s.food.ID.String(),
	})
	s.NoError(err)
	s.Equal("11", transaction.Amount.String())
}

func (s *TransactionServiceSuite) TestCreate_InvalidAmount() {
	for _, amount := range []string{"", "abc", "0", "-5.00"} {
		_, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
			Amount:     amount,
			CategoryID: s.food.ID.String(),
		})
		s.Equal(ErrInvalidAmount, err, "amount %q", amount)
	}
}

func (s *TransactionServiceSuite) TestCreate_InvalidDate() {
	_, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:     "10.00",
		Date:       "15/03/2026",
		CategoryID: s.food.ID.String(),
	})
	s.Equal(ErrInvalidDate, err)
}

func (s *TransactionServiceSuite) TestCreate_UnknownCategory() {
	_, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:     "10.00",
		CategoryID: uuid.New().String(),
	})
	s.Equal(ErrCategoryNotOwned, err)
}

func (s *TransactionServiceSuite) TestCreate_OtherUsersCategory() {
	other := database.CreateTestUser(s.T(), s.db, "bob")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other.ID, "Rent", models.CategoryTypeExpense)

	_, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:     "10.00",
		CategoryID: otherCategory.ID.String(),
	})
	s.Equal(ErrCategoryNotOwned, err)
}

func (s *TransactionServiceSuite) TestUpdate_PartialFields() {
	created, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:      "10.00",
		Description: "Lunch",
		Date:        "2026-03-15",
		CategoryID:  s.food.ID.String(),
	})
	s.Require().NoError(err)

	newAmount := "25.00"
	updated, err := s.service.Update(s.user.ID, created.ID, &dto.UpdateTransactionRequest{
		Amount: &newAmount,
	})
	s.NoError(err)
	s.True(updated.Amount.Equal(decimal.NewFromFloat(25.00)))
	// Untouched fields keep their values
	s.Equal("Lunch", updated.Description)
	s.Equal(s.food.ID, updated.CategoryID)
}

func (s *TransactionServiceSuite) TestUpdate_ChangeCategoryRequiresOwnership() {
	created, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:     "10.00",
		Date:       "2026-03-15",
		CategoryID: s.food.ID.String(),
	})
	s.Require().NoError(err)

	other := database.CreateTestUser(s.T(), s.db, "bob")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other.ID, "Rent", models.CategoryTypeExpense)

	categoryID := otherCategory.ID.String()
	_, err = s.service.Update(s.user.ID, created.ID, &dto.UpdateTransactionRequest{
		CategoryID: &categoryID,
	})
	s.Equal(ErrCategoryNotOwned, err)
}

func (s *TransactionServiceSuite) TestUpdate_OtherUsersTransaction() {
	other := database.CreateTestUser(s.T(), s.db, "bob")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other.ID, "Rent", models.CategoryTypeExpense)
	transaction := database.CreateTestTransaction(s.T(), s.db, other.ID, otherCategory.ID, "10.00",
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	amount := "99.00"
	_, err := s.service.Update(s.user.ID, transaction.ID, &dto.UpdateTransactionRequest{
		Amount: &amount,
	})
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionServiceSuite) TestDelete() {
	created, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:     "10.00",
		Date:       "2026-03-15",
		CategoryID: s.food.ID.String(),
	})
	s.Require().NoError(err)

	s.NoError(s.service.Delete(s.user.ID, created.ID))
	s.Equal(ErrTransactionNotFound, s.service.Delete(s.user.ID, created.ID))
}

func (s *TransactionServiceSuite) TestDelete_OtherUsersTransaction() {
	other := database.CreateTestUser(s.T(), s.db, "bob")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other.ID, "Rent", models.CategoryTypeExpense)
	transaction := database.CreateTestTransaction(s.T(), s.db, other.ID, otherCategory.ID, "10.00",
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	s.Equal(ErrTransactionNotFound, s.service.Delete(s.user.ID, transaction.ID))
}

func (s *TransactionServiceSuite) TestQuery_MonthAndSearch() {
	_, err := s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:      "25.00",
		Description: "Weekly groceries",
		Date:        "2026-03-10",
		CategoryID:  s.food.ID.String(),
	})
	s.Require().NoError(err)
	_, err = s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:      "3000.00",
		Description: "Paycheck",
		Date:        "2026-03-01",
		CategoryID:  s.salary.ID.String(),
	})
	s.Require().NoError(err)
	_, err = s.service.Create(s.user.ID, &dto.CreateTransactionRequest{
		Amount:      "12.00",
		Description: "February lunch",
		Date:        "2026-02-20",
		CategoryID:  s.food.ID.String(),
	})
	s.Require().NoError(err)

	transactions, monthStart, err := s.service.Query(s.user.ID, "2026-03", "")
	s.NoError(err)
	s.Len(transactions, 2)
	s.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), monthStart)

	transactions, _, err = s.service.Query(s.user.ID, "2026-03", "groceries")
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal("Weekly groceries", transactions[0].Description)
}

func (s *TransactionServiceSuite) TestQuery_InvalidMonth() {
	_, _, err := s.service.Query(s.user.ID, "March 2026", "")
	s.Equal(ErrInvalidMonth, err)
}

func (s *TransactionServiceSuite) TestQuery_EmptyMonthDefaultsToCurrent() {
	_, monthStart, err := s.service.Query(s.user.ID, "", "")
	s.NoError(err)

	now := time.Now().UTC()
	s.Equal(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC), monthStart)
}
