package repositories

import (
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db     *database.DB
	repo   TransactionRepositoryInterface
	user   *models.User
	salary *models.Category
	food   *models.Category
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.user = database.CreateTestUser(s.T(), s.db, "alice")
	s.salary = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Salary", models.CategoryTypeIncome)
	s.food = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Food", models.CategoryTypeExpense)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) monthQuery(year int, month time.Month, search string) TransactionQuery {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return TransactionQuery{
		UserID:    s.user.ID,
		StartDate: start,
		EndDate:   start.AddDate(0, 1, 0),
		Search:    search,
	}
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Create() {
	transaction := &models.Transaction{
		Amount:      decimal.NewFromFloat(42.50),
		Description: "Lunch",
		Date:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		CategoryID:  s.food.ID,
		UserID:      s.user.ID,
	}

	err := s.repo.Create(transaction)
	s.NoError(err)
	s.NotEqual(uuid.Nil, transaction.ID)
	s.NotZero(transaction.CreatedAt)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByID_PreloadsCategory() {
	created := database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "10.00",
		time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC))

	found, err := s.repo.GetByID(created.ID)
	s.NoError(err)
	s.Equal("Food", found.Category.Name)
	s.Equal(models.CategoryTypeExpense, found.Category.Type)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByMonth_WindowBoundaries() {
	// Inside March
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "10.00",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "20.00",
		time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC))
	// Outside March
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "30.00",
		time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "40.00",
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	transactions, err := s.repo.GetByMonth(s.monthQuery(2026, time.March, ""))
	s.NoError(err)
	s.Len(transactions, 2)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByMonth_OrderedNewestFirst() {
	old := database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "10.00",
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	recent := database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "20.00",
		time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))

	transactions, err := s.repo.GetByMonth(s.monthQuery(2026, time.March, ""))
	s.NoError(err)
	s.Require().Len(transactions, 2)
	s.Equal(recent.ID, transactions[0].ID)
	s.Equal(old.ID, transactions[1].ID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByMonth_SearchMatchesDescriptionAndCategory() {
	groceries := &models.Transaction{
		Amount:      decimal.NewFromFloat(25.00),
		Description: "Weekly groceries",
		Date:        time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		CategoryID:  s.food.ID,
		UserID:      s.user.ID,
	}
	s.NoError(s.repo.Create(groceries))

	paycheck := &models.Transaction{
		Amount:      decimal.NewFromFloat(3000.00),
		Description: "March paycheck",
		Date:        time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		CategoryID:  s.salary.ID,
		UserID:      s.user.ID,
	}
	s.NoError(s.repo.Create(paycheck))

	// Case-insensitive match on description
	transactions, err := s.repo.GetByMonth(s.monthQuery(2026, time.March, "GROCER"))
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(groceries.ID, transactions[0].ID)

	// Match on category name
	transactions, err = s.repo.GetByMonth(s.monthQuery(2026, time.March, "salary"))
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(paycheck.ID, transactions[0].ID)

	// No match
	transactions, err = s.repo.GetByMonth(s.monthQuery(2026, time.March, "utilities"))
	s.NoError(err)
	s.Len(transactions, 0)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByMonth_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, "bob")
	otherCategory := database.CreateTestCategory(s.T(), s.db, other.ID, "Food", models.CategoryTypeExpense)

	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "10.00",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, other.ID, otherCategory.ID, "99.00",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	transactions, err := s.repo.GetByMonth(s.monthQuery(2026, time.March, ""))
	s.NoError(err)
	s.Require().Len(transactions, 1)
	s.Equal(s.user.ID, transactions[0].UserID)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Update() {
	transaction := database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "10.00",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	transaction.Amount = decimal.NewFromFloat(15.75)
	transaction.Description = "Corrected"
	s.NoError(s.repo.Update(transaction))

	updated, err := s.repo.GetByID(transaction.ID)
	s.NoError(err)
	s.True(updated.Amount.Equal(decimal.NewFromFloat(15.75)))
	s.Equal("Corrected", updated.Description)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_Delete() {
	transaction := database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "10.00",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	s.NoError(s.repo.Delete(transaction.ID))

	_, err := s.repo.GetByID(transaction.ID)
	s.Equal(ErrTransactionNotFound, err)

	s.Equal(ErrTransactionNotFound, s.repo.Delete(transaction.ID))
}
