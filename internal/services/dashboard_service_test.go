package services

import (
	"log/slog"
	"testing"
	"time"

	"fintrack/internal/database"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

func TestDashboardService(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

type DashboardServiceSuite struct {
	suite.Suite
	db      *database.DB
	service DashboardServiceInterface
	user    *models.User
	salary  *models.Category
	food    *models.Category
	housing *models.Category
}

func (s *DashboardServiceSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	transactionService := NewTransactionService(
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		nil,
		slog.Default(),
	)
	s.service = NewDashboardService(transactionService, nil, slog.Default())

	s.user = database.CreateTestUser(s.T(), s.db, "alice")
	s.salary = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Salary", models.CategoryTypeIncome)
	s.food = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Food", models.CategoryTypeExpense)
	s.housing = database.CreateTestCategory(s.T(), s.db, s.user.ID, "Housing", models.CategoryTypeExpense)
}

func (s *DashboardServiceSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *DashboardServiceSuite) TestMonthOverview() {
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.salary.ID, "3000.00",
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "250.00",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.housing.ID, "1200.00",
		time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC))
	// Outside the requested month
	database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "99.00",
		time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC))

	transactions, summary, monthStart, err := s.service.MonthOverview(s.user.ID, "2026-03", "")
	s.NoError(err)
	s.Len(transactions, 3)
	s.Equal(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), monthStart)

	s.True(summary.TotalIncome.Equal(decimal.NewFromInt(3000)))
	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(1450)))
	s.True(summary.Balance.Equal(decimal.NewFromInt(1550)))

	s.Require().Len(summary.Breakdown, 2)
	labels := summary.ChartLabels()
	values := summary.ChartValues()
	s.Len(labels, 2)
	s.Len(values, 2)
}

func (s *DashboardServiceSuite) TestMonthOverview_EmptyMonth() {
	transactions, summary, _, err := s.service.MonthOverview(s.user.ID, "2026-07", "")
	s.NoError(err)
	s.Len(transactions, 0)
	s.True(summary.TotalIncome.IsZero())
	s.True(summary.TotalExpense.IsZero())
	s.True(summary.Balance.IsZero())
	s.Len(summary.Breakdown, 0)
}

func (s *DashboardServiceSuite) TestMonthOverview_ReflectsAmountEdit() {
	txn := database.CreateTestTransaction(s.T(), s.db, s.user.ID, s.food.ID, "100.00",
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC))

	_, summary, _, err := s.service.MonthOverview(s.user.ID, "2026-03", "")
	s.Require().NoError(err)
	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(100)))

	transactionService := NewTransactionService(
		repositories.NewTransactionRepository(s.db.DB),
		repositories.NewCategoryRepository(s.db.DB),
		nil,
		slog.Default(),
	)
	newAmount := "250.00"
	_, err = transactionService.Update(s.user.ID, txn.ID, &dto.UpdateTransactionRequest{Amount: &newAmount})
	s.Require().NoError(err)

	_, summary, _, err = s.service.MonthOverview(s.user.ID, "2026-03", "")
	s.Require().NoError(err)
	s.True(summary.TotalExpense.Equal(decimal.NewFromInt(250)))
	s.True(summary.Balance.Equal(decimal.NewFromInt(-250)))
}

func (s *DashboardServiceSuite) TestMonthOverview_InvalidMonth() {
	_, _, _, err := s.service.MonthOverview(s.user.ID, "bogus", "")
	s.ErrorIs(err, ErrInvalidMonth)

	_, _, _, err = s.service.MonthOverview(s.user.ID, "2026-13", "")
	s.ErrorIs(err, ErrInvalidMonth)
}

func TestSummarize_BreakdownKeepsFirstSeenOrder(t *testing.T) {
	food := models.Category{Name: "Food", Type: models.CategoryTypeExpense}
	housing := models.Category{Name: "Housing", Type: models.CategoryTypeExpense}
	salary := models.Category{Name: "Salary", Type: models.CategoryTypeIncome}

	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(100), Category: housing},
		{Amount: decimal.NewFromInt(20), Category: food},
		{Amount: decimal.NewFromInt(1000), Category: salary},
		{Amount: decimal.NewFromInt(30), Category: food},
		{Amount: decimal.NewFromInt(200), Category: housing},
	}

	summary := Summarize(transactions)

	assert.True(t, summary.TotalIncome.Equal(decimal.NewFromInt(1000)))
	assert.True(t, summary.TotalExpense.Equal(decimal.NewFromInt(350)))
	assert.True(t, summary.Balance.Equal(decimal.NewFromInt(650)))

	// First-seen order, with repeated categories merged
	assert.Equal(t, []string{"Housing", "Food"}, summary.ChartLabels())
	values := summary.ChartValues()
	assert.True(t, values[0].Equal(decimal.NewFromInt(300)))
	assert.True(t, values[1].Equal(decimal.NewFromInt(50)))
}

func TestSummarize_Empty(t *testing.T) {
	summary := Summarize(nil)

	assert.True(t, summary.TotalIncome.IsZero())
	assert.True(t, summary.TotalExpense.IsZero())
	assert.True(t, summary.Balance.IsZero())
	assert.Empty(t, summary.Breakdown)
}
