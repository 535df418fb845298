package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the monthly dashboard endpoint
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
	}
}

// GetDashboard returns the monthly overview: totals, the expense breakdown
// used for the chart, and the transaction list for the selected month
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var filters dto.TransactionFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&filters); err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	transactions, summary, monthStart, err := h.dashboardService.MonthOverview(userID, filters.Month, filters.Search)
	if err != nil {
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	chartValues := make([]string, 0, len(summary.Breakdown))
	for _, value := range summary.ChartValues() {
		chartValues = append(chartValues, value.String())
	}

	response := dto.DashboardResponse{
		Month:        monthStart.Format(models.MonthLayout),
		TotalIncome:  summary.TotalIncome.String(),
		TotalExpense: summary.TotalExpense.String(),
		Balance:      summary.Balance.String(),
		ChartLabels:  summary.ChartLabels(),
		ChartValues:  chartValues,
		Transactions: convertToTransactionResponses(transactions),
	}

	return c.JSON(http.StatusOK, response)
}
