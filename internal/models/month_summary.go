package models

import "github.com/shopspring/decimal"

// CategoryAmount is one slice of the expense breakdown: a category name and
// the summed amount recorded against it.
type CategoryAmount struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthSummary is the derived, read-only aggregate view over one month of
// transactions. It is computed on demand and never persisted.
type MonthSummary struct {
	TotalIncome  decimal.Decimal  `json:"total_income"`
	TotalExpense decimal.Decimal  `json:"total_expense"`
	Balance      decimal.Decimal  `json:"balance"`
	Breakdown    []CategoryAmount `json:"expense_breakdown"`
}

// ChartLabels returns the expense category names in breakdown insertion
// order, parallel to ChartValues.
func (s *MonthSummary) ChartLabels() []string {
	labels := make([]string, 0, len(s.Breakdown))
	for _, entry := range s.Breakdown {
		labels = append(labels, entry.Name)
	}
	return labels
}

// ChartValues returns the summed expense amounts in the same order as
// ChartLabels.
func (s *MonthSummary) ChartValues() []decimal.Decimal {
	values := make([]decimal.Decimal, 0, len(s.Breakdown))
	for _, entry := range s.Breakdown {
		values = append(values, entry.Amount)
	}
	return values
}
