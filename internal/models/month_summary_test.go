package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestMonthSummary_ChartHelpers(t *testing.T) {
	summary := MonthSummary{
		TotalIncome:  decimal.NewFromInt(3000),
		TotalExpense: decimal.NewFromInt(1280),
		Balance:      decimal.NewFromInt(1720),
		Breakdown: []CategoryAmount{
			{Name: "Dining", Amount: decimal.NewFromInt(80)},
			{Name: "Rent", Amount: decimal.NewFromInt(1200)},
		},
	}

	assert.Equal(t, []string{"Dining", "Rent"}, summary.ChartLabels())

	values := summary.ChartValues()
	assert.Len(t, values, 2)
	assert.True(t, values[0].Equal(decimal.NewFromInt(80)))
	assert.True(t, values[1].Equal(decimal.NewFromInt(1200)))
}

func TestMonthSummary_ChartHelpersEmpty(t *testing.T) {
	summary := MonthSummary{}

	assert.Empty(t, summary.ChartLabels())
	assert.Empty(t, summary.ChartValues())
	assert.NotNil(t, summary.ChartLabels())
	assert.NotNil(t, summary.ChartValues())
}
