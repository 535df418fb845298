package models

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCategory_Validate(t *testing.T) {
	validUserID := uuid.New()

	tests := []struct {
		name     string
		category Category
		wantErr  bool
		errMsg   string
	}{
		{
			name: "valid income category",
			category: Category{
				Name:   "Salary",
				Type:   CategoryTypeIncome,
				UserID: validUserID,
			},
			wantErr: false,
		},
		{
			name: "valid expense category",
			category: Category{
				Name:   "Food",
				Type:   CategoryTypeExpense,
				UserID: validUserID,
			},
			wantErr: false,
		},
		{
			name: "missing name",
			category: Category{
				Type:   CategoryTypeExpense,
				UserID: validUserID,
			},
			wantErr: true,
			errMsg:  "category name is required",
		},
		{
			name: "name too long",
			category: Category{
				Name:   strings.Repeat("x", MaxCategoryNameLength+1),
				Type:   CategoryTypeExpense,
				UserID: validUserID,
			},
			wantErr: true,
			errMsg:  "category name too long",
		},
		{
			name: "invalid type",
			category: Category{
				Name:   "Savings",
				Type:   "savings",
				UserID: validUserID,
			},
			wantErr: true,
			errMsg:  "category type must be 'income' or 'expense'",
		},
		{
			name: "missing user",
			category: Category{
				Name: "Food",
				Type: CategoryTypeExpense,
			},
			wantErr: true,
			errMsg:  "owning user is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCategory_TypeHelpers(t *testing.T) {
	income := Category{Type: CategoryTypeIncome}
	expense := Category{Type: CategoryTypeExpense}

	assert.True(t, income.IsIncome())
	assert.False(t, income.IsExpense())
	assert.True(t, expense.IsExpense())
	assert.False(t, expense.IsIncome())
}

func TestIsValidCategoryType(t *testing.T) {
	tests := []struct {
		categoryType string
		want         bool
	}{
		{CategoryTypeIncome, true},
		{CategoryTypeExpense, true},
		{"Income", false},
		{"EXPENSE", false},
		{"savings", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.categoryType, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidCategoryType(tt.categoryType))
		})
	}
}

func TestDefaultCategories(t *testing.T) {
	userID := uuid.New()
	categories := DefaultCategories(userID)

	assert.Len(t, categories, 5)

	incomeCount := 0
	expenseCount := 0
	names := make([]string, 0, len(categories))
	for _, category := range categories {
		assert.Equal(t, userID, category.UserID)
		assert.NoError(t, category.Validate(), "default category %q must be valid", category.Name)
		names = append(names, category.Name)
		switch category.Type {
		case CategoryTypeIncome:
			incomeCount++
		case CategoryTypeExpense:
			expenseCount++
		}
	}

	assert.Equal(t, 2, incomeCount)
	assert.Equal(t, 3, expenseCount)
	assert.Equal(t, []string{"Salary", "Bonus", "Food", "Transport", "Housing"}, names)
}
