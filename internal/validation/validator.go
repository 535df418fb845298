package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"fintrack/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category_type", validateCategoryType)
	_ = v.RegisterValidation("month", validateMonth)
	_ = v.RegisterValidation("transaction_date", validateTransactionDate)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateCategoryType validates that a category type is income or expense.
// Matching is exact: the stored type is always lower case.
func validateCategoryType(fl validator.FieldLevel) bool {
	return models.IsValidCategoryType(fl.Field().String())
}

// validateMonth validates the YYYY-MM month filter format
func validateMonth(fl validator.FieldLevel) bool {
	month := fl.Field().String()
	if month == "" {
		return false
	}

	_, err := time.Parse(models.MonthLayout, month)
	return err == nil
}

// validateTransactionDate validates the YYYY-MM-DD date format
func validateTransactionDate(fl validator.FieldLevel) bool {
	date := fl.Field().String()
	if date == "" {
		return false
	}

	_, err := time.Parse(models.DateLayout, date)
	return err == nil
}
