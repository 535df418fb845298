package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTypeIncome  = "income"
	CategoryTypeExpense = "expense"

	MaxCategoryNameLength = 100
)

var (
	ErrInvalidCategoryType = errors.New("category type must be 'income' or 'expense'")
)

// Category is a user-owned bucket that transactions are recorded against.
// Its type drives the sign logic of all dashboard aggregates.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null;index" json:"name"`
	Type      string    `gorm:"type:varchar(20);not null" json:"type"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:CategoryID" json:"-"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.New("category name is required")
	}

	if len(c.Name) > MaxCategoryNameLength {
		return errors.New("category name too long")
	}

	if !IsValidCategoryType(c.Type) {
		return ErrInvalidCategoryType
	}

	if c.UserID == uuid.Nil {
		return errors.New("owning user is required")
	}

	return nil
}

func (c *Category) IsIncome() bool {
	return c.Type == CategoryTypeIncome
}

func (c *Category) IsExpense() bool {
	return c.Type == CategoryTypeExpense
}

func (c *Category) TableName() string {
	return "categories"
}

// IsValidCategoryType checks if the category type is valid
func IsValidCategoryType(categoryType string) bool {
	switch categoryType {
	case CategoryTypeIncome, CategoryTypeExpense:
		return true
	default:
		return false
	}
}

// DefaultCategories returns the five categories seeded for every new user:
// two income and three expense.
func DefaultCategories(userID uuid.UUID) []Category {
	return []Category{
		{Name: "Salary", Type: CategoryTypeIncome, UserID: userID},
		{Name: "Bonus", Type: CategoryTypeIncome, UserID: userID},
		{Name: "Food", Type: CategoryTypeExpense, UserID: userID},
		{Name: "Transport", Type: CategoryTypeExpense, UserID: userID},
		{Name: "Housing", Type: CategoryTypeExpense, UserID: userID},
	}
}
