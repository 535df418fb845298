package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MaxDescriptionLength = 200

	// DateLayout is the wire format for transaction dates
	DateLayout = "2006-01-02"
	// MonthLayout is the wire format for dashboard month filters
	MonthLayout = "2006-01"
)

var (
	ErrInvalidAmount = errors.New("transaction amount must be positive")
)

// Transaction is a single income or expense entry. The sign of the amount is
// implied by the referenced category's type; amounts are stored positive.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(200)" json:"description,omitempty"`
	Date        time.Time       `gorm:"type:date;not null;index" json:"date"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
	User     User     `gorm:"foreignKey:UserID" json:"-"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = TruncateToDay(now.UTC())
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry an empty model; nothing to validate here
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}

	t.UpdatedAt = time.Now()
	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	if len(t.Description) > MaxDescriptionLength {
		return errors.New("description too long")
	}

	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}

	if t.CategoryID == uuid.Nil {
		return errors.New("category is required")
	}

	if t.UserID == uuid.Nil {
		return errors.New("owning user is required")
	}

	return nil
}

// IsOwnedBy reports whether the transaction belongs to the given user.
// All mutating operations must pass this check before touching the row.
func (t *Transaction) IsOwnedBy(userID uuid.UUID) bool {
	return t.UserID == userID
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// TruncateToDay drops the time-of-day component, keeping calendar-date
// precision in UTC.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// MonthBounds returns the half-open [start, end) range covering the calendar
// month that contains t.
func MonthBounds(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
