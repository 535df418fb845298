package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// TransactionRepository handles database operations for transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database
func (r *TransactionRepository) Create(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

// GetByID retrieves a transaction with its category by ID
func (r *TransactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction

	err := r.db.Preload("Category").
		Where("id = ?", id).
		First(&transaction).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID: %w", err)
	}

	return &transaction, nil
}

// GetByMonth retrieves a user's transactions inside the half-open window
// [StartDate, EndDate), optionally filtered by a case-insensitive search
// over the description and the category name. Results are ordered newest
// date first with insertion order breaking ties.
func (r *TransactionRepository) GetByMonth(query TransactionQuery) ([]models.Transaction, error) {
	var transactions []models.Transaction

	q := r.db.Model(&models.Transaction{}).
		Joins("INNER JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", query.UserID).
		Where("transactions.date >= ? AND transactions.date < ?", query.StartDate, query.EndDate)

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		q = q.Where("LOWER(transactions.description) LIKE LOWER(?) OR LOWER(categories.name) LIKE LOWER(?)",
			pattern, pattern)
	}

	err := q.Preload("Category").
		Order("transactions.date DESC, transactions.created_at ASC").
		Find(&transactions).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get transactions for month: %w", err)
	}

	return transactions, nil
}

// Update updates a transaction in the database
func (r *TransactionRepository) Update(transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.Save(transaction).Error; err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
	}

	return nil
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Transaction{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete transaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}

	return nil
}
