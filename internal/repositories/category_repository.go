package repositories

import (
	"errors"
	"fmt"

	"fintrack/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

// CategoryRepository handles database operations for categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{
		db: db,
	}
}

// Create creates a new category in the database
func (r *CategoryRepository) Create(category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	if err := r.db.Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w", err)
	}

	return nil
}

// CreateBatch creates multiple categories in a single insert
func (r *CategoryRepository) CreateBatch(categories []models.Category) error {
	if len(categories) == 0 {
		return nil
	}

	if err := r.db.Create(&categories).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create categories: %w", err)
	}

	return nil
}

// GetByID retrieves a category by its ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*models.Category, error) {
	category := &models.Category{ID: id}
	if err := r.db.First(category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w", err)
	}

	return category, nil
}

// GetByUserID retrieves all categories belonging to a user
func (r *CategoryRepository) GetByUserID(userID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category

	err := r.db.Where("user_id = ?", userID).
		Order("type ASC, name ASC").
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get categories for user: %w", err)
	}

	return categories, nil
}

// GetByUserIDAndName retrieves a user's category by name (case-insensitive)
func (r *CategoryRepository) GetByUserIDAndName(userID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category

	err := r.db.Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&category).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by name: %w", err)
	}

	return &category, nil
}

// GetByUserIDAndType retrieves a user's categories of a given type
func (r *CategoryRepository) GetByUserIDAndType(userID uuid.UUID, categoryType string) ([]models.Category, error) {
	var categories []models.Category

	err := r.db.Where("user_id = ? AND type = ?", userID, categoryType).
		Order("name ASC").
		Find(&categories).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get categories by type: %w", err)
	}

	return categories, nil
}

// CountTransactions counts the transactions that reference a category
func (r *CategoryRepository) CountTransactions(categoryID uuid.UUID) (int64, error) {
	var count int64

	err := r.db.Model(&models.Transaction{}).
		Where("category_id = ?", categoryID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count category transactions: %w", err)
	}

	return count, nil
}

// Delete removes a category
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	result := r.db.Delete(&models.Category{ID: id})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
