package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryNameInvalid = errors.New("category name is required and must be at most 100 characters")
	ErrCategoryNameTaken   = errors.New("category with this name already exists")
	ErrInvalidCategoryType = errors.New("category type must be income or expense")
	ErrCategoryInUse       = errors.New("category has transactions and cannot be deleted")
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	metrics      MetricsRecorderInterface
	logger       *slog.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &CategoryService{
		categoryRepo: categoryRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// List returns all categories belonging to the user
func (s *CategoryService) List(userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

// Create adds a new category for the user. Names are unique per user,
// compared case-insensitively, and the type is fixed at creation.
func (s *CategoryService) Create(userID uuid.UUID, req *dto.CreateCategoryRequest) (*models.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > models.MaxCategoryNameLength {
		return nil, ErrCategoryNameInvalid
	}

	if !models.IsValidCategoryType(req.Type) {
		s.recordOperation("create", "invalid_type")
		return nil, ErrInvalidCategoryType
	}

	existing, err := s.categoryRepo.GetByUserIDAndName(userID, name)
	if err != nil && !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, fmt.Errorf("failed to check category name: %w", err)
	}
	if existing != nil {
		s.recordOperation("create", "duplicate")
		return nil, ErrCategoryNameTaken
	}

	category := &models.Category{
		Name:   name,
		Type:   req.Type,
		UserID: userID,
	}

	if err := s.categoryRepo.Create(category); err != nil {
		if errors.Is(err, repositories.ErrCategoryAlreadyExists) {
			s.recordOperation("create", "duplicate")
			return nil, ErrCategoryNameTaken
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	s.recordOperation("create", "success")
	s.logger.Info("category created",
		"category_id", category.ID,
		"user_id", userID,
		"type", category.Type)

	return category, nil
}

// Delete removes a category owned by the user. Categories that are still
// referenced by transactions are protected from deletion.
func (s *CategoryService) Delete(userID, categoryID uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to get category: %w", err)
	}

	// Not-found rather than forbidden: don't leak other users' category IDs
	if category.UserID != userID {
		return ErrCategoryNotFound
	}

	count, err := s.categoryRepo.CountTransactions(categoryID)
	if err != nil {
		return fmt.Errorf("failed to count category transactions: %w", err)
	}
	if count > 0 {
		s.recordOperation("delete", "in_use")
		return ErrCategoryInUse
	}

	if err := s.categoryRepo.Delete(categoryID); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrCategoryNotFound
		}
		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.recordOperation("delete", "success")
	s.logger.Info("category deleted", "category_id", categoryID, "user_id", userID)

	return nil
}

func (s *CategoryService) recordOperation(operation, status string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncrementCounter("category_operation", map[string]string{
		"operation": operation,
		"status":    status,
	})
}
