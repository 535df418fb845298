package handlers

import (
	"net/http"

	"fintrack/internal/dto"
	"fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories returns all categories owned by the authenticated user
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categories, err := h.categoryService.List(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListCategoriesResponse{
		Categories: convertToCategoryResponses(categories),
		Total:      len(categories),
	}

	return c.JSON(http.StatusOK, response)
}

// CreateCategory creates a new category for the authenticated user
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(userID, &req)
	if err != nil {
		switch err {
		case services.ErrCategoryNameInvalid:
			return SendError(c, errors.ValidationGeneral, errors.WithDetails("Category name must be 1-100 characters"))
		case services.ErrInvalidCategoryType:
			return SendError(c, errors.CategoryInvalidType)
		case services.ErrCategoryNameTaken:
			return SendError(c, errors.CategoryDuplicate)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, convertToCategoryResponse(category))
}

// DeleteCategory deletes a category owned by the authenticated user.
// Categories that still have transactions recorded against them are protected.
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Category ID must be a valid UUID"))
	}

	if err := h.categoryService.Delete(userID, categoryID); err != nil {
		switch err {
		case services.ErrCategoryNotFound:
			return SendError(c, errors.CategoryNotFound)
		case services.ErrCategoryInUse:
			return SendError(c, errors.CategoryInUse)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Category deleted successfully",
	})
}

func convertToCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Type:      category.Type,
		CreatedAt: category.CreatedAt,
	}
}

func convertToCategoryResponses(categories []models.Category) []dto.CategoryResponse {
	result := make([]dto.CategoryResponse, 0, len(categories))
	for i := range categories {
		result = append(result, convertToCategoryResponse(&categories[i]))
	}
	return result
}
