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

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// ListTransactions returns the authenticated user's transactions for one month,
// optionally narrowed by a free-text search over descriptions and category names
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var filters dto.TransactionFilters
	if err := c.Bind(&filters); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&filters); err != nil {
		return SendError(c, errors.ValidationInvalidMonth)
	}

	transactions, monthStart, err := h.transactionService.Query(userID, filters.Month, filters.Search)
	if err != nil {
		if err == services.ErrInvalidMonth {
			return SendError(c, errors.ValidationInvalidMonth)
		}
		return SendSystemError(c, err)
	}

	response := dto.ListTransactionsResponse{
		Transactions: convertToTransactionResponses(transactions),
		Month:        monthStart.Format(models.MonthLayout),
		Total:        len(transactions),
	}

	return c.JSON(http.StatusOK, response)
}

// CreateTransaction records a new transaction for the authenticated user
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Create(userID, &req)
	if err != nil {
		return sendTransactionError(c, err)
	}

	return c.JSON(http.StatusCreated, convertToTransactionResponse(transaction))
}

// UpdateTransaction applies a partial update to a transaction owned by the
// authenticated user
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(req); err != nil {
		return err
	}

	transaction, err := h.transactionService.Update(userID, transactionID, &req)
	if err != nil {
		return sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, convertToTransactionResponse(transaction))
}

// DeleteTransaction deletes a transaction owned by the authenticated user
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	transactionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Transaction ID must be a valid UUID"))
	}

	if err := h.transactionService.Delete(userID, transactionID); err != nil {
		return sendTransactionError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Transaction deleted successfully",
	})
}

// sendTransactionError maps transaction service errors to API error codes
func sendTransactionError(c echo.Context, err error) error {
	switch err {
	case services.ErrTransactionNotFound:
		return SendError(c, errors.TransactionNotFound)
	case services.ErrInvalidAmount:
		return SendError(c, errors.TransactionInvalidAmount)
	case services.ErrInvalidDate:
		return SendError(c, errors.TransactionInvalidDate)
	case services.ErrCategoryNotOwned:
		return SendError(c, errors.TransactionInvalidCategory)
	case services.ErrDescriptionTooLong:
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Description must be at most 200 characters"))
	}
	return SendSystemError(c, err)
}

func convertToTransactionResponse(txn *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:           txn.ID,
		Amount:       txn.Amount.String(),
		Description:  txn.Description,
		Date:         txn.Date.Format(models.DateLayout),
		CategoryID:   txn.CategoryID,
		CategoryName: txn.Category.Name,
		CategoryType: txn.Category.Type,
		CreatedAt:    txn.CreatedAt,
		UpdatedAt:    txn.UpdatedAt,
	}
}

func convertToTransactionResponses(transactions []models.Transaction) []dto.TransactionResponse {
	result := make([]dto.TransactionResponse, 0, len(transactions))
	for i := range transactions {
		result = append(result, convertToTransactionResponse(&transactions[i]))
	}
	return result
}
