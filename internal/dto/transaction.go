package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTransactionRequest contains new transaction data. Amount and date
// arrive as strings and are parsed and validated by the service layer.
type CreateTransactionRequest struct {
	Amount      string `json:"amount" validate:"required"`
	Description string `json:"description" validate:"max=200"`
	Date        string `json:"date" validate:"omitempty,transaction_date"`
	CategoryID  string `json:"categoryId" validate:"required,uuid"`
}

// UpdateTransactionRequest contains fields to change on a transaction.
// All fields are optional; omitted fields keep their current value.
type UpdateTransactionRequest struct {
	Amount      *string `json:"amount" validate:"omitempty"`
	Description *string `json:"description" validate:"omitempty,max=200"`
	Date        *string `json:"date" validate:"omitempty,transaction_date"`
	CategoryID  *string `json:"categoryId" validate:"omitempty,uuid"`
}

// TransactionFilters contains filtering options for transaction queries
type TransactionFilters struct {
	Month  string `query:"month" validate:"omitempty,month"`
	Search string `query:"search"`
}

// TransactionResponse represents a transaction with its category
type TransactionResponse struct {
	ID           uuid.UUID `json:"id"`
	Amount       string    `json:"amount"`
	Description  string    `json:"description,omitempty"`
	Date         string    `json:"date"`
	CategoryID   uuid.UUID `json:"categoryId"`
	CategoryName string    `json:"categoryName"`
	CategoryType string    `json:"categoryType"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// ListTransactionsResponse represents the response for listing transactions
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Month        string                `json:"month"`
	Total        int                   `json:"total"`
}
