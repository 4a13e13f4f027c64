package dto

import (
	"github.com/nicktebbo/FinTrack/internal/models"
)

// Transaction Request DTOs

// CreateTransactionRequest represents the request payload for recording a
// manual transaction. Amount is a decimal string and must not be negative;
// direction is carried by the transaction type.
type CreateTransactionRequest struct {
	AccountID       string `json:"account_id" validate:"required,uuid"`
	Description     string `json:"description" validate:"required,min=1,max=255"`
	Amount          string `json:"amount" validate:"required,decimal"`
	Category        string `json:"category" validate:"omitempty,max=100"`
	Date            string `json:"date" validate:"required,datetime=2006-01-02"`
	TransactionType string `json:"transaction_type" validate:"required,oneof=income expense transfer"`
}

// Transaction Response DTOs

// TransactionResponse represents a single transaction in API responses
type TransactionResponse struct {
	Transaction *models.Transaction `json:"transaction"`
}

// TransactionListResponse represents a list of transactions
type TransactionListResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int64                `json:"total"`
	Offset       int                  `json:"offset"`
	Limit        int                  `json:"limit"`
}
