package dto

import (
	"github.com/nicktebbo/FinTrack/internal/models"
)

// Account Request DTOs

// CreateAccountRequest represents the request payload for creating a manual
// account. Provider defaults to "manual"; a client may label an account it
// imported itself with the originating aggregator.
type CreateAccountRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	AccountType   string `json:"account_type" validate:"required,oneof=checking savings investment retirement"`
	Balance       string `json:"balance" validate:"omitempty,decimal"`
	AccountNumber string `json:"account_number" validate:"omitempty,max=50"`
	Institution   string `json:"institution" validate:"omitempty,max=255"`
	Provider      string `json:"provider" validate:"omitempty,provider_name"`
}

// UpdateAccountRequest represents the request payload for updating account details.
// All fields are optional; absent fields are left unchanged.
type UpdateAccountRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=255"`
	AccountType *string `json:"account_type" validate:"omitempty,oneof=checking savings investment retirement"`
	Balance     *string `json:"balance" validate:"omitempty,decimal"`
	Institution *string `json:"institution" validate:"omitempty,max=255"`
}

// Account Response DTOs

// AccountResponse represents a single account in API responses
type AccountResponse struct {
	Account *models.Account `json:"account"`
}

// AccountListResponse represents a user's accounts
type AccountListResponse struct {
	Accounts []models.Account `json:"accounts"`
	Total    int              `json:"total"`
}
