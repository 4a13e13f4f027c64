package dto

import (
	"github.com/nicktebbo/FinTrack/internal/models"
)

// Connection Request DTOs

// ExchangePublicTokenRequest finalizes a Plaid Link flow
type ExchangePublicTokenRequest struct {
	PublicToken     string `json:"public_token" validate:"required"`
	InstitutionID   string `json:"institution_id" validate:"omitempty,max=255"`
	InstitutionName string `json:"institution_name" validate:"omitempty,max=255"`
}

// BasiqConnectRequest creates a Basiq connection from institution login
// credentials. The credentials pass straight through to the provider and are
// never stored.
type BasiqConnectRequest struct {
	BasiqUserID      string            `json:"basiq_user_id" validate:"required"`
	InstitutionID    string            `json:"institution_id" validate:"required"`
	InstitutionName  string            `json:"institution_name" validate:"omitempty,max=255"`
	LoginCredentials map[string]string `json:"login_credentials" validate:"required"`
}

// Connection Response DTOs

// LinkTokenResponse carries the short-lived Plaid link token
type LinkTokenResponse struct {
	LinkToken string `json:"link_token"`
}

// ConnectionResponse represents a single connection in API responses. The
// access token is excluded from the model's serialization.
type ConnectionResponse struct {
	Connection *models.FinancialConnection `json:"connection"`
}

// ConnectionListResponse represents a user's connections
type ConnectionListResponse struct {
	Connections []models.FinancialConnection `json:"connections"`
	Total       int                          `json:"total"`
}
