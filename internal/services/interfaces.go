package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/providers"
)

// SyncServiceInterface defines the contract for syncing provider-linked
// accounts and transactions
type SyncServiceInterface interface {
	SyncAccounts(ctx context.Context, userID uuid.UUID) (*models.SyncReport, error)
}

// DashboardServiceInterface defines the contract for the dashboard summary
type DashboardServiceInterface interface {
	GetSummary(userID uuid.UUID) (*models.DashboardSummary, error)
}

// ConnectionServiceInterface defines the contract for linking and managing
// financial connections
type ConnectionServiceInterface interface {
	CreateLinkToken(ctx context.Context, userID uuid.UUID) (string, error)
	ExchangePublicToken(ctx context.Context, userID uuid.UUID, req *dto.ExchangePublicTokenRequest) (*models.FinancialConnection, error)
	ConnectBasiq(ctx context.Context, userID uuid.UUID, req *dto.BasiqConnectRequest) (*models.FinancialConnection, error)
	GetUserConnections(userID uuid.UUID) ([]models.FinancialConnection, error)
	DeactivateConnection(userID, connectionID uuid.UUID) error
}

// AccountServiceInterface defines account-related business operations
type AccountServiceInterface interface {
	CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error)
	GetAccountByID(userID, accountID uuid.UUID) (*models.Account, error)
	GetUserAccounts(userID uuid.UUID) ([]models.Account, error)
	UpdateAccount(userID, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error)
	DeactivateAccount(userID, accountID uuid.UUID) error
	GetAccountTransactions(userID, accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
}

// TransactionServiceInterface defines transaction-related business operations
type TransactionServiceInterface interface {
	CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error)
	GetRecentTransactions(userID uuid.UUID, limit int) ([]models.Transaction, error)
}

// GoalServiceInterface defines goal-related business operations
type GoalServiceInterface interface {
	CreateGoal(userID uuid.UUID, req *dto.CreateGoalRequest) (*models.Goal, error)
	GetUserGoals(userID uuid.UUID) ([]models.Goal, error)
	UpdateGoal(userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*models.Goal, error)
}

// InsightServiceInterface defines insight-related business operations
type InsightServiceInterface interface {
	CreateInsight(userID uuid.UUID, req *dto.CreateInsightRequest) (*models.Insight, error)
	GetUserInsights(userID uuid.UUID) ([]models.Insight, error)
	MarkInsightRead(userID, insightID uuid.UUID) error
}

// ProviderResolverInterface resolves a provider identifier to its adapter.
// Satisfied by the provider factory.
type ProviderResolverInterface interface {
	Resolve(provider string) (providers.Adapter, error)
}

// PlaidLinkerInterface covers the Plaid-specific link flow operations
type PlaidLinkerInterface interface {
	CreateLinkToken(ctx context.Context, userID string) (string, error)
	ExchangePublicToken(ctx context.Context, publicToken string) (*providers.LinkResult, error)
}

// BasiqLinkerInterface covers the Basiq-specific connection creation flow
type BasiqLinkerInterface interface {
	CreateConnection(ctx context.Context, basiqUserID, institutionID string, loginCredentials map[string]string) (*providers.ConnectionResult, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// DemoDataServiceInterface generates fixture data for development
// environments
type DemoDataServiceInterface interface {
	GenerateTransactions(userID, accountID uuid.UUID, start, end time.Time, count int) []models.Transaction
	DemoUser() *models.User
}
