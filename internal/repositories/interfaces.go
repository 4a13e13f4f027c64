package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/models"
)

// ConnectionRepositoryInterface defines the contract for financial connection
// repository operations. This is the Connection Store consumed by the sync
// orchestrator.
type ConnectionRepositoryInterface interface {
	Create(connection *models.FinancialConnection) error
	GetByID(id uuid.UUID) (*models.FinancialConnection, error)
	GetByUserID(userID uuid.UUID) ([]models.FinancialConnection, error)
	GetActiveByUserID(userID uuid.UUID) ([]models.FinancialConnection, error)
	UpdateLastSync(connectionID uuid.UUID, syncedAt time.Time) error
	Deactivate(connectionID uuid.UUID) error
}

// AccountRepositoryInterface defines the contract for account repository operations
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(id uuid.UUID) (*models.Account, error)
	GetByUserID(userID uuid.UUID) ([]models.Account, error)
	GetActiveByUserID(userID uuid.UUID) ([]models.Account, error)
	Update(account *models.Account) error
	UpdateBalance(accountID uuid.UUID, balance decimal.Decimal) error
	Deactivate(id uuid.UUID) error
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetRecentByUserID(userID uuid.UUID, limit int) ([]models.Transaction, error)
	GetByAccountID(accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error)
}

// GoalRepositoryInterface defines the contract for goal repository operations
type GoalRepositoryInterface interface {
	Create(goal *models.Goal) error
	GetByID(id uuid.UUID) (*models.Goal, error)
	GetByUserID(userID uuid.UUID) ([]models.Goal, error)
	Update(goal *models.Goal) error
}

// InsightRepositoryInterface defines the contract for insight repository operations
type InsightRepositoryInterface interface {
	Create(insight *models.Insight) error
	GetByID(id uuid.UUID) (*models.Insight, error)
	GetByUserID(userID uuid.UUID) ([]models.Insight, error)
	MarkRead(id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}
