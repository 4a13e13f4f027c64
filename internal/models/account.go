package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AccountTypeChecking   = "checking"
	AccountTypeSavings    = "savings"
	AccountTypeInvestment = "investment"
	AccountTypeRetirement = "retirement"

	ProviderPlaid  = "plaid"
	ProviderBasiq  = "basiq"
	ProviderManual = "manual"

	SyncStatusPending = "pending"
	SyncStatusSyncing = "syncing"
	SyncStatusSuccess = "success"
	SyncStatusError   = "error"
)

var (
	ErrInvalidAccountType = errors.New("invalid account type")
	ErrInvalidSyncStatus  = errors.New("invalid sync status")
	ErrInvalidProvider    = errors.New("invalid account provider")
	ErrNegativeBalance    = errors.New("balance cannot be negative")
	ErrAccountNameMissing = errors.New("account name is required")
)

// Account represents a financial holding: a bank, investment, or retirement
// account, either entered manually or pulled from an aggregation provider.
// Accounts are never hard-deleted; IsActive carries the soft-delete state.
type Account struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	AccountType   string          `gorm:"type:varchar(20);not null;default:'checking'" json:"account_type"`
	Balance       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"balance"`
	AccountNumber string          `gorm:"type:varchar(50)" json:"account_number,omitempty"`
	Institution   string          `gorm:"type:varchar(255)" json:"institution,omitempty"`
	IsActive      bool            `gorm:"not null;default:true" json:"is_active"`

	// Aggregation provider bookkeeping
	Provider          string     `gorm:"type:varchar(20);index" json:"provider,omitempty"`
	ProviderAccountID string     `gorm:"type:varchar(255);index" json:"provider_account_id,omitempty"`
	LastSyncAt        *time.Time `json:"last_sync_at,omitempty"`
	SyncStatus        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"sync_status"`
	SyncError         string     `gorm:"type:text" json:"sync_error,omitempty"`

	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Associations
	User         User          `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Account
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.AccountType == "" {
		a.AccountType = AccountTypeChecking
	}
	if a.SyncStatus == "" {
		a.SyncStatus = SyncStatusPending
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

// BeforeUpdate hook for Account
func (a *Account) BeforeUpdate(tx *gorm.DB) error {
	a.UpdatedAt = time.Now()
	return a.Validate()
}

// Validate validates the account fields
func (a *Account) Validate() error {
	if a.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if a.Name == "" {
		return ErrAccountNameMissing
	}

	if !IsValidAccountType(a.AccountType) {
		return ErrInvalidAccountType
	}

	if !IsValidSyncStatus(a.SyncStatus) {
		return ErrInvalidSyncStatus
	}

	if a.Provider != "" && !IsValidProvider(a.Provider) {
		return ErrInvalidProvider
	}

	if a.Balance.LessThan(decimal.Zero) {
		return ErrNegativeBalance
	}

	return nil
}

// Deactivate soft-deletes the account via the active flag
func (a *Account) Deactivate() {
	a.IsActive = false
}

// MarkSynced records a successful provider sync
func (a *Account) MarkSynced(at time.Time) {
	a.LastSyncAt = &at
	a.SyncStatus = SyncStatusSuccess
	a.SyncError = ""
}

// MarkSyncFailed records a failed provider sync with the originating error
func (a *Account) MarkSyncFailed(at time.Time, syncErr error) {
	a.LastSyncAt = &at
	a.SyncStatus = SyncStatusError
	if syncErr != nil {
		a.SyncError = syncErr.Error()
	}
}

// TableName returns the table name for Account
func (a *Account) TableName() string {
	return "accounts"
}

// IsValidAccountType checks if the account type is valid
func IsValidAccountType(accountType string) bool {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings, AccountTypeInvestment, AccountTypeRetirement:
		return true
	default:
		return false
	}
}

// IsValidSyncStatus checks if the sync status is valid
func IsValidSyncStatus(status string) bool {
	switch status {
	case SyncStatusPending, SyncStatusSyncing, SyncStatusSuccess, SyncStatusError:
		return true
	default:
		return false
	}
}

// IsValidProvider checks if the provider identifier is valid
func IsValidProvider(provider string) bool {
	switch provider {
	case ProviderPlaid, ProviderBasiq, ProviderManual:
		return true
	default:
		return false
	}
}
