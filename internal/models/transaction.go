package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TransactionTypeIncome   = "income"
	TransactionTypeExpense  = "expense"
	TransactionTypeTransfer = "transfer"

	// DefaultCategory is assigned when neither the caller nor the provider
	// supplies a category.
	DefaultCategory = "Other"
)

var (
	ErrInvalidTransactionType = errors.New("invalid transaction type")
	ErrNegativeAmount         = errors.New("transaction amount cannot be negative")
	ErrDescriptionMissing     = errors.New("transaction description is required")
	ErrTransactionDateMissing = errors.New("transaction date is required")
)

// Transaction is a single posted movement. Amount is always stored as a
// magnitude; direction is carried entirely by TransactionType, never by the
// sign of Amount. Transactions are immutable once created.
type Transaction struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	UserID          uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Description     string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	Category        string          `gorm:"type:varchar(100);not null;default:'Other'" json:"category"`
	Date            time.Time       `gorm:"not null;index" json:"date"`
	TransactionType string          `gorm:"type:varchar(20);not null" json:"transaction_type"`

	// Aggregation provider bookkeeping
	Provider              string `gorm:"type:varchar(20)" json:"provider,omitempty"`
	ProviderTransactionID string `gorm:"type:varchar(255);index" json:"provider_transaction_id,omitempty"`
	MerchantName          string `gorm:"type:varchar(255)" json:"merchant_name,omitempty"`
	Location              string `gorm:"type:text" json:"location,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`

	// Associations
	Account Account `gorm:"foreignKey:AccountID" json:"-"`
	User    User    `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Category == "" {
		t.Category = DefaultCategory
	}

	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now()
	}

	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if t.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if t.Description == "" {
		return ErrDescriptionMissing
	}

	if t.Amount.LessThan(decimal.Zero) {
		return ErrNegativeAmount
	}

	if !IsValidTransactionType(t.TransactionType) {
		return ErrInvalidTransactionType
	}

	if t.Date.IsZero() {
		return ErrTransactionDateMissing
	}

	return nil
}

// IsExpense returns true for outgoing movements
func (t *Transaction) IsExpense() bool {
	return t.TransactionType == TransactionTypeExpense
}

// InMonth reports whether the transaction is dated within the calendar
// month of the given reference time
func (t *Transaction) InMonth(ref time.Time) bool {
	return t.Date.Year() == ref.Year() && t.Date.Month() == ref.Month()
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}

// IsValidTransactionType checks if the transaction type is valid
func IsValidTransactionType(transactionType string) bool {
	switch transactionType {
	case TransactionTypeIncome, TransactionTypeExpense, TransactionTypeTransfer:
		return true
	default:
		return false
	}
}
