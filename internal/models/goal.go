package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNameMissing      = errors.New("goal name is required")
	ErrInvalidTargetAmount  = errors.New("goal target amount must be positive")
	ErrInvalidCurrentAmount = errors.New("goal current amount cannot be negative")
)

// Goal is a savings target. Current and target amounts are tracked
// independently; crossing the target does not flip IsCompleted, which is an
// explicit flag set by the user.
type Goal struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	TargetAmount  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date,omitempty"`
	Category      string          `gorm:"type:varchar(100);not null" json:"category"`
	IsCompleted   bool            `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt     time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Goal
func (g *Goal) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}

	now := time.Now()
	if g.CreatedAt.IsZero() {
		g.CreatedAt = now
	}
	if g.UpdatedAt.IsZero() {
		g.UpdatedAt = now
	}

	return g.Validate()
}

// BeforeUpdate hook for Goal
func (g *Goal) BeforeUpdate(tx *gorm.DB) error {
	g.UpdatedAt = time.Now()
	return g.Validate()
}

// Validate validates the goal fields
func (g *Goal) Validate() error {
	if g.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if g.Name == "" {
		return ErrGoalNameMissing
	}

	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidTargetAmount
	}

	if g.CurrentAmount.LessThan(decimal.Zero) {
		return ErrInvalidCurrentAmount
	}

	return nil
}

// Progress returns the completion ratio in percent, capped at 100
func (g *Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}

	hundred := decimal.NewFromInt(100)
	progress := g.CurrentAmount.Div(g.TargetAmount).Mul(hundred)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}

// TableName returns the table name for Goal
func (g *Goal) TableName() string {
	return "goals"
}
