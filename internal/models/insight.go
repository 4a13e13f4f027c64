package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	InsightTypeSpendingAlert         = "spending_alert"
	InsightTypeInvestmentOpportunity = "investment_opportunity"
	InsightTypeGoalProgress          = "goal_progress"

	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

var (
	ErrInvalidPriority     = errors.New("invalid insight priority")
	ErrInsightTitleMissing = errors.New("insight title is required")
)

// Insight is an advisory message with a read-once lifecycle: created,
// optionally marked read, never otherwise updated.
type Insight struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	InsightType string    `gorm:"type:varchar(50);not null" json:"insight_type"`
	Title       string    `gorm:"type:varchar(255);not null" json:"title"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Priority    string    `gorm:"type:varchar(10);not null" json:"priority"`
	IsRead      bool      `gorm:"not null;default:false" json:"is_read"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for Insight
func (i *Insight) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}

	if i.Priority == "" {
		i.Priority = PriorityLow
	}

	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now()
	}

	return i.Validate()
}

// Validate validates the insight fields
func (i *Insight) Validate() error {
	if i.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if i.Title == "" {
		return ErrInsightTitleMissing
	}

	if !IsValidPriority(i.Priority) {
		return ErrInvalidPriority
	}

	return nil
}

// TableName returns the table name for Insight
func (i *Insight) TableName() string {
	return "insights"
}

// IsValidPriority checks if the priority is valid
func IsValidPriority(priority string) bool {
	switch priority {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}
