package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrConnectionProviderMissing = errors.New("connection provider is required")
	ErrAccessTokenMissing        = errors.New("connection access token is required")
)

// FinancialConnection is a stored link between a user and one provider-side
// institution access grant. AccessToken is the opaque provider credential and
// must never reach a client; it is excluded from JSON serialization.
type FinancialConnection struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider string    `gorm:"type:varchar(20);not null" json:"provider"`

	// AccessToken is a Plaid access token or a Basiq connection id.
	AccessToken string `gorm:"type:text;not null" json:"-"`
	// ItemID is the Plaid item id, or the Basiq user id the connection
	// belongs to.
	ItemID string `gorm:"type:varchar(255)" json:"item_id,omitempty"`

	InstitutionID   string     `gorm:"type:varchar(255)" json:"institution_id,omitempty"`
	InstitutionName string     `gorm:"type:varchar(255)" json:"institution_name,omitempty"`
	IsActive        bool       `gorm:"not null;default:true" json:"is_active"`
	LastSyncAt      *time.Time `json:"last_sync_at,omitempty"`
	CreatedAt       time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null" json:"updated_at"`

	// Associations
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for FinancialConnection
func (c *FinancialConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	return c.Validate()
}

// BeforeUpdate hook for FinancialConnection
func (c *FinancialConnection) BeforeUpdate(tx *gorm.DB) error {
	c.UpdatedAt = time.Now()
	return c.Validate()
}

// Validate validates the connection fields
func (c *FinancialConnection) Validate() error {
	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}

	if c.Provider == "" {
		return ErrConnectionProviderMissing
	}

	if c.AccessToken == "" {
		return ErrAccessTokenMissing
	}

	return nil
}

// Deactivate soft-deletes the connection via the active flag
func (c *FinancialConnection) Deactivate() {
	c.IsActive = false
}

// TableName returns the table name for FinancialConnection
func (c *FinancialConnection) TableName() string {
	return "financial_connections"
}
