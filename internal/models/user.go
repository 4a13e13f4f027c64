package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInvalidEmail = errors.New("invalid email address")
)

// User represents an application user. Credentials are not stored here;
// identity is established by the auth layer and arrives as a verified user ID.
type User struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email           string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	FirstName       string         `gorm:"type:varchar(100)" json:"first_name"`
	LastName        string         `gorm:"type:varchar(100)" json:"last_name"`
	ProfileImageURL string         `gorm:"type:varchar(512)" json:"profile_image_url,omitempty"`
	CreatedAt       time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt       time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Associations
	Accounts     []Account             `gorm:"foreignKey:UserID" json:"-"`
	Transactions []Transaction         `gorm:"foreignKey:UserID" json:"-"`
	Goals        []Goal                `gorm:"foreignKey:UserID" json:"-"`
	Insights     []Insight             `gorm:"foreignKey:UserID" json:"-"`
	Connections  []FinancialConnection `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for User
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	return u.Validate()
}

// BeforeUpdate hook for User
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return u.Validate()
}

// Validate validates the user fields
func (u *User) Validate() error {
	if u.Email == "" || !strings.Contains(u.Email, "@") {
		return ErrInvalidEmail
	}
	return nil
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// TableName returns the table name for User
func (u *User) TableName() string {
	return "users"
}
