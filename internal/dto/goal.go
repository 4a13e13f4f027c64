package dto

import (
	"github.com/nicktebbo/FinTrack/internal/models"
)

// Goal Request DTOs

// CreateGoalRequest represents the request payload for creating a savings goal
type CreateGoalRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=255"`
	TargetAmount  string `json:"target_amount" validate:"required,decimal,positive_decimal"`
	CurrentAmount string `json:"current_amount" validate:"omitempty,decimal"`
	TargetDate    string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Category      string `json:"category" validate:"required,min=1,max=100"`
}

// UpdateGoalRequest represents the request payload for updating a goal. All
// fields are optional; absent fields are left unchanged. Completion is an
// explicit flag, never derived from the amounts.
type UpdateGoalRequest struct {
	Name          *string `json:"name" validate:"omitempty,min=1,max=255"`
	TargetAmount  *string `json:"target_amount" validate:"omitempty,decimal,positive_decimal"`
	CurrentAmount *string `json:"current_amount" validate:"omitempty,decimal"`
	TargetDate    *string `json:"target_date" validate:"omitempty,datetime=2006-01-02"`
	Category      *string `json:"category" validate:"omitempty,min=1,max=100"`
	IsCompleted   *bool   `json:"is_completed"`
}

// Goal Response DTOs

// GoalResponse represents a single goal in API responses
type GoalResponse struct {
	Goal *models.Goal `json:"goal"`
}

// GoalListResponse represents a user's goals
type GoalListResponse struct {
	Goals []models.Goal `json:"goals"`
	Total int           `json:"total"`
}
