package dto

import (
	"github.com/nicktebbo/FinTrack/internal/models"
)

// Insight Request DTOs

// CreateInsightRequest represents the request payload for creating an
// insight. InsightType is open-ended: the well-known types have constants,
// but new advisory categories appear without a schema change.
type CreateInsightRequest struct {
	InsightType string `json:"insight_type" validate:"required,min=1,max=50"`
	Title       string `json:"title" validate:"required,min=1,max=255"`
	Description string `json:"description" validate:"required"`
	Priority    string `json:"priority" validate:"omitempty,oneof=low medium high"`
}

// Insight Response DTOs

// InsightResponse represents a single insight in API responses
type InsightResponse struct {
	Insight *models.Insight `json:"insight"`
}

// InsightListResponse represents a user's insights
type InsightListResponse struct {
	Insights []models.Insight `json:"insights"`
	Total    int              `json:"total"`
}
