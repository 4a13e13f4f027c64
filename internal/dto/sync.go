package dto

import (
	"github.com/nicktebbo/FinTrack/internal/models"
)

// Sync Response DTOs

// SyncResponse reports the outcome of a manual sync pass across the user's
// active connections. SyncedCount is the total number of accounts synced;
// FailedCount is the number of connections that failed.
type SyncResponse struct {
	Message     string                         `json:"message"`
	SyncedCount int                            `json:"synced_count"`
	FailedCount int                            `json:"failed_count"`
	Results     []models.ConnectionSyncOutcome `json:"results"`
}

// DashboardSummaryResponse wraps the aggregated dashboard figures
type DashboardSummaryResponse struct {
	Summary *models.DashboardSummary `json:"summary"`
}
