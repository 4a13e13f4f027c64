package models

import (
	"github.com/google/uuid"
)

const (
	SyncOutcomeSuccess = "success"
	SyncOutcomeError   = "error"
)

// ConnectionSyncOutcome records the result of syncing a single financial
// connection. A failed connection never aborts the batch; its outcome simply
// carries the originating error.
type ConnectionSyncOutcome struct {
	ConnectionID       uuid.UUID `json:"connection_id"`
	Provider           string    `json:"provider"`
	InstitutionName    string    `json:"institution_name,omitempty"`
	Status             string    `json:"status"`
	AccountsSynced     int       `json:"accounts_synced"`
	TransactionsSynced int       `json:"transactions_synced"`
	Error              string    `json:"error,omitempty"`
}

// SyncReport is the aggregate result of one sync pass over all of a user's
// active connections. SyncedCount is the number of accounts synced across
// all connections combined, not the number of connections.
type SyncReport struct {
	SyncedCount int                     `json:"synced_count"`
	Outcomes    []ConnectionSyncOutcome `json:"outcomes"`
}

// FailedCount returns how many connections ended in error
func (r *SyncReport) FailedCount() int {
	failed := 0
	for _, outcome := range r.Outcomes {
		if outcome.Status == SyncOutcomeError {
			failed++
		}
	}
	return failed
}
