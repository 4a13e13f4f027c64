package handlers

import (
	"fmt"
	"net/http"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/labstack/echo/v4"
)

// SyncHandler handles manual account synchronization requests
type SyncHandler struct {
	syncService services.SyncServiceInterface
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(syncService services.SyncServiceInterface) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// SyncAccounts runs a sync pass over the user's active connections
// @Summary Sync accounts
// @Description Pull fresh account and transaction data from every active connection. A failing connection is reported in the results without aborting the rest.
// @Tags Sync
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SyncResponse "Per-connection sync results"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /sync-accounts [post]
func (h *SyncHandler) SyncAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	report, err := h.syncService.SyncAccounts(c.Request().Context(), userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	failed := report.FailedCount()
	message := fmt.Sprintf("Synced %d account(s)", report.SyncedCount)
	if failed > 0 {
		message = fmt.Sprintf("Synced %d account(s), %d connection(s) failed", report.SyncedCount, failed)
	}

	return c.JSON(http.StatusOK, dto.SyncResponse{
		Message:     message,
		SyncedCount: report.SyncedCount,
		FailedCount: failed,
		Results:     report.Outcomes,
	})
}
