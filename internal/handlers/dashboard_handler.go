package handlers

import (
	"net/http"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles dashboard summary HTTP requests
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService services.DashboardServiceInterface) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSummary aggregates the user's financial position
// @Summary Dashboard summary
// @Description Aggregate total assets, investment and retirement balances, current-month spending, recent transactions, active goals, and unread insights
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.DashboardSummaryResponse "Aggregated dashboard figures"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	summary, err := h.dashboardService.GetSummary(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.DashboardSummaryResponse{Summary: summary})
}
