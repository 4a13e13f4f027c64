package handlers

import (
	"net/http"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// InsightHandler handles financial insight HTTP requests
type InsightHandler struct {
	insightService services.InsightServiceInterface
}

// NewInsightHandler creates a new insight handler
func NewInsightHandler(insightService services.InsightServiceInterface) *InsightHandler {
	return &InsightHandler{insightService: insightService}
}

// CreateInsight creates an insight for the authenticated user
// @Summary Create insight
// @Description Create a financial insight. Insights start unread and surface in the dashboard until read.
// @Tags Insights
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateInsightRequest true "Insight details"
// @Success 201 {object} dto.InsightResponse "Created insight"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights [post]
func (h *InsightHandler) CreateInsight(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateInsightRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	insight, err := h.insightService.CreateInsight(userID, &req)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.InsightResponse{Insight: insight})
}

// GetInsights lists the authenticated user's insights
// @Summary List insights
// @Description Retrieve all insights belonging to the authenticated user, newest first
// @Tags Insights
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.InsightListResponse "User insights"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /insights [get]
func (h *InsightHandler) GetInsights(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insights, err := h.insightService.GetUserInsights(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.InsightListResponse{
		Insights: insights,
		Total:    len(insights),
	})
}

// MarkInsightRead marks an insight as read
// @Summary Mark insight read
// @Description Mark an insight as read. Marking an already-read insight succeeds without change.
// @Tags Insights
// @Security BearerAuth
// @Param id path string true "Insight ID (UUID)"
// @Success 204 "Insight marked read"
// @Failure 404 {object} errors.ErrorResponse "INSIGHT_001 - Insight not found"
// @Router /insights/{id}/read [put]
func (h *InsightHandler) MarkInsightRead(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	insightID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid insight ID"))
	}

	if err := h.insightService.MarkInsightRead(userID, insightID); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.InsightNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
