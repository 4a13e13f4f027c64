package handlers

import (
	"net/http"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GoalHandler handles savings goal HTTP requests
type GoalHandler struct {
	goalService services.GoalServiceInterface
}

// NewGoalHandler creates a new goal handler
func NewGoalHandler(goalService services.GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

// CreateGoal creates a savings goal
// @Summary Create goal
// @Description Create a savings goal with a target amount and optional target date
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse "Created goal"
// @Failure 400 {object} errors.ErrorResponse "GOAL_002 - Invalid goal amount or VALIDATION_005 - Invalid date"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [post]
func (h *GoalHandler) CreateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	goal, err := h.goalService.CreateGoal(userID, &req)
	if err != nil {
		switch err {
		case services.ErrInvalidAmount:
			return SendError(c, errors.GoalInvalidAmount)
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.GoalResponse{Goal: goal})
}

// GetGoals lists the authenticated user's goals
// @Summary List goals
// @Description Retrieve all savings goals belonging to the authenticated user, newest first
// @Tags Goals
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.GoalListResponse "User goals"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /goals [get]
func (h *GoalHandler) GetGoals(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goals, err := h.goalService.GetUserGoals(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.GoalListResponse{
		Goals: goals,
		Total: len(goals),
	})
}

// UpdateGoal updates a goal's details or completion flag
// @Summary Update goal
// @Description Update goal fields. Completion is an explicit flag and is never derived from the amounts.
// @Tags Goals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Goal ID (UUID)"
// @Param request body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse "Updated goal"
// @Failure 400 {object} errors.ErrorResponse "GOAL_002 - Invalid goal amount"
// @Failure 404 {object} errors.ErrorResponse "GOAL_001 - Goal not found"
// @Router /goals/{id} [put]
func (h *GoalHandler) UpdateGoal(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	goalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid goal ID"))
	}

	var req dto.UpdateGoalRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	goal, err := h.goalService.UpdateGoal(userID, goalID, &req)
	if err != nil {
		switch err {
		case services.ErrNotFound:
			return SendError(c, errors.GoalNotFound)
		case services.ErrInvalidAmount:
			return SendError(c, errors.GoalInvalidAmount)
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.GoalResponse{Goal: goal})
}
