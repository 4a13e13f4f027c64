package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories"
)

const goalDateLayout = "2006-01-02"

type goalService struct {
	goalRepo repositories.GoalRepositoryInterface
}

// NewGoalService creates the goal service
func NewGoalService(goalRepo repositories.GoalRepositoryInterface) GoalServiceInterface {
	return &goalService{
		goalRepo: goalRepo,
	}
}

// CreateGoal creates a savings goal for the user
func (s *goalService) CreateGoal(userID uuid.UUID, req *dto.CreateGoalRequest) (*models.Goal, error) {
	targetAmount, err := decimal.NewFromString(req.TargetAmount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.TargetAmount)
	}

	currentAmount := decimal.Zero
	if req.CurrentAmount != "" {
		currentAmount, err = decimal.NewFromString(req.CurrentAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.CurrentAmount)
		}
	}

	goal := &models.Goal{
		UserID:        userID,
		Name:          req.Name,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		Category:      req.Category,
	}

	if req.TargetDate != "" {
		targetDate, err := time.Parse(goalDateLayout, req.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.TargetDate)
		}
		goal.TargetDate = &targetDate
	}

	if err := s.goalRepo.Create(goal); err != nil {
		slog.Error("failed to create goal",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	slog.Info("goal created",
		"user_id", userID,
		"goal_id", goal.ID,
		"target_amount", goal.TargetAmount.String())

	return goal, nil
}

// GetUserGoals lists the user's goals
func (s *goalService) GetUserGoals(userID uuid.UUID) ([]models.Goal, error) {
	goals, err := s.goalRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get goals: %w", err)
	}
	return goals, nil
}

// UpdateGoal applies the present fields of the request to a goal the user
// owns. Completion is whatever the request says; crossing the target amount
// never flips it on its own.
func (s *goalService) UpdateGoal(userID, goalID uuid.UUID, req *dto.UpdateGoalRequest) (*models.Goal, error) {
	goal, err := s.goalRepo.GetByID(goalID)
	if err != nil {
		if errors.Is(err, repositories.ErrGoalNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	if goal.UserID != userID {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		goal.Name = *req.Name
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.TargetAmount != nil {
		targetAmount, err := decimal.NewFromString(*req.TargetAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, *req.TargetAmount)
		}
		goal.TargetAmount = targetAmount
	}
	if req.CurrentAmount != nil {
		currentAmount, err := decimal.NewFromString(*req.CurrentAmount)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, *req.CurrentAmount)
		}
		goal.CurrentAmount = currentAmount
	}
	if req.TargetDate != nil {
		targetDate, err := time.Parse(goalDateLayout, *req.TargetDate)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *req.TargetDate)
		}
		goal.TargetDate = &targetDate
	}
	if req.IsCompleted != nil {
		goal.IsCompleted = *req.IsCompleted
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return nil, fmt.Errorf("failed to update goal: %w", err)
	}

	slog.Info("goal updated",
		"user_id", userID,
		"goal_id", goalID)

	return goal, nil
}
