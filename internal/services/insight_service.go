package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories"
)

type insightService struct {
	insightRepo repositories.InsightRepositoryInterface
}

// NewInsightService creates the insight service
func NewInsightService(insightRepo repositories.InsightRepositoryInterface) InsightServiceInterface {
	return &insightService{
		insightRepo: insightRepo,
	}
}

// CreateInsight stores an advisory message for the user
func (s *insightService) CreateInsight(userID uuid.UUID, req *dto.CreateInsightRequest) (*models.Insight, error) {
	insight := &models.Insight{
		UserID:      userID,
		InsightType: req.InsightType,
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
	}

	if err := s.insightRepo.Create(insight); err != nil {
		slog.Error("failed to create insight",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to create insight: %w", err)
	}

	slog.Info("insight created",
		"user_id", userID,
		"insight_id", insight.ID,
		"insight_type", insight.InsightType)

	return insight, nil
}

// GetUserInsights lists the user's insights
func (s *insightService) GetUserInsights(userID uuid.UUID) ([]models.Insight, error) {
	insights, err := s.insightRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get insights: %w", err)
	}
	return insights, nil
}

// MarkInsightRead marks an insight the user owns as read. Idempotent: marking
// an already-read insight succeeds.
func (s *insightService) MarkInsightRead(userID, insightID uuid.UUID) error {
	insight, err := s.insightRepo.GetByID(insightID)
	if err != nil {
		if errors.Is(err, repositories.ErrInsightNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get insight: %w", err)
	}
	if insight.UserID != userID {
		return ErrNotFound
	}

	if err := s.insightRepo.MarkRead(insightID); err != nil {
		return fmt.Errorf("failed to mark insight read: %w", err)
	}

	return nil
}
