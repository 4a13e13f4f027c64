package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nicktebbo/FinTrack/internal/models"
)

var (
	ErrInsightNotFound = errors.New("insight not found")
)

// insightRepository implements InsightRepositoryInterface
type insightRepository struct {
	db *gorm.DB
}

// NewInsightRepository creates a new insight repository
func NewInsightRepository(db *gorm.DB) InsightRepositoryInterface {
	return &insightRepository{
		db: db,
	}
}

// Create creates a new insight
func (r *insightRepository) Create(insight *models.Insight) error {
	if err := r.db.Create(insight).Error; err != nil {
		return fmt.Errorf("failed to create insight: %w", err)
	}
	return nil
}

// GetByID retrieves an insight by ID
func (r *insightRepository) GetByID(id uuid.UUID) (*models.Insight, error) {
	var insight models.Insight
	if err := r.db.First(&insight, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInsightNotFound
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	return &insight, nil
}

// GetByUserID retrieves all insights for a user, newest first
func (r *insightRepository) GetByUserID(userID uuid.UUID) ([]models.Insight, error) {
	var insights []models.Insight
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&insights).Error; err != nil {
		return nil, fmt.Errorf("failed to get insights for user: %w", err)
	}
	return insights, nil
}

// MarkRead marks an insight as read. Marking an already-read insight is a no-op
// at the row level but still succeeds.
func (r *insightRepository) MarkRead(id uuid.UUID) error {
	result := r.db.Model(&models.Insight{}).
		Where("id = ?", id).
		Update("is_read", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark insight read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrInsightNotFound
	}
	return nil
}
