package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nicktebbo/FinTrack/internal/models"
)

var (
	ErrGoalNotFound = errors.New("goal not found")
)

// goalRepository implements GoalRepositoryInterface
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository
func NewGoalRepository(db *gorm.DB) GoalRepositoryInterface {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal
func (r *goalRepository) Create(goal *models.Goal) error {
	if err := r.db.Create(goal).Error; err != nil {
		return fmt.Errorf("failed to create goal: %w", err)
	}
	return nil
}

// GetByID retrieves a goal by ID
func (r *goalRepository) GetByID(id uuid.UUID) (*models.Goal, error) {
	var goal models.Goal
	if err := r.db.First(&goal, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("failed to get goal: %w", err)
	}
	return &goal, nil
}

// GetByUserID retrieves all goals for a user, newest first
func (r *goalRepository) GetByUserID(userID uuid.UUID) ([]models.Goal, error) {
	var goals []models.Goal
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("failed to get goals for user: %w", err)
	}
	return goals, nil
}

// Update saves goal changes
func (r *goalRepository) Update(goal *models.Goal) error {
	if err := r.db.Save(goal).Error; err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}
	return nil
}
