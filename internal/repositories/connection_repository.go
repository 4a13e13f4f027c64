package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nicktebbo/FinTrack/internal/models"
)

var (
	ErrConnectionNotFound = errors.New("financial connection not found")
)

// connectionRepository implements ConnectionRepositoryInterface
type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository creates a new financial connection repository
func NewConnectionRepository(db *gorm.DB) ConnectionRepositoryInterface {
	return &connectionRepository{
		db: db,
	}
}

// Create creates a new financial connection
func (r *connectionRepository) Create(connection *models.FinancialConnection) error {
	if err := r.db.Create(connection).Error; err != nil {
		return fmt.Errorf("failed to create financial connection: %w", err)
	}
	return nil
}

// GetByID retrieves a connection by ID
func (r *connectionRepository) GetByID(id uuid.UUID) (*models.FinancialConnection, error) {
	var connection models.FinancialConnection
	if err := r.db.First(&connection, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConnectionNotFound
		}
		return nil, fmt.Errorf("failed to get financial connection: %w", err)
	}
	return &connection, nil
}

// GetByUserID retrieves all connections for a user
func (r *connectionRepository) GetByUserID(userID uuid.UUID) ([]models.FinancialConnection, error) {
	var connections []models.FinancialConnection
	if err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC").Find(&connections).Error; err != nil {
		return nil, fmt.Errorf("failed to get financial connections for user: %w", err)
	}
	return connections, nil
}

// GetActiveByUserID retrieves the connections a sync pass iterates over
func (r *connectionRepository) GetActiveByUserID(userID uuid.UUID) ([]models.FinancialConnection, error) {
	var connections []models.FinancialConnection
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("created_at ASC").Find(&connections).Error; err != nil {
		return nil, fmt.Errorf("failed to get active financial connections for user: %w", err)
	}
	return connections, nil
}

// UpdateLastSync records the sync bookkeeping timestamp on a connection
func (r *connectionRepository) UpdateLastSync(connectionID uuid.UUID, syncedAt time.Time) error {
	result := r.db.Model(&models.FinancialConnection{}).
		Where("id = ?", connectionID).
		Updates(map[string]interface{}{
			"last_sync_at": syncedAt,
			"updated_at":   time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update connection last sync: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}

// Deactivate soft-deletes a connection via the active flag
func (r *connectionRepository) Deactivate(connectionID uuid.UUID) error {
	result := r.db.Model(&models.FinancialConnection{}).
		Where("id = ?", connectionID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to deactivate connection: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrConnectionNotFound
	}
	return nil
}
