package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/nicktebbo/FinTrack/internal/database"
	"github.com/nicktebbo/FinTrack/internal/models"
)

// ConnectionRepositorySuite defines the test suite for ConnectionRepository
type ConnectionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     ConnectionRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *ConnectionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewConnectionRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *ConnectionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestConnectionRepositorySuite runs the test suite
func TestConnectionRepositorySuite(t *testing.T) {
	suite.Run(t, new(ConnectionRepositorySuite))
}

func (s *ConnectionRepositorySuite) newConnection(provider string) *models.FinancialConnection {
	return &models.FinancialConnection{
		UserID:          s.testUser.ID,
		Provider:        provider,
		AccessToken:     "access-token-" + provider,
		ItemID:          "item-" + provider,
		InstitutionName: "Test Institution",
		IsActive:        true,
	}
}

// Test Create functionality
func (s *ConnectionRepositorySuite) TestCreate() {
	connection := s.newConnection(models.ProviderPlaid)

	err := s.repo.Create(connection)
	s.NoError(err)
	s.NotEqual(uuid.Nil, connection.ID)
	s.NotZero(connection.CreatedAt)
}

func (s *ConnectionRepositorySuite) TestCreate_MissingAccessToken() {
	connection := s.newConnection(models.ProviderPlaid)
	connection.AccessToken = ""

	err := s.repo.Create(connection)
	s.Error(err)
	s.ErrorIs(err, models.ErrAccessTokenMissing)
}

// Test GetByID functionality
func (s *ConnectionRepositorySuite) TestGetByID() {
	connection := s.newConnection(models.ProviderPlaid)
	s.NoError(s.repo.Create(connection))

	found, err := s.repo.GetByID(connection.ID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(connection.ID, found.ID)
	s.Equal(connection.AccessToken, found.AccessToken)

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrConnectionNotFound)
}

// Test GetActiveByUserID filters out deactivated connections
func (s *ConnectionRepositorySuite) TestGetActiveByUserID() {
	plaid := s.newConnection(models.ProviderPlaid)
	s.NoError(s.repo.Create(plaid))

	basiq := s.newConnection(models.ProviderBasiq)
	s.NoError(s.repo.Create(basiq))
	s.NoError(s.repo.Deactivate(basiq.ID))

	connections, err := s.repo.GetActiveByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(connections, 1)
	s.Equal(plaid.ID, connections[0].ID)
}

// Test UpdateLastSync functionality
func (s *ConnectionRepositorySuite) TestUpdateLastSync() {
	connection := s.newConnection(models.ProviderPlaid)
	s.NoError(s.repo.Create(connection))

	syncedAt := time.Now()
	err := s.repo.UpdateLastSync(connection.ID, syncedAt)
	s.NoError(err)

	found, err := s.repo.GetByID(connection.ID)
	s.NoError(err)
	s.NotNil(found.LastSyncAt)
	s.WithinDuration(syncedAt, *found.LastSyncAt, time.Second)

	err = s.repo.UpdateLastSync(uuid.New(), syncedAt)
	s.ErrorIs(err, ErrConnectionNotFound)
}

// Test Deactivate functionality
func (s *ConnectionRepositorySuite) TestDeactivate() {
	connection := s.newConnection(models.ProviderPlaid)
	s.NoError(s.repo.Create(connection))

	err := s.repo.Deactivate(connection.ID)
	s.NoError(err)

	found, err := s.repo.GetByID(connection.ID)
	s.NoError(err)
	s.False(found.IsActive)
}
