package services

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/providers"
	"github.com/nicktebbo/FinTrack/internal/repositories"
	"github.com/nicktebbo/FinTrack/internal/repositories/repository_mocks"
	"github.com/nicktebbo/FinTrack/internal/services/service_mocks"
)

// ConnectionServiceSuite defines the test suite for the connection service
type ConnectionServiceSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	connectionRepo *repository_mocks.MockConnectionRepositoryInterface
	plaid          *service_mocks.MockPlaidLinkerInterface
	basiq          *service_mocks.MockBasiqLinkerInterface
	metrics        *service_mocks.MockMetricsRecorderInterface
	service        *connectionService
	testUserID     uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *ConnectionServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.connectionRepo = repository_mocks.NewMockConnectionRepositoryInterface(s.ctrl)
	s.plaid = service_mocks.NewMockPlaidLinkerInterface(s.ctrl)
	s.basiq = service_mocks.NewMockBasiqLinkerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().IncrementCounter(gomock.Any(), gomock.Any()).AnyTimes()

	s.service = NewConnectionService(
		s.connectionRepo,
		s.plaid,
		s.basiq,
		s.metrics,
	).(*connectionService)

	s.testUserID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *ConnectionServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestConnectionServiceSuite runs the test suite
func TestConnectionServiceSuite(t *testing.T) {
	suite.Run(t, new(ConnectionServiceSuite))
}

func (s *ConnectionServiceSuite) TestCreateLinkToken() {
	s.plaid.EXPECT().CreateLinkToken(gomock.Any(), s.testUserID.String()).
		Return("link-sandbox-123", nil)

	token, err := s.service.CreateLinkToken(context.Background(), s.testUserID)
	s.NoError(err)
	s.Equal("link-sandbox-123", token)
}

func (s *ConnectionServiceSuite) TestExchangePublicToken() {
	s.plaid.EXPECT().ExchangePublicToken(gomock.Any(), "public-token").
		Return(&providers.LinkResult{AccessToken: "access-123", ItemID: "item-123"}, nil)

	s.connectionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(connection *models.FinancialConnection) error {
		connection.ID = uuid.New()
		s.Equal(s.testUserID, connection.UserID)
		s.Equal(models.ProviderPlaid, connection.Provider)
		s.Equal("access-123", connection.AccessToken)
		s.Equal("item-123", connection.ItemID)
		s.True(connection.IsActive)
		return nil
	})

	connection, err := s.service.ExchangePublicToken(context.Background(), s.testUserID, &dto.ExchangePublicTokenRequest{
		PublicToken:     "public-token",
		InstitutionName: "Chase",
	})
	s.NoError(err)
	s.Equal("Chase", connection.InstitutionName)
}

func (s *ConnectionServiceSuite) TestExchangePublicToken_ProviderError() {
	s.plaid.EXPECT().ExchangePublicToken(gomock.Any(), "public-token").
		Return(nil, providers.ErrAuthRejected)

	_, err := s.service.ExchangePublicToken(context.Background(), s.testUserID, &dto.ExchangePublicTokenRequest{
		PublicToken: "public-token",
	})
	s.ErrorIs(err, providers.ErrAuthRejected)
}

func (s *ConnectionServiceSuite) TestConnectBasiq() {
	credentials := map[string]string{"loginId": "user", "password": "pass"}

	s.basiq.EXPECT().CreateConnection(gomock.Any(), "basiq-user-1", "AU00000", credentials).
		Return(&providers.ConnectionResult{ConnectionID: "conn-123"}, nil)

	s.connectionRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(connection *models.FinancialConnection) error {
		connection.ID = uuid.New()
		s.Equal(models.ProviderBasiq, connection.Provider)
		// The connection id doubles as the access credential; the Basiq
		// user id rides along for later API paths.
		s.Equal("conn-123", connection.AccessToken)
		s.Equal("basiq-user-1", connection.ItemID)
		return nil
	})

	connection, err := s.service.ConnectBasiq(context.Background(), s.testUserID, &dto.BasiqConnectRequest{
		BasiqUserID:      "basiq-user-1",
		InstitutionID:    "AU00000",
		LoginCredentials: credentials,
	})
	s.NoError(err)
	s.NotNil(connection)
}

func (s *ConnectionServiceSuite) TestDeactivateConnection() {
	connectionID := uuid.New()
	s.connectionRepo.EXPECT().GetByID(connectionID).
		Return(&models.FinancialConnection{ID: connectionID, UserID: s.testUserID}, nil)
	s.connectionRepo.EXPECT().Deactivate(connectionID).Return(nil)

	err := s.service.DeactivateConnection(s.testUserID, connectionID)
	s.NoError(err)
}

func (s *ConnectionServiceSuite) TestDeactivateConnection_ForeignUser() {
	connectionID := uuid.New()
	s.connectionRepo.EXPECT().GetByID(connectionID).
		Return(&models.FinancialConnection{ID: connectionID, UserID: uuid.New()}, nil)

	// A foreign connection reads the same as a missing one
	err := s.service.DeactivateConnection(s.testUserID, connectionID)
	s.ErrorIs(err, repositories.ErrConnectionNotFound)
}
