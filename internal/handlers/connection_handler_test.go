package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/providers"
	"github.com/nicktebbo/FinTrack/internal/repositories"
	"github.com/nicktebbo/FinTrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

// ConnectionHandlerSuite defines the test suite for ConnectionHandler
type ConnectionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockConnectionServiceInterface
	handler     *ConnectionHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func (s *ConnectionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockConnectionServiceInterface(s.ctrl)
	s.handler = NewConnectionHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

func (s *ConnectionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestConnectionHandlerSuite(t *testing.T) {
	suite.Run(t, new(ConnectionHandlerSuite))
}

func (s *ConnectionHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user_id", s.testUserID)

	return c, rec
}

func (s *ConnectionHandlerSuite) TestCreateLinkToken_Success() {
	s.mockService.EXPECT().
		CreateLinkToken(gomock.Any(), s.testUserID).
		Return("link-sandbox-token-123", nil)

	c, rec := s.createContextWithAuth("POST", "/connections/plaid/link-token", nil)

	err := s.handler.CreateLinkToken(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.LinkTokenResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("link-sandbox-token-123", resp.LinkToken)
}

func (s *ConnectionHandlerSuite) TestCreateLinkToken_NotConfigured() {
	s.mockService.EXPECT().
		CreateLinkToken(gomock.Any(), s.testUserID).
		Return("", providers.ErrNotConfigured)

	c, rec := s.createContextWithAuth("POST", "/connections/plaid/link-token", nil)

	err := s.handler.CreateLinkToken(c)
	s.NoError(err)
	s.Equal(http.StatusInternalServerError, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PROVIDER_003", resp.Error.Code)
}

func (s *ConnectionHandlerSuite) TestExchangePublicToken_Success() {
	reqBody := dto.ExchangePublicTokenRequest{
		PublicToken:     "public-sandbox-abc",
		InstitutionID:   "ins_1",
		InstitutionName: "First Platypus Bank",
	}

	connection := &models.FinancialConnection{
		ID:              uuid.New(),
		UserID:          s.testUserID,
		Provider:        models.ProviderPlaid,
		AccessToken:     "access-sandbox-secret",
		InstitutionName: "First Platypus Bank",
		IsActive:        true,
	}

	s.mockService.EXPECT().
		ExchangePublicToken(gomock.Any(), s.testUserID, gomock.Any()).
		Return(connection, nil)

	c, rec := s.createContextWithAuth("POST", "/connections/plaid/exchange-token", reqBody)

	err := s.handler.ExchangePublicToken(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	// The stored access token must never appear in the response body
	s.NotContains(rec.Body.String(), "access-sandbox-secret")

	var resp dto.ConnectionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("First Platypus Bank", resp.Connection.InstitutionName)
}

func (s *ConnectionHandlerSuite) TestExchangePublicToken_MissingToken() {
	reqBody := dto.ExchangePublicTokenRequest{InstitutionName: "First Platypus Bank"}

	c, _ := s.createContextWithAuth("POST", "/connections/plaid/exchange-token", reqBody)

	err := s.handler.ExchangePublicToken(c)
	s.Error(err)
}

func (s *ConnectionHandlerSuite) TestConnectBasiq_Success() {
	reqBody := dto.BasiqConnectRequest{
		BasiqUserID:     "basiq-user-1",
		InstitutionID:   "AU00000",
		InstitutionName: "Test Bank AU",
		LoginCredentials: map[string]string{
			"loginId":  "user",
			"password": "secret",
		},
	}

	connection := &models.FinancialConnection{
		ID:              uuid.New(),
		UserID:          s.testUserID,
		Provider:        models.ProviderBasiq,
		InstitutionName: "Test Bank AU",
		IsActive:        true,
	}

	s.mockService.EXPECT().
		ConnectBasiq(gomock.Any(), s.testUserID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, req *dto.BasiqConnectRequest) (*models.FinancialConnection, error) {
			s.Equal("basiq-user-1", req.BasiqUserID)
			s.Equal("AU00000", req.InstitutionID)
			return connection, nil
		})

	c, rec := s.createContextWithAuth("POST", "/connections/basiq/connect", reqBody)

	err := s.handler.ConnectBasiq(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)
}

func (s *ConnectionHandlerSuite) TestConnectBasiq_AuthRejected() {
	reqBody := dto.BasiqConnectRequest{
		BasiqUserID:      "basiq-user-1",
		InstitutionID:    "AU00000",
		LoginCredentials: map[string]string{"loginId": "user", "password": "wrong"},
	}

	s.mockService.EXPECT().
		ConnectBasiq(gomock.Any(), s.testUserID, gomock.Any()).
		Return(nil, providers.ErrAuthRejected)

	c, rec := s.createContextWithAuth("POST", "/connections/basiq/connect", reqBody)

	err := s.handler.ConnectBasiq(c)
	s.NoError(err)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("PROVIDER_002", resp.Error.Code)
}

func (s *ConnectionHandlerSuite) TestGetConnections_Success() {
	connections := []models.FinancialConnection{
		{ID: uuid.New(), UserID: s.testUserID, Provider: models.ProviderPlaid, AccessToken: "top-secret", IsActive: true},
	}

	s.mockService.EXPECT().
		GetUserConnections(s.testUserID).
		Return(connections, nil)

	c, rec := s.createContextWithAuth("GET", "/connections", nil)

	err := s.handler.GetConnections(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
	s.NotContains(rec.Body.String(), "top-secret")
}

func (s *ConnectionHandlerSuite) TestDeleteConnection_NotFound() {
	connectionID := uuid.New()

	s.mockService.EXPECT().
		DeactivateConnection(s.testUserID, connectionID).
		Return(repositories.ErrConnectionNotFound)

	c, rec := s.createContextWithAuth("DELETE", "/connections/"+connectionID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(connectionID.String())

	err := s.handler.DeleteConnection(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}
