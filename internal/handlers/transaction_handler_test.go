package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/services"
	"github.com/nicktebbo/FinTrack/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

// TransactionHandlerSuite defines the test suite for TransactionHandler
type TransactionHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockTransactionServiceInterface
	handler     *TransactionHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func (s *TransactionHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockTransactionServiceInterface(s.ctrl)
	s.handler = NewTransactionHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

func (s *TransactionHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransactionHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerSuite))
}

func (s *TransactionHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *TransactionHandlerSuite) TestCreateTransaction_Success() {
	accountID := uuid.New()
	reqBody := dto.CreateTransactionRequest{
		AccountID:       accountID.String(),
		Description:     "Weekly groceries",
		Amount:          "84.20",
		Category:        "Food and Drink",
		Date:            "2025-03-10",
		TransactionType: models.TransactionTypeExpense,
	}

	created := &models.Transaction{
		ID:              uuid.New(),
		AccountID:       accountID,
		Description:     "Weekly groceries",
		Amount:          decimal.RequireFromString("84.20"),
		TransactionType: models.TransactionTypeExpense,
	}

	s.mockService.EXPECT().
		CreateTransaction(s.testUserID, gomock.Any()).
		Return(created, nil)

	c, rec := s.createContextWithAuth("POST", "/transactions", reqBody)

	err := s.handler.CreateTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.TransactionResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("Weekly groceries", resp.Transaction.Description)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_InvalidDate() {
	// Rejected by request validation before the service is ever reached
	reqBody := dto.CreateTransactionRequest{
		AccountID:       uuid.New().String(),
		Description:     "Weekly groceries",
		Amount:          "84.20",
		Date:            "10/03/2025",
		TransactionType: models.TransactionTypeExpense,
	}

	c, _ := s.createContextWithAuth("POST", "/transactions", reqBody)

	err := s.handler.CreateTransaction(c)
	s.Error(err)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_AccountNotOwned() {
	reqBody := dto.CreateTransactionRequest{
		AccountID:       uuid.New().String(),
		Description:     "Weekly groceries",
		Amount:          "84.20",
		Date:            "2025-03-10",
		TransactionType: models.TransactionTypeExpense,
	}

	s.mockService.EXPECT().
		CreateTransaction(s.testUserID, gomock.Any()).
		Return(nil, services.ErrNotFound)

	c, rec := s.createContextWithAuth("POST", "/transactions", reqBody)

	err := s.handler.CreateTransaction(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *TransactionHandlerSuite) TestCreateTransaction_BadTransactionType() {
	reqBody := dto.CreateTransactionRequest{
		AccountID:       uuid.New().String(),
		Description:     "Weekly groceries",
		Amount:          "84.20",
		Date:            "2025-03-10",
		TransactionType: "debit",
	}

	c, _ := s.createContextWithAuth("POST", "/transactions", reqBody)

	err := s.handler.CreateTransaction(c)
	s.Error(err)
}

func (s *TransactionHandlerSuite) TestGetRecentTransactions_DefaultLimit() {
	s.mockService.EXPECT().
		GetRecentTransactions(s.testUserID, defaultPageLimit).
		Return([]models.Transaction{{ID: uuid.New()}}, nil)

	c, rec := s.createContextWithAuth("GET", "/transactions/recent", nil)

	err := s.handler.GetRecentTransactions(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransactionListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(1), resp.Total)
}

func (s *TransactionHandlerSuite) TestGetRecentTransactions_CustomLimit() {
	s.mockService.EXPECT().
		GetRecentTransactions(s.testUserID, 5).
		Return([]models.Transaction{}, nil)

	c, rec := s.createContextWithAuth("GET", "/transactions/recent?limit=5", nil)

	err := s.handler.GetRecentTransactions(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}
