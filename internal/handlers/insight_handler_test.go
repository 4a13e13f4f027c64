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
	"github.com/stretchr/testify/suite"
)

// InsightHandlerSuite defines the test suite for InsightHandler
type InsightHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *service_mocks.MockInsightServiceInterface
	handler     *InsightHandler
	echo        *echo.Echo
	testUserID  uuid.UUID
}

func (s *InsightHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockInsightServiceInterface(s.ctrl)
	s.handler = NewInsightHandler(s.mockService)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.testUserID = uuid.New()
}

func (s *InsightHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestInsightHandlerSuite(t *testing.T) {
	suite.Run(t, new(InsightHandlerSuite))
}

func (s *InsightHandlerSuite) createContextWithAuth(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *InsightHandlerSuite) TestCreateInsight_Success() {
	reqBody := dto.CreateInsightRequest{
		InsightType: models.InsightTypeSpendingAlert,
		Title:       "Dining out spending up 30%",
		Description: "You spent $420 on dining out this month, up from $323 last month.",
		Priority:    "high",
	}

	created := &models.Insight{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		InsightType: models.InsightTypeSpendingAlert,
		Title:       "Dining out spending up 30%",
		Priority:    "high",
	}

	s.mockService.EXPECT().
		CreateInsight(s.testUserID, gomock.Any()).
		Return(created, nil)

	c, rec := s.createContextWithAuth("POST", "/insights", reqBody)

	err := s.handler.CreateInsight(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.InsightResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.False(resp.Insight.IsRead)
}

func (s *InsightHandlerSuite) TestCreateInsight_FreeFormType() {
	// Types beyond the well-known constants are accepted as-is
	reqBody := dto.CreateInsightRequest{
		InsightType: "subscription_review",
		Title:       "Three overlapping streaming services",
		Description: "You pay for Netflix, Stan and Binge; the overlap costs $32/month.",
	}

	created := &models.Insight{
		ID:          uuid.New(),
		UserID:      s.testUserID,
		InsightType: "subscription_review",
		Title:       "Three overlapping streaming services",
		Priority:    models.PriorityLow,
	}

	s.mockService.EXPECT().
		CreateInsight(s.testUserID, gomock.Any()).
		Return(created, nil)

	c, rec := s.createContextWithAuth("POST", "/insights", reqBody)

	err := s.handler.CreateInsight(c)
	s.NoError(err)
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.InsightResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("subscription_review", resp.Insight.InsightType)
}

func (s *InsightHandlerSuite) TestCreateInsight_MissingType() {
	reqBody := dto.CreateInsightRequest{
		Title:       "Storm coming",
		Description: "No insight type supplied",
	}

	c, _ := s.createContextWithAuth("POST", "/insights", reqBody)

	err := s.handler.CreateInsight(c)
	s.Error(err)
}

func (s *InsightHandlerSuite) TestGetInsights_Success() {
	insights := []models.Insight{
		{ID: uuid.New(), UserID: s.testUserID, Title: "Spending up"},
		{ID: uuid.New(), UserID: s.testUserID, Title: "Goal nearly there", IsRead: true},
	}

	s.mockService.EXPECT().
		GetUserInsights(s.testUserID).
		Return(insights, nil)

	c, rec := s.createContextWithAuth("GET", "/insights", nil)

	err := s.handler.GetInsights(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.InsightListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.Total)
}

func (s *InsightHandlerSuite) TestMarkInsightRead_Success() {
	insightID := uuid.New()

	s.mockService.EXPECT().
		MarkInsightRead(s.testUserID, insightID).
		Return(nil)

	c, rec := s.createContextWithAuth("PUT", "/insights/"+insightID.String()+"/read", nil)
	c.SetParamNames("id")
	c.SetParamValues(insightID.String())

	err := s.handler.MarkInsightRead(c)
	s.NoError(err)
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *InsightHandlerSuite) TestMarkInsightRead_NotFound() {
	insightID := uuid.New()

	s.mockService.EXPECT().
		MarkInsightRead(s.testUserID, insightID).
		Return(services.ErrNotFound)

	c, rec := s.createContextWithAuth("PUT", "/insights/"+insightID.String()+"/read", nil)
	c.SetParamNames("id")
	c.SetParamValues(insightID.String())

	err := s.handler.MarkInsightRead(c)
	s.NoError(err)
	s.Equal(http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("INSIGHT_001", resp.Error.Code)
}
