package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories/repository_mocks"
)

// InsightServiceSuite defines the test suite for the insight service
type InsightServiceSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	insightRepo   *repository_mocks.MockInsightRepositoryInterface
	service       *insightService
	testUserID    uuid.UUID
	testInsightID uuid.UUID
}

// SetupTest runs before each test in the suite
func (s *InsightServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.insightRepo = repository_mocks.NewMockInsightRepositoryInterface(s.ctrl)
	s.service = NewInsightService(s.insightRepo).(*insightService)
	s.testUserID = uuid.New()
	s.testInsightID = uuid.New()
}

// TearDownTest runs after each test in the suite
func (s *InsightServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestInsightServiceSuite runs the test suite
func TestInsightServiceSuite(t *testing.T) {
	suite.Run(t, new(InsightServiceSuite))
}

func (s *InsightServiceSuite) TestCreateInsight() {
	s.insightRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(insight *models.Insight) error {
		insight.ID = s.testInsightID
		s.Equal(s.testUserID, insight.UserID)
		s.Equal(models.InsightTypeSpendingAlert, insight.InsightType)
		return nil
	})

	insight, err := s.service.CreateInsight(s.testUserID, &dto.CreateInsightRequest{
		InsightType: models.InsightTypeSpendingAlert,
		Title:       "High dining spend",
		Description: "Dining spend is up 40% on last month.",
		Priority:    models.PriorityHigh,
	})
	s.NoError(err)
	s.Equal(s.testInsightID, insight.ID)
}

func (s *InsightServiceSuite) TestMarkInsightRead() {
	s.insightRepo.EXPECT().GetByID(s.testInsightID).
		Return(&models.Insight{ID: s.testInsightID, UserID: s.testUserID}, nil)
	s.insightRepo.EXPECT().MarkRead(s.testInsightID).Return(nil)

	s.NoError(s.service.MarkInsightRead(s.testUserID, s.testInsightID))
}

func (s *InsightServiceSuite) TestMarkInsightRead_AlreadyRead() {
	s.insightRepo.EXPECT().GetByID(s.testInsightID).
		Return(&models.Insight{ID: s.testInsightID, UserID: s.testUserID, IsRead: true}, nil)
	s.insightRepo.EXPECT().MarkRead(s.testInsightID).Return(nil)

	// Marking twice is idempotent
	s.NoError(s.service.MarkInsightRead(s.testUserID, s.testInsightID))
}

func (s *InsightServiceSuite) TestMarkInsightRead_ForeignUser() {
	s.insightRepo.EXPECT().GetByID(s.testInsightID).
		Return(&models.Insight{ID: s.testInsightID, UserID: uuid.New()}, nil)

	err := s.service.MarkInsightRead(s.testUserID, s.testInsightID)
	s.ErrorIs(err, ErrNotFound)
}
