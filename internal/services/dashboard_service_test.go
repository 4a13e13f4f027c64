package services

import (
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories/repository_mocks"
	"github.com/nicktebbo/FinTrack/internal/services/service_mocks"
)

// DashboardServiceSuite defines the test suite for the dashboard aggregator
type DashboardServiceSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	accountRepo     *repository_mocks.MockAccountRepositoryInterface
	transactionRepo *repository_mocks.MockTransactionRepositoryInterface
	goalRepo        *repository_mocks.MockGoalRepositoryInterface
	insightRepo     *repository_mocks.MockInsightRepositoryInterface
	metrics         *service_mocks.MockMetricsRecorderInterface
	service         *dashboardService
	testUserID      uuid.UUID
	testTime        time.Time
}

// SetupTest runs before each test in the suite
func (s *DashboardServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.transactionRepo = repository_mocks.NewMockTransactionRepositoryInterface(s.ctrl)
	s.goalRepo = repository_mocks.NewMockGoalRepositoryInterface(s.ctrl)
	s.insightRepo = repository_mocks.NewMockInsightRepositoryInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.metrics.EXPECT().RecordProcessingTime(gomock.Any(), gomock.Any()).AnyTimes()

	s.service = NewDashboardService(
		s.accountRepo,
		s.transactionRepo,
		s.goalRepo,
		s.insightRepo,
		s.metrics,
	).(*dashboardService)

	s.testUserID = uuid.New()
	s.testTime = time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	s.service.nowFn = func() time.Time { return s.testTime }
}

// TearDownTest runs after each test in the suite
func (s *DashboardServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

// TestDashboardServiceSuite runs the test suite
func TestDashboardServiceSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceSuite))
}

func (s *DashboardServiceSuite) expectReads(
	accounts []models.Account,
	recent []models.Transaction,
	goals []models.Goal,
	insights []models.Insight,
) {
	s.accountRepo.EXPECT().GetActiveByUserID(s.testUserID).Return(accounts, nil)
	s.transactionRepo.EXPECT().GetRecentByUserID(s.testUserID, recentTransactionFetchLimit).Return(recent, nil)
	s.goalRepo.EXPECT().GetByUserID(s.testUserID).Return(goals, nil)
	s.insightRepo.EXPECT().GetByUserID(s.testUserID).Return(insights, nil)
}

func (s *DashboardServiceSuite) TestGetSummary_BalanceSums() {
	accounts := []models.Account{
		{AccountType: models.AccountTypeChecking, Balance: decimal.RequireFromString("100.10")},
		{AccountType: models.AccountTypeSavings, Balance: decimal.RequireFromString("50.15")},
		{AccountType: models.AccountTypeInvestment, Balance: decimal.RequireFromString("1000.00")},
		{AccountType: models.AccountTypeRetirement, Balance: decimal.RequireFromString("2000.50")},
	}
	s.expectReads(accounts, nil, nil, nil)

	summary, err := s.service.GetSummary(s.testUserID)
	s.NoError(err)

	// Exact decimal arithmetic: no float drift on 100.10 + 50.15
	s.True(decimal.RequireFromString("3150.75").Equal(summary.TotalAssets))
	s.True(decimal.RequireFromString("1000.00").Equal(summary.TotalInvestments))
	s.True(decimal.RequireFromString("2000.50").Equal(summary.TotalRetirement))
	s.Equal(4, summary.AccountsCount)
}

func (s *DashboardServiceSuite) TestGetSummary_MonthlySpending() {
	inMonth := s.testTime.AddDate(0, 0, -3)
	lastMonth := s.testTime.AddDate(0, -1, 0)

	recent := []models.Transaction{
		{TransactionType: models.TransactionTypeExpense, Amount: decimal.RequireFromString("40.00"), Date: inMonth},
		{TransactionType: models.TransactionTypeExpense, Amount: decimal.RequireFromString("10.25"), Date: inMonth},
		// Last month's expense is outside the wall-clock month
		{TransactionType: models.TransactionTypeExpense, Amount: decimal.RequireFromString("99.99"), Date: lastMonth},
		// Income and transfers never count toward spending
		{TransactionType: models.TransactionTypeIncome, Amount: decimal.RequireFromString("2000.00"), Date: inMonth},
		{TransactionType: models.TransactionTypeTransfer, Amount: decimal.RequireFromString("500.00"), Date: inMonth},
	}
	s.expectReads(nil, recent, nil, nil)

	summary, err := s.service.GetSummary(s.testUserID)
	s.NoError(err)
	s.True(decimal.RequireFromString("50.25").Equal(summary.MonthlySpending))
}

func (s *DashboardServiceSuite) TestGetSummary_RecentTransactionsCapped() {
	recent := make([]models.Transaction, 12)
	for i := range recent {
		recent[i] = models.Transaction{
			ID:              uuid.New(),
			TransactionType: models.TransactionTypeIncome,
			Amount:          decimal.NewFromInt(int64(i)),
			Date:            s.testTime.AddDate(0, 0, -i),
		}
	}
	s.expectReads(nil, recent, nil, nil)

	summary, err := s.service.GetSummary(s.testUserID)
	s.NoError(err)
	s.Len(summary.RecentTransactions, recentTransactionDisplayLimit)
	s.Equal(recent[0].ID, summary.RecentTransactions[0].ID)
}

func (s *DashboardServiceSuite) TestGetSummary_GoalAndInsightFilters() {
	goals := []models.Goal{
		{ID: uuid.New(), Name: "Holiday", IsCompleted: false},
		{ID: uuid.New(), Name: "Done", IsCompleted: true},
	}
	insights := []models.Insight{
		{ID: uuid.New(), Title: "Unread", IsRead: false},
		{ID: uuid.New(), Title: "Read", IsRead: true},
	}
	s.expectReads(nil, nil, goals, insights)

	summary, err := s.service.GetSummary(s.testUserID)
	s.NoError(err)
	s.Require().Len(summary.ActiveGoals, 1)
	s.Equal("Holiday", summary.ActiveGoals[0].Name)
	s.Require().Len(summary.UnreadInsights, 1)
	s.Equal("Unread", summary.UnreadInsights[0].Title)
}

func (s *DashboardServiceSuite) TestGetSummary_ReadFailure() {
	s.accountRepo.EXPECT().GetActiveByUserID(s.testUserID).Return(nil, errors.New("db down"))
	s.transactionRepo.EXPECT().GetRecentByUserID(s.testUserID, recentTransactionFetchLimit).Return(nil, nil)
	s.goalRepo.EXPECT().GetByUserID(s.testUserID).Return(nil, nil)
	s.insightRepo.EXPECT().GetByUserID(s.testUserID).Return(nil, nil)

	summary, err := s.service.GetSummary(s.testUserID)
	s.Error(err)
	s.Nil(summary)
}

func (s *DashboardServiceSuite) TestGetSummary_Empty() {
	s.expectReads(nil, nil, nil, nil)

	summary, err := s.service.GetSummary(s.testUserID)
	s.NoError(err)
	s.True(summary.TotalAssets.IsZero())
	s.True(summary.MonthlySpending.IsZero())
	s.Equal(0, summary.AccountsCount)
	s.Empty(summary.RecentTransactions)
	s.Empty(summary.ActiveGoals)
	s.Empty(summary.UnreadInsights)
}
