package services

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories"
)

const (
	// recentTransactionFetchLimit is the window of newest transactions the
	// monthly spending figure is computed over.
	recentTransactionFetchLimit = 50

	// recentTransactionDisplayLimit is how many of those the summary carries.
	recentTransactionDisplayLimit = 5
)

type dashboardService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	goalRepo        repositories.GoalRepositoryInterface
	insightRepo     repositories.InsightRepositoryInterface
	metrics         MetricsRecorderInterface
	nowFn           func() time.Time
}

// NewDashboardService creates the dashboard aggregator
func NewDashboardService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	goalRepo repositories.GoalRepositoryInterface,
	insightRepo repositories.InsightRepositoryInterface,
	metrics MetricsRecorderInterface,
) DashboardServiceInterface {
	return &dashboardService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		goalRepo:        goalRepo,
		insightRepo:     insightRepo,
		metrics:         metrics,
		nowFn:           time.Now,
	}
}

// GetSummary recomputes the dashboard figures from the current rows. The four
// reads fan out concurrently; any failure fails the whole summary rather than
// returning partial figures.
func (s *dashboardService) GetSummary(userID uuid.UUID) (*models.DashboardSummary, error) {
	started := s.nowFn()

	var (
		wg sync.WaitGroup

		accounts []models.Account
		recent   []models.Transaction
		goals    []models.Goal
		insights []models.Insight

		accountsErr, recentErr, goalsErr, insightsErr error
	)

	wg.Add(4)
	go func() {
		defer wg.Done()
		accounts, accountsErr = s.accountRepo.GetActiveByUserID(userID)
	}()
	go func() {
		defer wg.Done()
		recent, recentErr = s.transactionRepo.GetRecentByUserID(userID, recentTransactionFetchLimit)
	}()
	go func() {
		defer wg.Done()
		goals, goalsErr = s.goalRepo.GetByUserID(userID)
	}()
	go func() {
		defer wg.Done()
		insights, insightsErr = s.insightRepo.GetByUserID(userID)
	}()
	wg.Wait()

	for _, err := range []error{accountsErr, recentErr, goalsErr, insightsErr} {
		if err != nil {
			slog.Error("dashboard summary read failed",
				"user_id", userID,
				"error", err)
			return nil, fmt.Errorf("failed to build dashboard summary: %w", err)
		}
	}

	summary := s.reduce(accounts, recent, goals, insights)

	s.metrics.RecordProcessingTime("dashboard.summary", s.nowFn().Sub(started))

	slog.Info("dashboard summary generated",
		"user_id", userID,
		"accounts", summary.AccountsCount,
		"total_assets", summary.TotalAssets.String())

	return summary, nil
}

func (s *dashboardService) reduce(
	accounts []models.Account,
	recent []models.Transaction,
	goals []models.Goal,
	insights []models.Insight,
) *models.DashboardSummary {
	summary := &models.DashboardSummary{
		TotalAssets:      decimal.Zero,
		TotalInvestments: decimal.Zero,
		TotalRetirement:  decimal.Zero,
		MonthlySpending:  decimal.Zero,
		AccountsCount:    len(accounts),
	}

	for _, account := range accounts {
		summary.TotalAssets = summary.TotalAssets.Add(account.Balance)
		switch account.AccountType {
		case models.AccountTypeInvestment:
			summary.TotalInvestments = summary.TotalInvestments.Add(account.Balance)
		case models.AccountTypeRetirement:
			summary.TotalRetirement = summary.TotalRetirement.Add(account.Balance)
		}
	}

	now := s.nowFn()
	for _, transaction := range recent {
		if transaction.IsExpense() && transaction.InMonth(now) {
			summary.MonthlySpending = summary.MonthlySpending.Add(transaction.Amount)
		}
	}

	display := len(recent)
	if display > recentTransactionDisplayLimit {
		display = recentTransactionDisplayLimit
	}
	summary.RecentTransactions = recent[:display]

	summary.ActiveGoals = make([]models.Goal, 0, len(goals))
	for _, goal := range goals {
		if !goal.IsCompleted {
			summary.ActiveGoals = append(summary.ActiveGoals, goal)
		}
	}

	summary.UnreadInsights = make([]models.Insight, 0, len(insights))
	for _, insight := range insights {
		if !insight.IsRead {
			summary.UnreadInsights = append(summary.UnreadInsights, insight)
		}
	}

	return summary
}
