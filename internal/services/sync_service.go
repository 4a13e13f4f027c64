package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/providers"
	"github.com/nicktebbo/FinTrack/internal/repositories"
)

type syncService struct {
	connectionRepo  repositories.ConnectionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	resolver        ProviderResolverInterface
	metrics         MetricsRecorderInterface
	syncWindow      time.Duration
	nowFn           func() time.Time
}

// NewSyncService creates the sync orchestrator. syncWindow is how far back a
// pass pulls transactions for each connection.
func NewSyncService(
	connectionRepo repositories.ConnectionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	resolver ProviderResolverInterface,
	metrics MetricsRecorderInterface,
	syncWindow time.Duration,
) SyncServiceInterface {
	return &syncService{
		connectionRepo:  connectionRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		resolver:        resolver,
		metrics:         metrics,
		syncWindow:      syncWindow,
		nowFn:           time.Now,
	}
}

// SyncAccounts runs one sync pass over the user's active connections,
// sequentially. A connection that fails is recorded in the report and never
// aborts the rest of the pass; already-persisted rows from it stay put.
func (s *syncService) SyncAccounts(ctx context.Context, userID uuid.UUID) (*models.SyncReport, error) {
	connections, err := s.connectionRepo.GetActiveByUserID(userID)
	if err != nil {
		slog.Error("failed to load connections for sync",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to load financial connections: %w", err)
	}

	report := &models.SyncReport{
		Outcomes: make([]models.ConnectionSyncOutcome, 0, len(connections)),
	}

	for i := range connections {
		outcome := s.syncConnection(ctx, userID, &connections[i])
		if outcome.Status == models.SyncOutcomeSuccess {
			report.SyncedCount += outcome.AccountsSynced
		}
		report.Outcomes = append(report.Outcomes, outcome)
	}

	slog.Info("sync pass finished",
		"user_id", userID,
		"connections", len(connections),
		"accounts_synced", report.SyncedCount,
		"failed_connections", report.FailedCount())

	return report, nil
}

func (s *syncService) syncConnection(ctx context.Context, userID uuid.UUID, connection *models.FinancialConnection) models.ConnectionSyncOutcome {
	outcome := models.ConnectionSyncOutcome{
		ConnectionID:    connection.ID,
		Provider:        connection.Provider,
		InstitutionName: connection.InstitutionName,
		Status:          models.SyncOutcomeError,
	}
	started := s.nowFn()

	adapter, err := s.resolver.Resolve(connection.Provider)
	if err != nil {
		return s.failConnection(outcome, connection, err)
	}

	cred := providers.Credential{
		AccessToken: connection.AccessToken,
		ItemID:      connection.ItemID,
	}

	// Single attempt per provider call, bounded by the caller's context.
	externalAccounts, err := adapter.FetchAccounts(ctx, cred)
	if err != nil {
		return s.failConnection(outcome, connection, err)
	}

	endDate := s.nowFn()
	externalTransactions, err := adapter.FetchTransactions(ctx, cred, endDate.Add(-s.syncWindow), endDate)
	if err != nil {
		return s.failConnection(outcome, connection, err)
	}

	syncedAt := s.nowFn()

	// Accounts are inserted as fresh rows; each pass appends rather than
	// upserting against earlier pulls of the same provider account. Rows
	// carry the in-flight status until the whole connection finishes.
	accountIDs := make(map[string]uuid.UUID, len(externalAccounts))
	created := make([]*models.Account, 0, len(externalAccounts))
	for _, external := range externalAccounts {
		institution := external.Institution
		if institution == "" {
			institution = connection.InstitutionName
		}

		account := &models.Account{
			UserID:            userID,
			Name:              external.Name,
			AccountType:       external.AccountType,
			Balance:           external.Balance,
			AccountNumber:     external.AccountNumber,
			Institution:       institution,
			IsActive:          true,
			Provider:          connection.Provider,
			ProviderAccountID: external.ProviderAccountID,
			SyncStatus:        models.SyncStatusSyncing,
		}

		if err := s.accountRepo.Create(account); err != nil {
			s.markAccountsFailed(created, syncedAt, err)
			return s.failConnection(outcome, connection, err)
		}

		created = append(created, account)
		accountIDs[external.ProviderAccountID] = account.ID
		outcome.AccountsSynced++
	}

	transactions := make([]models.Transaction, 0, len(externalTransactions))
	for _, external := range externalTransactions {
		accountID, ok := accountIDs[external.ProviderAccountID]
		if !ok {
			// Transaction against an account the provider did not return
			// in this pull; nothing local to attach it to.
			continue
		}

		transactions = append(transactions, models.Transaction{
			AccountID:             accountID,
			UserID:                userID,
			Description:           external.Description,
			Amount:                external.Amount,
			Category:              external.Category,
			Date:                  external.Date,
			TransactionType:       external.TransactionType,
			Provider:              connection.Provider,
			ProviderTransactionID: external.ProviderTransactionID,
			MerchantName:          external.MerchantName,
			Location:              external.Location,
		})
	}

	if err := s.transactionRepo.CreateBatch(transactions); err != nil {
		s.markAccountsFailed(created, syncedAt, err)
		return s.failConnection(outcome, connection, err)
	}
	outcome.TransactionsSynced = len(transactions)

	for _, account := range created {
		account.MarkSynced(syncedAt)
		if err := s.accountRepo.Update(account); err != nil {
			// The row itself is persisted; only the status stamp is stale.
			slog.Warn("failed to stamp account sync status",
				"account_id", account.ID,
				"error", err)
		}
	}

	if err := s.connectionRepo.UpdateLastSync(connection.ID, syncedAt); err != nil {
		// Bookkeeping only; the synced rows are already persisted.
		slog.Warn("failed to record connection sync time",
			"connection_id", connection.ID,
			"error", err)
	}

	outcome.Status = models.SyncOutcomeSuccess

	s.metrics.IncrementCounter("sync.connection.success", map[string]string{"provider": connection.Provider})
	s.metrics.RecordProcessingTime("sync.connection", s.nowFn().Sub(started))

	slog.Info("connection synced",
		"connection_id", connection.ID,
		"provider", connection.Provider,
		"accounts", outcome.AccountsSynced,
		"transactions", outcome.TransactionsSynced)

	return outcome
}

// markAccountsFailed stamps the sync error onto rows inserted before the
// connection's pass fell over. The rows stay put; their status records that
// this pass never completed for them.
func (s *syncService) markAccountsFailed(accounts []*models.Account, at time.Time, syncErr error) {
	for _, account := range accounts {
		account.MarkSyncFailed(at, syncErr)
		if err := s.accountRepo.Update(account); err != nil {
			slog.Warn("failed to stamp account sync failure",
				"account_id", account.ID,
				"error", err)
		}
	}
}

func (s *syncService) failConnection(outcome models.ConnectionSyncOutcome, connection *models.FinancialConnection, err error) models.ConnectionSyncOutcome {
	outcome.Error = err.Error()
	// Rows inserted before the failure carry an error stamp and do not
	// count as synced.
	outcome.AccountsSynced = 0

	s.metrics.IncrementCounter("sync.connection.failed", map[string]string{"provider": connection.Provider})

	slog.Warn("connection sync failed",
		"connection_id", connection.ID,
		"provider", connection.Provider,
		"error", err)

	return outcome
}
