package services

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories"
)

const transactionDateLayout = "2006-01-02"

var (
	ErrInvalidDate = errors.New("invalid transaction date")
)

type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
}

// NewTransactionService creates the transaction service
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
	}
}

// CreateTransaction records a manual transaction against an account the user
// owns. Amount is a magnitude; direction comes from the transaction type.
func (s *transactionService) CreateTransaction(userID uuid.UUID, req *dto.CreateTransactionRequest) (*models.Transaction, error) {
	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("invalid account id: %w", err)
	}

	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	if account.UserID != userID {
		return nil, ErrNotFound
	}

	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.Amount)
	}

	date, err := time.Parse(transactionDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, req.Date)
	}

	transaction := &models.Transaction{
		AccountID:       accountID,
		UserID:          userID,
		Description:     req.Description,
		Amount:          amount,
		Category:        req.Category,
		Date:            date,
		TransactionType: req.TransactionType,
		Provider:        models.ProviderManual,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		slog.Error("failed to create transaction",
			"user_id", userID,
			"account_id", accountID,
			"error", err)
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	slog.Info("transaction recorded",
		"user_id", userID,
		"transaction_id", transaction.ID,
		"transaction_type", transaction.TransactionType)

	return transaction, nil
}

// GetRecentTransactions lists the user's newest transactions
func (s *transactionService) GetRecentTransactions(userID uuid.UUID, limit int) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.GetRecentByUserID(userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w", err)
	}
	return transactions, nil
}
