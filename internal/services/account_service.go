package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories"
)

var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidAmount = errors.New("invalid amount")
)

type accountService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
}

// NewAccountService creates the account service
func NewAccountService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
) AccountServiceInterface {
	return &accountService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
	}
}

// CreateAccount creates a manual account for the user
func (s *accountService) CreateAccount(userID uuid.UUID, req *dto.CreateAccountRequest) (*models.Account, error) {
	balance := decimal.Zero
	if req.Balance != "" {
		parsed, err := decimal.NewFromString(req.Balance)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, req.Balance)
		}
		balance = parsed
	}

	// The validator accepts any casing; the model stores the lowercase form
	provider := strings.ToLower(req.Provider)
	if provider == "" {
		provider = models.ProviderManual
	}

	account := &models.Account{
		UserID:        userID,
		Name:          req.Name,
		AccountType:   req.AccountType,
		Balance:       balance,
		AccountNumber: req.AccountNumber,
		Institution:   req.Institution,
		IsActive:      true,
		Provider:      provider,
	}

	if err := s.accountRepo.Create(account); err != nil {
		slog.Error("failed to create account",
			"user_id", userID,
			"error", err)
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	slog.Info("account created",
		"user_id", userID,
		"account_id", account.ID,
		"account_type", account.AccountType)

	return account, nil
}

// GetAccountByID returns an account the user owns
func (s *accountService) GetAccountByID(userID, accountID uuid.UUID) (*models.Account, error) {
	account, err := s.fetchOwnedAccount(userID, accountID)
	if err != nil {
		return nil, err
	}
	return account, nil
}

// GetUserAccounts lists the user's accounts, inactive included
func (s *accountService) GetUserAccounts(userID uuid.UUID) ([]models.Account, error) {
	accounts, err := s.accountRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccount applies the present fields of the request to an account the
// user owns
func (s *accountService) UpdateAccount(userID, accountID uuid.UUID, req *dto.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.fetchOwnedAccount(userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}
	if req.Institution != nil {
		account.Institution = *req.Institution
	}
	if req.Balance != nil {
		balance, err := decimal.NewFromString(*req.Balance)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, *req.Balance)
		}
		if balance.LessThan(decimal.Zero) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, *req.Balance)
		}
		account.Balance = balance

		// A balance-only edit is the common quick adjustment from the
		// dashboard; it takes the targeted write instead of rewriting
		// the whole row.
		if req.Name == nil && req.AccountType == nil && req.Institution == nil {
			if err := s.accountRepo.UpdateBalance(accountID, balance); err != nil {
				return nil, fmt.Errorf("failed to update account balance: %w", err)
			}

			slog.Info("account balance updated",
				"user_id", userID,
				"account_id", accountID)

			return account, nil
		}
	}

	if err := s.accountRepo.Update(account); err != nil {
		return nil, fmt.Errorf("failed to update account: %w", err)
	}

	slog.Info("account updated",
		"user_id", userID,
		"account_id", accountID)

	return account, nil
}

// DeactivateAccount soft-deletes an account the user owns. Its transactions
// remain.
func (s *accountService) DeactivateAccount(userID, accountID uuid.UUID) error {
	if _, err := s.fetchOwnedAccount(userID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.Deactivate(accountID); err != nil {
		return fmt.Errorf("failed to deactivate account: %w", err)
	}

	slog.Info("account deactivated",
		"user_id", userID,
		"account_id", accountID)

	return nil
}

// GetAccountTransactions lists an owned account's transactions with pagination
func (s *accountService) GetAccountTransactions(userID, accountID uuid.UUID, offset, limit int) ([]models.Transaction, int64, error) {
	if _, err := s.fetchOwnedAccount(userID, accountID); err != nil {
		return nil, 0, err
	}

	transactions, total, err := s.transactionRepo.GetByAccountID(accountID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get account transactions: %w", err)
	}

	return transactions, total, nil
}

// fetchOwnedAccount loads an account and verifies ownership. A foreign
// account reads the same as a missing one.
func (s *accountService) fetchOwnedAccount(userID, accountID uuid.UUID) (*models.Account, error) {
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

	return account, nil
}
