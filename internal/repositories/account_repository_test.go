package repositories

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nicktebbo/FinTrack/internal/database"
	"github.com/nicktebbo/FinTrack/internal/models"
)

// AccountRepositorySuite defines the test suite for AccountRepository
type AccountRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     AccountRepositoryInterface
	testUser *models.User
}

// SetupTest runs before each test in the suite
func (s *AccountRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewAccountRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")
}

// TearDownTest runs after each test in the suite
func (s *AccountRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestAccountRepositorySuite runs the test suite
func TestAccountRepositorySuite(t *testing.T) {
	suite.Run(t, new(AccountRepositorySuite))
}

func (s *AccountRepositorySuite) newAccount(name string) *models.Account {
	return &models.Account{
		UserID:      s.testUser.ID,
		Name:        name,
		AccountType: models.AccountTypeChecking,
		Balance:     decimal.NewFromFloat(1000.00),
		Institution: "Chase",
		IsActive:    true,
	}
}

// Test Create functionality
func (s *AccountRepositorySuite) TestCreate() {
	account := s.newAccount("Everyday Checking")

	err := s.repo.Create(account)
	s.NoError(err)
	s.NotEqual(uuid.Nil, account.ID)
	s.NotZero(account.CreatedAt)
	s.Equal(models.SyncStatusPending, account.SyncStatus)
}

func (s *AccountRepositorySuite) TestCreate_DuplicateProviderAccountID() {
	// Repeated syncs insert fresh rows; the same provider account id is
	// allowed to appear more than once.
	account1 := s.newAccount("Everyday Checking")
	account1.Provider = models.ProviderPlaid
	account1.ProviderAccountID = "plaid-acc-1"
	s.NoError(s.repo.Create(account1))

	account2 := s.newAccount("Everyday Checking")
	account2.Provider = models.ProviderPlaid
	account2.ProviderAccountID = "plaid-acc-1"
	s.NoError(s.repo.Create(account2))

	accounts, err := s.repo.GetByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(accounts, 2)
}

// Test GetByID functionality
func (s *AccountRepositorySuite) TestGetByID() {
	account := s.newAccount("Everyday Checking")
	s.NoError(s.repo.Create(account))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.NotNil(found)
	s.Equal(account.ID, found.ID)
	s.Equal(account.Name, found.Name)
	s.True(account.Balance.Equal(found.Balance))

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}

// Test GetActiveByUserID filters out deactivated accounts
func (s *AccountRepositorySuite) TestGetActiveByUserID() {
	active := s.newAccount("Everyday Checking")
	s.NoError(s.repo.Create(active))

	inactive := s.newAccount("Closed Savings")
	inactive.AccountType = models.AccountTypeSavings
	s.NoError(s.repo.Create(inactive))
	s.NoError(s.repo.Deactivate(inactive.ID))

	accounts, err := s.repo.GetActiveByUserID(s.testUser.ID)
	s.NoError(err)
	s.Len(accounts, 1)
	s.Equal(active.ID, accounts[0].ID)
}

// Test UpdateBalance functionality
func (s *AccountRepositorySuite) TestUpdateBalance() {
	account := s.newAccount("Everyday Checking")
	s.NoError(s.repo.Create(account))

	err := s.repo.UpdateBalance(account.ID, decimal.NewFromFloat(2500.75))
	s.NoError(err)

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.True(decimal.NewFromFloat(2500.75).Equal(found.Balance))
}

// Test Update persists sync bookkeeping
func (s *AccountRepositorySuite) TestUpdate_SyncStatus() {
	account := s.newAccount("Everyday Checking")
	s.NoError(s.repo.Create(account))

	account.MarkSynced(time.Now())
	s.NoError(s.repo.Update(account))

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.Equal(models.SyncStatusSuccess, found.SyncStatus)
	s.NotNil(found.LastSyncAt)
}

// Test Deactivate functionality
func (s *AccountRepositorySuite) TestDeactivate() {
	account := s.newAccount("Everyday Checking")
	s.NoError(s.repo.Create(account))

	err := s.repo.Deactivate(account.ID)
	s.NoError(err)

	found, err := s.repo.GetByID(account.ID)
	s.NoError(err)
	s.False(found.IsActive)

	err = s.repo.Deactivate(uuid.New())
	s.ErrorIs(err, ErrAccountNotFound)
}
