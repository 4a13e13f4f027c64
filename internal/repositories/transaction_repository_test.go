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

// TransactionRepositorySuite defines the test suite for TransactionRepository
type TransactionRepositorySuite struct {
	suite.Suite
	db          *database.DB
	repo        TransactionRepositoryInterface
	testUser    *models.User
	testAccount *models.Account
}

// SetupTest runs before each test in the suite
func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.testUser = database.CreateTestUser(s.T(), s.db, "test@example.com")

	s.testAccount = &models.Account{
		UserID:      s.testUser.ID,
		Name:        "Everyday Checking",
		AccountType: models.AccountTypeChecking,
		Balance:     decimal.NewFromFloat(1000.00),
		IsActive:    true,
	}
	s.NoError(s.db.Create(s.testAccount).Error)
}

// TearDownTest runs after each test in the suite
func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

// TestTransactionRepositorySuite runs the test suite
func TestTransactionRepositorySuite(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

func (s *TransactionRepositorySuite) newTransaction(description string, date time.Time) models.Transaction {
	return models.Transaction{
		AccountID:       s.testAccount.ID,
		UserID:          s.testUser.ID,
		Description:     description,
		Amount:          decimal.NewFromFloat(42.50),
		Date:            date,
		TransactionType: models.TransactionTypeExpense,
	}
}

// Test Create functionality
func (s *TransactionRepositorySuite) TestCreate() {
	transaction := s.newTransaction("Coffee", time.Now())

	err := s.repo.Create(&transaction)
	s.NoError(err)
	s.NotEqual(uuid.Nil, transaction.ID)
	s.Equal(models.DefaultCategory, transaction.Category)
}

func (s *TransactionRepositorySuite) TestCreate_NegativeAmount() {
	transaction := s.newTransaction("Coffee", time.Now())
	transaction.Amount = decimal.NewFromFloat(-42.50)

	err := s.repo.Create(&transaction)
	s.ErrorIs(err, models.ErrNegativeAmount)
}

// Test CreateBatch functionality
func (s *TransactionRepositorySuite) TestCreateBatch() {
	batch := []models.Transaction{
		s.newTransaction("Groceries", time.Now()),
		s.newTransaction("Fuel", time.Now().AddDate(0, 0, -1)),
	}

	err := s.repo.CreateBatch(batch)
	s.NoError(err)

	transactions, err := s.repo.GetRecentByUserID(s.testUser.ID, 10)
	s.NoError(err)
	s.Len(transactions, 2)
}

func (s *TransactionRepositorySuite) TestCreateBatch_Empty() {
	s.NoError(s.repo.CreateBatch(nil))
}

// Test GetRecentByUserID returns newest first, capped at the limit
func (s *TransactionRepositorySuite) TestGetRecentByUserID() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		transaction := s.newTransaction("Purchase", now.AddDate(0, 0, -i))
		s.NoError(s.repo.Create(&transaction))
	}

	transactions, err := s.repo.GetRecentByUserID(s.testUser.ID, 3)
	s.NoError(err)
	s.Len(transactions, 3)
	for i := 1; i < len(transactions); i++ {
		s.False(transactions[i].Date.After(transactions[i-1].Date))
	}
}

// Test GetByAccountID pagination
func (s *TransactionRepositorySuite) TestGetByAccountID() {
	now := time.Now()
	for i := 0; i < 5; i++ {
		transaction := s.newTransaction("Purchase", now.AddDate(0, 0, -i))
		s.NoError(s.repo.Create(&transaction))
	}

	page, total, err := s.repo.GetByAccountID(s.testAccount.ID, 0, 2)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(page, 2)

	page, total, err = s.repo.GetByAccountID(s.testAccount.ID, 4, 2)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(page, 1)
}

// Test GetByID functionality
func (s *TransactionRepositorySuite) TestGetByID() {
	transaction := s.newTransaction("Coffee", time.Now())
	s.NoError(s.repo.Create(&transaction))

	found, err := s.repo.GetByID(transaction.ID)
	s.NoError(err)
	s.Equal(transaction.ID, found.ID)
	s.True(transaction.Amount.Equal(found.Amount))

	_, err = s.repo.GetByID(uuid.New())
	s.ErrorIs(err, ErrTransactionNotFound)
}
