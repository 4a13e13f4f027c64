package providers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/nicktebbo/FinTrack/internal/config"
	"github.com/nicktebbo/FinTrack/internal/models"
)

// BasiqClientSuite defines the test suite for BasiqClient
type BasiqClientSuite struct {
	suite.Suite
	client *BasiqClient
	cred   Credential
}

// SetupTest runs before each test in the suite
func (s *BasiqClientSuite) SetupTest() {
	s.client = NewBasiqClient(config.BasiqConfig{
		APIKey:      "api-key",
		Environment: "sandbox",
	}, 5*time.Second)
	// AccessToken holds the connection id, ItemID the Basiq user id
	s.cred = Credential{AccessToken: "conn-1", ItemID: "basiq-user-1"}
}

// TestBasiqClientSuite runs the test suite
func TestBasiqClientSuite(t *testing.T) {
	suite.Run(t, new(BasiqClientSuite))
}

func (s *BasiqClientSuite) serve(handler http.HandlerFunc) {
	server := httptest.NewServer(handler)
	s.T().Cleanup(server.Close)
	s.client.baseURL = server.URL
}

func (s *BasiqClientSuite) TestFetchAccounts() {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/users/basiq-user-1/accounts", r.URL.Path)
		s.Equal("conn-1", r.URL.Query().Get("filter[connection.id]"))
		s.Equal("Bearer api-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "acc-1", "displayName": "Everyday", "accountNo": "123-456", "class": "bank", "type": "transaction", "balance": "1500.25", "institution": {"shortName": "ANZ"}},
				{"id": "acc-2", "displayName": "", "accountNo": "789-012", "class": "bank", "type": "savings", "balance": "10000.00", "institution": {"shortName": "ANZ"}},
				{"id": "acc-3", "displayName": "Super", "accountNo": "345-678", "class": "investment", "type": "super", "balance": "50000.00", "institution": {"shortName": "ANZ"}}
			]
		}`))
	})

	accounts, err := s.client.FetchAccounts(context.Background(), s.cred)
	s.NoError(err)
	s.Len(accounts, 3)

	s.Equal("Everyday", accounts[0].Name)
	s.Equal(models.AccountTypeChecking, accounts[0].AccountType)
	s.True(decimal.RequireFromString("1500.25").Equal(accounts[0].Balance))
	s.Equal("ANZ", accounts[0].Institution)

	// Missing display name falls back to the account number
	s.Equal("789-012", accounts[1].Name)
	s.Equal(models.AccountTypeSavings, accounts[1].AccountType)

	s.Equal(models.AccountTypeInvestment, accounts[2].AccountType)
}

func (s *BasiqClientSuite) TestFetchAccounts_BadBalance() {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data": [{"id": "acc-1", "displayName": "Everyday", "class": "bank", "type": "transaction", "balance": "not-a-number"}]}`))
	})

	_, err := s.client.FetchAccounts(context.Background(), s.cred)
	s.Error(err)
	s.Contains(err.Error(), "invalid account balance")
}

func (s *BasiqClientSuite) TestFetchTransactions() {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/users/basiq-user-1/transactions", r.URL.Path)
		s.Equal("conn-1", r.URL.Query().Get("filter[connection.id]"))
		s.Equal("2025-03-01", r.URL.Query().Get("filter[postDate.gte]"))
		s.Equal("2025-03-31", r.URL.Query().Get("filter[postDate.lte]"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "txn-1", "account": "acc-1", "description": "WOOLWORTHS", "amount": "-85.20", "class": "payment", "postDate": "2025-03-10"},
				{"id": "txn-2", "account": "acc-1", "description": "SALARY", "amount": "3200.00", "class": "", "postDate": "2025-03-12T00:00:00Z"}
			]
		}`))
	})

	transactions, err := s.client.FetchTransactions(context.Background(), s.cred,
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	s.NoError(err)
	s.Len(transactions, 2)

	s.Equal(models.TransactionTypeExpense, transactions[0].TransactionType)
	s.True(decimal.RequireFromString("85.20").Equal(transactions[0].Amount))
	s.Equal("payment", transactions[0].Category)
	s.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), transactions[0].Date)

	// RFC 3339 post date and empty class both handled
	s.Equal(models.TransactionTypeIncome, transactions[1].TransactionType)
	s.Equal(models.DefaultCategory, transactions[1].Category)
	s.Equal(time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), transactions[1].Date)
}

func (s *BasiqClientSuite) TestCreateConnection() {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		s.Equal("/users/basiq-user-1/connections", r.URL.Path)
		s.Equal(http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte(`{"id": "conn-new"}`))
	})

	result, err := s.client.CreateConnection(context.Background(), "basiq-user-1", "AU00000", map[string]string{
		"loginId":  "user",
		"password": "pass",
	})
	s.NoError(err)
	s.Equal("conn-new", result.ConnectionID)
}

func (s *BasiqClientSuite) TestNotConfigured() {
	client := NewBasiqClient(config.BasiqConfig{}, 5*time.Second)

	_, err := client.FetchAccounts(context.Background(), s.cred)
	s.ErrorIs(err, ErrNotConfigured)
}

func (s *BasiqClientSuite) TestAuthRejected() {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := s.client.FetchAccounts(context.Background(), s.cred)
	s.ErrorIs(err, ErrAuthRejected)
}

func (s *BasiqClientSuite) TestUnavailable() {
	s.serve(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := s.client.FetchAccounts(context.Background(), s.cred)
	s.ErrorIs(err, ErrUnavailable)
}

// TestMapBasiqAccountType covers the class/type mapping table
func TestMapBasiqAccountType(t *testing.T) {
	tests := []struct {
		name         string
		accountClass string
		accountType  string
		want         string
	}{
		{"investment class wins", "investment", "super", models.AccountTypeInvestment},
		{"retirement 401k", "bank", "401k", models.AccountTypeRetirement},
		{"retirement ira", "other", "ira", models.AccountTypeRetirement},
		{"bank transaction", "bank", "transaction", models.AccountTypeChecking},
		{"bank savings", "bank", "savings", models.AccountTypeSavings},
		{"unknown defaults", "loan", "mortgage", models.AccountTypeChecking},
		{"empty defaults", "", "", models.AccountTypeChecking},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mapBasiqAccountType(tt.accountClass, tt.accountType); got != tt.want {
				t.Errorf("mapBasiqAccountType(%q, %q) = %q, want %q", tt.accountClass, tt.accountType, got, tt.want)
			}
		})
	}
}
