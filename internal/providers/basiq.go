package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/config"
	"github.com/nicktebbo/FinTrack/internal/models"
)

const (
	basiqBaseURL    = "https://au-api.basiq.io"
	basiqDateLayout = "2006-01-02"
)

// BasiqClient talks to the Basiq API for Australian banks. Basiq has no
// public-token exchange; a connection is created directly from institution
// login credentials, and the resulting connection id doubles as the access
// credential for subsequent calls.
type BasiqClient struct {
	cfg        config.BasiqConfig
	baseURL    string
	httpClient *http.Client
}

// NewBasiqClient creates a Basiq client
func NewBasiqClient(cfg config.BasiqConfig, timeout time.Duration) *BasiqClient {
	return &BasiqClient{
		cfg:        cfg,
		baseURL:    basiqBaseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name returns the provider identifier
func (c *BasiqClient) Name() string {
	return models.ProviderBasiq
}

func (c *BasiqClient) checkConfigured() error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("basiq: %w: BASIQ_API_KEY must be set", ErrNotConfigured)
	}
	return nil
}

// CreateConnection links an institution for a Basiq user and returns the
// connection id, which callers store as the connection's access credential.
func (c *BasiqClient) CreateConnection(ctx context.Context, basiqUserID, institutionID string, loginCredentials map[string]string) (*ConnectionResult, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}

	request := map[string]interface{}{
		"institution":      map[string]string{"id": institutionID},
		"loginCredentials": loginCredentials,
	}

	var response struct {
		ID string `json:"id"`
	}

	path := fmt.Sprintf("/users/%s/connections", url.PathEscape(basiqUserID))
	if err := c.do(ctx, http.MethodPost, path, nil, request, &response); err != nil {
		return nil, err
	}

	return &ConnectionResult{ConnectionID: response.ID}, nil
}

type basiqAccount struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	AccountNo   string `json:"accountNo"`
	Class       string `json:"class"`
	Type        string `json:"type"`
	Balance     string `json:"balance"`
	Institution struct {
		ShortName string `json:"shortName"`
	} `json:"institution"`
}

// FetchAccounts lists the connection's accounts and maps each into the
// canonical account shape.
func (c *BasiqClient) FetchAccounts(ctx context.Context, cred Credential) ([]ExternalAccount, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("filter[connection.id]", cred.AccessToken)

	var response struct {
		Data []basiqAccount `json:"data"`
	}

	path := fmt.Sprintf("/users/%s/accounts", url.PathEscape(cred.ItemID))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &response); err != nil {
		return nil, err
	}

	accounts := make([]ExternalAccount, 0, len(response.Data))
	for _, account := range response.Data {
		balance, err := decimal.NewFromString(account.Balance)
		if err != nil {
			return nil, fmt.Errorf("basiq: invalid account balance %q: %w", account.Balance, err)
		}

		name := account.DisplayName
		if name == "" {
			name = account.AccountNo
		}

		accounts = append(accounts, ExternalAccount{
			ProviderAccountID: account.ID,
			Name:              name,
			AccountType:       mapBasiqAccountType(account.Class, account.Type),
			Balance:           balance,
			AccountNumber:     account.AccountNo,
			Institution:       account.Institution.ShortName,
		})
	}

	return accounts, nil
}

type basiqTransaction struct {
	ID          string `json:"id"`
	Account     string `json:"account"`
	Description string `json:"description"`
	Amount      string `json:"amount"`
	Class       string `json:"class"`
	PostDate    string `json:"postDate"`
}

// FetchTransactions lists transactions in the date range and maps each into
// the canonical transaction shape.
func (c *BasiqClient) FetchTransactions(ctx context.Context, cred Credential, startDate, endDate time.Time) ([]ExternalTransaction, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("filter[connection.id]", cred.AccessToken)
	query.Set("filter[postDate.gte]", startDate.Format(basiqDateLayout))
	query.Set("filter[postDate.lte]", endDate.Format(basiqDateLayout))

	var response struct {
		Data []basiqTransaction `json:"data"`
	}

	path := fmt.Sprintf("/users/%s/transactions", url.PathEscape(cred.ItemID))
	if err := c.do(ctx, http.MethodGet, path, query, nil, &response); err != nil {
		return nil, err
	}

	transactions := make([]ExternalTransaction, 0, len(response.Data))
	for _, transaction := range response.Data {
		signed, err := decimal.NewFromString(transaction.Amount)
		if err != nil {
			return nil, fmt.Errorf("basiq: invalid transaction amount %q: %w", transaction.Amount, err)
		}

		date, err := parseBasiqDate(transaction.PostDate)
		if err != nil {
			return nil, err
		}

		amount, transactionType := splitSignedAmount(signed)

		category := transaction.Class
		if category == "" {
			category = models.DefaultCategory
		}

		transactions = append(transactions, ExternalTransaction{
			ProviderAccountID:     transaction.Account,
			ProviderTransactionID: transaction.ID,
			Description:           transaction.Description,
			Amount:                amount,
			Category:              category,
			Date:                  date,
			TransactionType:       transactionType,
		})
	}

	return transactions, nil
}

// parseBasiqDate accepts both the date-only and RFC 3339 post date forms
// Basiq has used across API versions.
func parseBasiqDate(value string) (time.Time, error) {
	if date, err := time.Parse(basiqDateLayout, value); err == nil {
		return date, nil
	}
	if date, err := time.Parse(time.RFC3339, value); err == nil {
		return date, nil
	}
	return time.Time{}, fmt.Errorf("basiq: invalid post date %q", value)
}

// mapBasiqAccountType maps a Basiq class/type pair into the canonical account
// type. Unrecognized combinations default to checking.
func mapBasiqAccountType(accountClass, accountType string) string {
	if accountClass == "investment" {
		return models.AccountTypeInvestment
	}

	switch accountType {
	case "401k", "ira", "roth":
		return models.AccountTypeRetirement
	}

	if accountClass == "bank" {
		switch accountType {
		case "savings":
			return models.AccountTypeSavings
		case "transaction":
			return models.AccountTypeChecking
		}
	}

	return models.AccountTypeChecking
}

func (c *BasiqClient) do(ctx context.Context, method, path string, query url.Values, request interface{}, response interface{}) error {
	var body io.Reader
	if request != nil {
		encoded, err := json.Marshal(request)
		if err != nil {
			return fmt.Errorf("basiq: failed to encode request: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return fmt.Errorf("basiq: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if request != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("basiq: %s: %w: %v", path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("basiq: %s: %w: %v", path, ErrUnavailable, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return c.classifyError(path, resp.StatusCode)
	}

	if err := json.Unmarshal(payload, response); err != nil {
		return fmt.Errorf("basiq: %s: failed to decode response: %w", path, err)
	}

	return nil
}

func (c *BasiqClient) classifyError(path string, status int) error {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return fmt.Errorf("basiq: %s: %w (status %d)", path, ErrAuthRejected, status)
	case status >= http.StatusInternalServerError:
		return fmt.Errorf("basiq: %s: %w (status %d)", path, ErrUnavailable, status)
	default:
		return fmt.Errorf("basiq: %s: request failed (status %d)", path, status)
	}
}
