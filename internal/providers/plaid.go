package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/config"
	"github.com/nicktebbo/FinTrack/internal/models"
)

const (
	plaidSandboxURL     = "https://sandbox.plaid.com"
	plaidDevelopmentURL = "https://development.plaid.com"
	plaidProductionURL  = "https://production.plaid.com"

	plaidDateLayout = "2006-01-02"
	plaidClientName = "FinTrack"
)

// PlaidClient talks to the Plaid API for US banks and investment accounts.
type PlaidClient struct {
	cfg        config.PlaidConfig
	baseURL    string
	httpClient *http.Client
}

// NewPlaidClient creates a Plaid client for the configured environment.
// Unknown environments fall back to sandbox.
func NewPlaidClient(cfg config.PlaidConfig, timeout time.Duration) *PlaidClient {
	baseURL := plaidSandboxURL
	switch cfg.Environment {
	case "production":
		baseURL = plaidProductionURL
	case "development":
		baseURL = plaidDevelopmentURL
	}

	return &PlaidClient{
		cfg:        cfg,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Name returns the provider identifier
func (c *PlaidClient) Name() string {
	return models.ProviderPlaid
}

func (c *PlaidClient) checkConfigured() error {
	if c.cfg.ClientID == "" || c.cfg.Secret == "" {
		return fmt.Errorf("plaid: %w: PLAID_CLIENT_ID and PLAID_SECRET_KEY must be set", ErrNotConfigured)
	}
	return nil
}

// CreateLinkToken starts the Plaid Link flow for a user and returns the
// short-lived link token the client hands to the Plaid widget.
func (c *PlaidClient) CreateLinkToken(ctx context.Context, userID string) (string, error) {
	if err := c.checkConfigured(); err != nil {
		return "", err
	}

	request := map[string]interface{}{
		"client_id":     c.cfg.ClientID,
		"secret":        c.cfg.Secret,
		"client_name":   plaidClientName,
		"language":      "en",
		"country_codes": []string{"US"},
		"user":          map[string]string{"client_user_id": userID},
		"products":      []string{"transactions", "investments", "assets"},
	}

	var response struct {
		LinkToken string `json:"link_token"`
	}

	if err := c.post(ctx, "/link/token/create", request, &response); err != nil {
		return "", err
	}

	return response.LinkToken, nil
}

// ExchangePublicToken finalizes a new link: it trades the public token from
// the Link widget for a durable access token and item id.
func (c *PlaidClient) ExchangePublicToken(ctx context.Context, publicToken string) (*LinkResult, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}

	request := map[string]interface{}{
		"client_id":    c.cfg.ClientID,
		"secret":       c.cfg.Secret,
		"public_token": publicToken,
	}

	var response struct {
		AccessToken string `json:"access_token"`
		ItemID      string `json:"item_id"`
	}

	if err := c.post(ctx, "/item/public_token/exchange", request, &response); err != nil {
		return nil, err
	}

	return &LinkResult{
		AccessToken: response.AccessToken,
		ItemID:      response.ItemID,
	}, nil
}

type plaidBalances struct {
	Current *float64 `json:"current"`
}

type plaidAccount struct {
	AccountID string        `json:"account_id"`
	Name      string        `json:"name"`
	Type      string        `json:"type"`
	Subtype   string        `json:"subtype"`
	Mask      string        `json:"mask"`
	Balances  plaidBalances `json:"balances"`
}

// FetchAccounts lists the item's accounts and maps each into the canonical
// account shape.
func (c *PlaidClient) FetchAccounts(ctx context.Context, cred Credential) ([]ExternalAccount, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}

	request := map[string]interface{}{
		"client_id":    c.cfg.ClientID,
		"secret":       c.cfg.Secret,
		"access_token": cred.AccessToken,
	}

	var response struct {
		Accounts []plaidAccount `json:"accounts"`
		Item     struct {
			InstitutionID string `json:"institution_id"`
		} `json:"item"`
	}

	if err := c.post(ctx, "/accounts/get", request, &response); err != nil {
		return nil, err
	}

	accounts := make([]ExternalAccount, 0, len(response.Accounts))
	for _, account := range response.Accounts {
		balance := decimal.Zero
		if account.Balances.Current != nil {
			balance = decimal.NewFromFloat(*account.Balances.Current)
		}

		accounts = append(accounts, ExternalAccount{
			ProviderAccountID: account.AccountID,
			Name:              account.Name,
			AccountType:       mapPlaidAccountType(account.Type, account.Subtype),
			Balance:           balance,
			AccountNumber:     account.Mask,
			Institution:       response.Item.InstitutionID,
		})
	}

	return accounts, nil
}

type plaidTransaction struct {
	TransactionID string   `json:"transaction_id"`
	AccountID     string   `json:"account_id"`
	Name          string   `json:"name"`
	Amount        float64  `json:"amount"`
	Category      []string `json:"category"`
	Date          string   `json:"date"`
	MerchantName  string   `json:"merchant_name"`
	Location      struct {
		City   string `json:"city"`
		Region string `json:"region"`
	} `json:"location"`
}

// FetchTransactions lists transactions in the date range and maps each into
// the canonical transaction shape.
func (c *PlaidClient) FetchTransactions(ctx context.Context, cred Credential, startDate, endDate time.Time) ([]ExternalTransaction, error) {
	if err := c.checkConfigured(); err != nil {
		return nil, err
	}

	request := map[string]interface{}{
		"client_id":    c.cfg.ClientID,
		"secret":       c.cfg.Secret,
		"access_token": cred.AccessToken,
		"start_date":   startDate.Format(plaidDateLayout),
		"end_date":     endDate.Format(plaidDateLayout),
	}

	var response struct {
		Transactions []plaidTransaction `json:"transactions"`
	}

	if err := c.post(ctx, "/transactions/get", request, &response); err != nil {
		return nil, err
	}

	transactions := make([]ExternalTransaction, 0, len(response.Transactions))
	for _, transaction := range response.Transactions {
		date, err := time.Parse(plaidDateLayout, transaction.Date)
		if err != nil {
			return nil, fmt.Errorf("plaid: invalid transaction date %q: %w", transaction.Date, err)
		}

		amount, transactionType := splitSignedAmount(decimal.NewFromFloat(transaction.Amount))

		category := models.DefaultCategory
		if len(transaction.Category) > 0 {
			category = transaction.Category[0]
		}

		location := transaction.Location.City
		if transaction.Location.Region != "" {
			if location != "" {
				location += ", "
			}
			location += transaction.Location.Region
		}

		transactions = append(transactions, ExternalTransaction{
			ProviderAccountID:     transaction.AccountID,
			ProviderTransactionID: transaction.TransactionID,
			Description:           transaction.Name,
			Amount:                amount,
			Category:              category,
			Date:                  date,
			TransactionType:       transactionType,
			MerchantName:          transaction.MerchantName,
			Location:              location,
		})
	}

	return transactions, nil
}

// mapPlaidAccountType maps a Plaid type/subtype pair into the canonical
// account type. Unrecognized combinations default to checking.
func mapPlaidAccountType(accountType, subtype string) string {
	if accountType == "investment" {
		return models.AccountTypeInvestment
	}

	switch subtype {
	case "401k", "ira", "roth":
		return models.AccountTypeRetirement
	}

	if accountType == "depository" {
		switch subtype {
		case "checking":
			return models.AccountTypeChecking
		case "savings":
			return models.AccountTypeSavings
		}
	}

	return models.AccountTypeChecking
}

type plaidAPIError struct {
	ErrorType    string `json:"error_type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

func (c *PlaidClient) post(ctx context.Context, path string, request interface{}, response interface{}) error {
	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("plaid: failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("plaid: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("plaid: %s: %w: %v", path, ErrUnavailable, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("plaid: %s: %w: %v", path, ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return c.classifyError(path, resp.StatusCode, payload)
	}

	if err := json.Unmarshal(payload, response); err != nil {
		return fmt.Errorf("plaid: %s: failed to decode response: %w", path, err)
	}

	return nil
}

func (c *PlaidClient) classifyError(path string, status int, payload []byte) error {
	var apiErr plaidAPIError
	_ = json.Unmarshal(payload, &apiErr)

	switch apiErr.ErrorCode {
	case "INVALID_ACCESS_TOKEN", "ITEM_LOGIN_REQUIRED", "INVALID_API_KEYS":
		return fmt.Errorf("plaid: %s: %w: %s", path, ErrAuthRejected, apiErr.ErrorMessage)
	}

	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		return fmt.Errorf("plaid: %s: %w (status %d)", path, ErrAuthRejected, status)
	}

	if status >= http.StatusInternalServerError {
		return fmt.Errorf("plaid: %s: %w (status %d)", path, ErrUnavailable, status)
	}

	if apiErr.ErrorMessage != "" {
		return fmt.Errorf("plaid: %s: request failed (status %d): %s", path, status, apiErr.ErrorMessage)
	}
	return fmt.Errorf("plaid: %s: request failed (status %d)", path, status)
}
