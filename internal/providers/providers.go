package providers

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nicktebbo/FinTrack/internal/models"
)

var (
	// ErrNotConfigured means the provider's API credentials are absent from
	// the environment. Checked before any network call goes out.
	ErrNotConfigured = errors.New("provider credentials not configured")

	// ErrAuthRejected means the stored access credential was rejected or has
	// expired; the connection needs to be re-linked.
	ErrAuthRejected = errors.New("provider rejected the access credential")

	// ErrUnavailable covers network failures, timeouts, and provider 5xx
	// responses. Safe to retry on a later manual sync.
	ErrUnavailable = errors.New("provider unavailable")

	// ErrUnsupportedProvider is returned by the factory for provider
	// identifiers outside the known set.
	ErrUnsupportedProvider = errors.New("unsupported financial data provider")
)

// Credential is the opaque access credential stored on a financial
// connection. For Plaid, AccessToken is the item access token and ItemID the
// Plaid item id. For Basiq, AccessToken is the connection id and ItemID the
// Basiq user id the connection belongs to.
type Credential struct {
	AccessToken string
	ItemID      string
}

// ExternalAccount is a provider account mapped into the canonical shape.
type ExternalAccount struct {
	ProviderAccountID string
	Name              string
	AccountType       string
	Balance           decimal.Decimal
	AccountNumber     string
	Institution       string
}

// ExternalTransaction is a provider transaction mapped into the canonical
// shape. Amount is always a magnitude; TransactionType carries the direction.
type ExternalTransaction struct {
	ProviderAccountID     string
	ProviderTransactionID string
	Description           string
	Amount                decimal.Decimal
	Category              string
	Date                  time.Time
	TransactionType       string
	MerchantName          string
	Location              string
}

// LinkResult is the outcome of finalizing a Plaid link flow.
type LinkResult struct {
	AccessToken string
	ItemID      string
}

// ConnectionResult is the outcome of creating a Basiq connection. Basiq uses
// the connection id as the access credential for subsequent calls.
type ConnectionResult struct {
	ConnectionID string
}

// Adapter is the contract every aggregation provider implements: translate
// the provider's account and transaction representations into the canonical
// shape. Adapters are stateless beyond credentials and client handles, and
// perform a single attempt per call bounded by the caller's context.
type Adapter interface {
	Name() string
	FetchAccounts(ctx context.Context, cred Credential) ([]ExternalAccount, error)
	FetchTransactions(ctx context.Context, cred Credential, startDate, endDate time.Time) ([]ExternalTransaction, error)
}

// splitSignedAmount converts a provider's signed amount into the canonical
// magnitude-plus-type pair: a negative provider amount is an expense, anything
// else is income. The stored amount is always the absolute value.
func splitSignedAmount(signed decimal.Decimal) (decimal.Decimal, string) {
	if signed.IsNegative() {
		return signed.Abs(), models.TransactionTypeExpense
	}
	return signed, models.TransactionTypeIncome
}
