package providers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nicktebbo/FinTrack/internal/config"
	"github.com/nicktebbo/FinTrack/internal/models"
)

func newTestFactory() *Factory {
	return NewFactory(config.ProvidersConfig{
		Plaid:          config.PlaidConfig{ClientID: "client-id", Secret: "secret"},
		Basiq:          config.BasiqConfig{APIKey: "api-key"},
		RequestTimeout: 5 * time.Second,
	})
}

func TestFactoryResolve(t *testing.T) {
	factory := newTestFactory()

	plaid, err := factory.Resolve(models.ProviderPlaid)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderPlaid, plaid.Name())

	basiq, err := factory.Resolve(models.ProviderBasiq)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderBasiq, basiq.Name())
}

func TestFactoryResolve_Unsupported(t *testing.T) {
	factory := newTestFactory()

	// Anything outside the known provider set fails, including the manual
	// pseudo-provider that never syncs.
	for _, provider := range []string{"finicity", "manual", "", "PLAID"} {
		adapter, err := factory.Resolve(provider)
		assert.Nil(t, adapter)
		assert.ErrorIs(t, err, ErrUnsupportedProvider)
	}
}

func TestSplitSignedAmount(t *testing.T) {
	tests := []struct {
		name       string
		signed     string
		wantAmount string
		wantType   string
	}{
		{"negative is expense", "-45.99", "45.99", models.TransactionTypeExpense},
		{"positive is income", "2000.00", "2000.00", models.TransactionTypeIncome},
		{"zero is income", "0", "0", models.TransactionTypeIncome},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, transactionType := splitSignedAmount(decimal.RequireFromString(tt.signed))
			assert.True(t, decimal.RequireFromString(tt.wantAmount).Equal(amount))
			assert.Equal(t, tt.wantType, transactionType)
		})
	}
}
