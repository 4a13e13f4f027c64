package providers

import (
	"fmt"

	"github.com/nicktebbo/FinTrack/internal/config"
	"github.com/nicktebbo/FinTrack/internal/models"
)

// Factory resolves a provider identifier to the adapter responsible for it.
// Pure selection logic: the switch is exhaustive over the known providers and
// anything else fails with ErrUnsupportedProvider.
type Factory struct {
	plaid *PlaidClient
	basiq *BasiqClient
}

// NewFactory constructs the provider clients from configuration
func NewFactory(cfg config.ProvidersConfig) *Factory {
	return &Factory{
		plaid: NewPlaidClient(cfg.Plaid, cfg.RequestTimeout),
		basiq: NewBasiqClient(cfg.Basiq, cfg.RequestTimeout),
	}
}

// Resolve returns the adapter for the given provider identifier
func (f *Factory) Resolve(provider string) (Adapter, error) {
	switch provider {
	case models.ProviderPlaid:
		return f.plaid, nil
	case models.ProviderBasiq:
		return f.basiq, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProvider, provider)
	}
}

// Plaid returns the Plaid client for link-flow operations that are specific
// to that provider
func (f *Factory) Plaid() *PlaidClient {
	return f.plaid
}

// Basiq returns the Basiq client for connection-creation operations that are
// specific to that provider
func (f *Factory) Basiq() *BasiqClient {
	return f.basiq
}
