package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/models"
	"github.com/nicktebbo/FinTrack/internal/repositories"
)

type connectionService struct {
	connectionRepo repositories.ConnectionRepositoryInterface
	plaid          PlaidLinkerInterface
	basiq          BasiqLinkerInterface
	metrics        MetricsRecorderInterface
}

// NewConnectionService creates the connection linking service
func NewConnectionService(
	connectionRepo repositories.ConnectionRepositoryInterface,
	plaid PlaidLinkerInterface,
	basiq BasiqLinkerInterface,
	metrics MetricsRecorderInterface,
) ConnectionServiceInterface {
	return &connectionService{
		connectionRepo: connectionRepo,
		plaid:          plaid,
		basiq:          basiq,
		metrics:        metrics,
	}
}

// CreateLinkToken starts a Plaid Link flow for the user
func (s *connectionService) CreateLinkToken(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := s.plaid.CreateLinkToken(ctx, userID.String())
	if err != nil {
		slog.Warn("failed to create link token",
			"user_id", userID,
			"error", err)
		return "", err
	}
	return token, nil
}

// ExchangePublicToken finalizes a Plaid Link flow and stores the resulting
// access credential as a financial connection
func (s *connectionService) ExchangePublicToken(ctx context.Context, userID uuid.UUID, req *dto.ExchangePublicTokenRequest) (*models.FinancialConnection, error) {
	result, err := s.plaid.ExchangePublicToken(ctx, req.PublicToken)
	if err != nil {
		slog.Warn("public token exchange failed",
			"user_id", userID,
			"error", err)
		return nil, err
	}

	connection := &models.FinancialConnection{
		UserID:          userID,
		Provider:        models.ProviderPlaid,
		AccessToken:     result.AccessToken,
		ItemID:          result.ItemID,
		InstitutionID:   req.InstitutionID,
		InstitutionName: req.InstitutionName,
		IsActive:        true,
	}

	if err := s.connectionRepo.Create(connection); err != nil {
		return nil, fmt.Errorf("failed to store financial connection: %w", err)
	}

	s.metrics.IncrementCounter("connection.linked", map[string]string{"provider": models.ProviderPlaid})

	slog.Info("financial connection linked",
		"user_id", userID,
		"connection_id", connection.ID,
		"provider", models.ProviderPlaid)

	return connection, nil
}

// ConnectBasiq creates a Basiq connection from institution login credentials
// and stores the resulting connection id as the access credential. The login
// credentials pass straight through to the provider.
func (s *connectionService) ConnectBasiq(ctx context.Context, userID uuid.UUID, req *dto.BasiqConnectRequest) (*models.FinancialConnection, error) {
	result, err := s.basiq.CreateConnection(ctx, req.BasiqUserID, req.InstitutionID, req.LoginCredentials)
	if err != nil {
		slog.Warn("basiq connection failed",
			"user_id", userID,
			"institution_id", req.InstitutionID,
			"error", err)
		return nil, err
	}

	connection := &models.FinancialConnection{
		UserID:          userID,
		Provider:        models.ProviderBasiq,
		AccessToken:     result.ConnectionID,
		ItemID:          req.BasiqUserID,
		InstitutionID:   req.InstitutionID,
		InstitutionName: req.InstitutionName,
		IsActive:        true,
	}

	if err := s.connectionRepo.Create(connection); err != nil {
		return nil, fmt.Errorf("failed to store financial connection: %w", err)
	}

	s.metrics.IncrementCounter("connection.linked", map[string]string{"provider": models.ProviderBasiq})

	slog.Info("financial connection linked",
		"user_id", userID,
		"connection_id", connection.ID,
		"provider", models.ProviderBasiq)

	return connection, nil
}

// GetUserConnections lists the user's connections, inactive included
func (s *connectionService) GetUserConnections(userID uuid.UUID) ([]models.FinancialConnection, error) {
	connections, err := s.connectionRepo.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get financial connections: %w", err)
	}
	return connections, nil
}

// DeactivateConnection soft-deletes a connection the user owns
func (s *connectionService) DeactivateConnection(userID, connectionID uuid.UUID) error {
	connection, err := s.connectionRepo.GetByID(connectionID)
	if err != nil {
		return err
	}

	if connection.UserID != userID {
		return repositories.ErrConnectionNotFound
	}

	if err := s.connectionRepo.Deactivate(connectionID); err != nil {
		return err
	}

	slog.Info("financial connection deactivated",
		"user_id", userID,
		"connection_id", connectionID)

	return nil
}
