package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/providers"
	"github.com/nicktebbo/FinTrack/internal/repositories"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ConnectionHandler handles financial connection HTTP requests
type ConnectionHandler struct {
	connectionService services.ConnectionServiceInterface
}

// NewConnectionHandler creates a new connection handler
func NewConnectionHandler(connectionService services.ConnectionServiceInterface) *ConnectionHandler {
	return &ConnectionHandler{connectionService: connectionService}
}

// CreateLinkToken starts the Plaid Link flow
// @Summary Create Plaid link token
// @Description Create a short-lived token that the frontend uses to open Plaid Link
// @Tags Connections
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.LinkTokenResponse "Link token"
// @Failure 500 {object} errors.ErrorResponse "PROVIDER_003 - Provider not configured"
// @Failure 502 {object} errors.ErrorResponse "PROVIDER_004 - Provider unavailable"
// @Router /connections/plaid/link-token [post]
func (h *ConnectionHandler) CreateLinkToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	linkToken, err := h.connectionService.CreateLinkToken(c.Request().Context(), userID)
	if err != nil {
		return sendProviderError(c, err)
	}

	return c.JSON(http.StatusOK, dto.LinkTokenResponse{LinkToken: linkToken})
}

// ExchangePublicToken finalizes the Plaid Link flow and stores the connection
// @Summary Exchange Plaid public token
// @Description Exchange the public token from a completed Plaid Link session for a permanent access token and store the connection
// @Tags Connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ExchangePublicTokenRequest true "Public token and institution details"
// @Success 201 {object} dto.ConnectionResponse "Stored connection"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 422 {object} errors.ErrorResponse "PROVIDER_002 - Provider rejected the token"
// @Failure 502 {object} errors.ErrorResponse "PROVIDER_004 - Provider unavailable"
// @Router /connections/plaid/exchange-token [post]
func (h *ConnectionHandler) ExchangePublicToken(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.ExchangePublicTokenRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	connection, err := h.connectionService.ExchangePublicToken(c.Request().Context(), userID, &req)
	if err != nil {
		return sendProviderError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ConnectionResponse{Connection: connection})
}

// ConnectBasiq creates a Basiq connection from institution login credentials
// @Summary Connect Basiq institution
// @Description Create a Basiq connection. Login credentials pass straight through to Basiq and are never stored.
// @Tags Connections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BasiqConnectRequest true "Basiq user, institution, and login credentials"
// @Success 201 {object} dto.ConnectionResponse "Stored connection"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 422 {object} errors.ErrorResponse "PROVIDER_002 - Provider rejected the credentials"
// @Failure 502 {object} errors.ErrorResponse "PROVIDER_004 - Provider unavailable"
// @Router /connections/basiq/connect [post]
func (h *ConnectionHandler) ConnectBasiq(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.BasiqConnectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	connection, err := h.connectionService.ConnectBasiq(c.Request().Context(), userID, &req)
	if err != nil {
		return sendProviderError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.ConnectionResponse{Connection: connection})
}

// GetConnections lists the authenticated user's connections
// @Summary List connections
// @Description Retrieve all financial connections belonging to the authenticated user. Access tokens are never included.
// @Tags Connections
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ConnectionListResponse "User connections"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /connections [get]
func (h *ConnectionHandler) GetConnections(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	connections, err := h.connectionService.GetUserConnections(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ConnectionListResponse{
		Connections: connections,
		Total:       len(connections),
	})
}

// DeleteConnection deactivates a connection
// @Summary Deactivate connection
// @Description Soft-delete a connection. Its accounts and transactions remain stored but the connection drops out of future sync passes.
// @Tags Connections
// @Security BearerAuth
// @Param id path string true "Connection ID (UUID)"
// @Success 204 "Connection deactivated"
// @Failure 404 {object} errors.ErrorResponse "PROVIDER_005 - Connection not found"
// @Router /connections/{id} [delete]
func (h *ConnectionHandler) DeleteConnection(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	connectionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid connection ID"))
	}

	if err := h.connectionService.DeactivateConnection(userID, connectionID); err != nil {
		if err == repositories.ErrConnectionNotFound {
			return SendError(c, errors.ConnectionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// sendProviderError maps provider failures from the link flows to their
// standardized error codes
func sendProviderError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, providers.ErrNotConfigured):
		return SendError(c, errors.ProviderNotConfigured)
	case stderrors.Is(err, providers.ErrAuthRejected):
		return SendError(c, errors.ProviderAuthRejected)
	case stderrors.Is(err, providers.ErrUnavailable):
		return SendError(c, errors.ProviderUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
