package handlers

import (
	"net/http"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	accountService services.AccountServiceInterface
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accountService services.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount creates a manual account for the authenticated user
// @Summary Create manual account
// @Description Create a manually tracked account that is not backed by a provider connection
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.AccountResponse "Created account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [post]
func (h *AccountHandler) CreateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountService.CreateAccount(userID, &req)
	if err != nil {
		if err == services.ErrInvalidAmount {
			return SendError(c, errors.ValidationInvalidAmount)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.AccountResponse{Account: account})
}

// GetAccounts lists the authenticated user's accounts
// @Summary List accounts
// @Description Retrieve all accounts belonging to the authenticated user
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.AccountListResponse "User accounts"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts [get]
func (h *AccountHandler) GetAccounts(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accounts, err := h.accountService.GetUserAccounts(userID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountListResponse{
		Accounts: accounts,
		Total:    len(accounts),
	})
}

// GetAccount retrieves a single account by ID
// @Summary Get account
// @Description Retrieve a single account owned by the authenticated user
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Success 200 {object} dto.AccountResponse "Account details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid account ID"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [get]
func (h *AccountHandler) GetAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountService.GetAccountByID(userID, accountID)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.AccountResponse{Account: account})
}

// UpdateAccount updates an account's details
// @Summary Update account
// @Description Update the name, type, balance, or institution of an owned account. Absent fields are left unchanged.
// @Tags Accounts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param request body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.AccountResponse "Updated account"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request payload"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	var req dto.UpdateAccountRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	account, err := h.accountService.UpdateAccount(userID, accountID, &req)
	if err != nil {
		switch err {
		case services.ErrNotFound:
			return SendError(c, errors.AccountNotFound)
		case services.ErrInvalidAmount:
			return SendError(c, errors.ValidationInvalidAmount)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.AccountResponse{Account: account})
}

// DeleteAccount deactivates an account
// @Summary Deactivate account
// @Description Soft-delete an account. The account and its history remain stored but drop out of listings and dashboard aggregates.
// @Tags Accounts
// @Security BearerAuth
// @Param id path string true "Account ID (UUID)"
// @Success 204 "Account deactivated"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	if err := h.accountService.DeactivateAccount(userID, accountID); err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAccountTransactions retrieves paginated transactions for an account
// @Summary List account transactions
// @Description Retrieve paginated transaction history for an owned account, newest first
// @Tags Accounts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Account ID (UUID)"
// @Param offset query int false "Number of results to skip" default(0)
// @Param limit query int false "Number of results per page (max 100)" default(20)
// @Success 200 {object} dto.TransactionListResponse "Transaction history with pagination"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Router /accounts/{id}/transactions [get]
func (h *AccountHandler) GetAccountTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	transactions, total, err := h.accountService.GetAccountTransactions(userID, accountID, offset, limit)
	if err != nil {
		if err == services.ErrNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        total,
		Offset:       offset,
		Limit:        limit,
	})
}
