package handlers

import (
	"net/http"

	"github.com/nicktebbo/FinTrack/internal/dto"
	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// CreateTransaction records a manual transaction against an owned account
// @Summary Create manual transaction
// @Description Record a manually entered transaction. Amount is a non-negative decimal string; direction is carried by the transaction type.
// @Tags Transactions
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse "Created transaction"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid amount or VALIDATION_005 - Invalid date"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [post]
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request payload"))
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	transaction, err := h.transactionService.CreateTransaction(userID, &req)
	if err != nil {
		switch err {
		case services.ErrNotFound:
			return SendError(c, errors.AccountNotFound)
		case services.ErrInvalidAmount:
			return SendError(c, errors.ValidationInvalidAmount)
		case services.ErrInvalidDate:
			return SendError(c, errors.ValidationInvalidDate)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, dto.TransactionResponse{Transaction: transaction})
}

// GetRecentTransactions retrieves the user's most recent transactions
// @Summary List recent transactions
// @Description Retrieve the authenticated user's most recent transactions across all accounts, newest first
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Number of results (max 100)" default(20)
// @Success 200 {object} dto.TransactionListResponse "Recent transactions"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions/recent [get]
func (h *TransactionHandler) GetRecentTransactions(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	limit := getIntParam(c, "limit", defaultPageLimit)
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	transactions, err := h.transactionService.GetRecentTransactions(userID, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Transactions: transactions,
		Total:        int64(len(transactions)),
		Limit:        limit,
	})
}
