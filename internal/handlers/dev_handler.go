package handlers

import (
	"net/http"
	"time"

	"github.com/nicktebbo/FinTrack/internal/errors"
	"github.com/nicktebbo/FinTrack/internal/repositories"
	"github.com/nicktebbo/FinTrack/internal/services"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const devTokenTTL = 24 * time.Hour

// DevHandler handles development-only endpoints. These routes must never be
// registered in production environments.
type DevHandler struct {
	userRepo        repositories.UserRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	demoData        services.DemoDataServiceInterface
	jwtSecret       string
	jwtIssuer       string
}

// NewDevHandler creates a new development handler
func NewDevHandler(
	userRepo repositories.UserRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	jwtSecret, jwtIssuer string,
) *DevHandler {
	return &DevHandler{
		userRepo:        userRepo,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		demoData:        services.NewDemoDataService(),
		jwtSecret:       jwtSecret,
		jwtIssuer:       jwtIssuer,
	}
}

// IssueDevToken creates (or reuses) the demo user and returns a signed access
// token for it. Lets a developer exercise the authenticated API without a
// real identity provider.
//
// Method: POST /api/v1/dev/token
// Environment: Development only
func (h *DevHandler) IssueDevToken(c echo.Context) error {
	demo := h.demoData.DemoUser()

	user, err := h.userRepo.GetByEmail(demo.Email)
	if err != nil {
		if err != repositories.ErrUserNotFound {
			return SendSystemError(c, err)
		}
		user = demo
		if err := h.userRepo.Create(user); err != nil {
			return SendSystemError(c, err)
		}
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   user.ID.String(),
		Issuer:    h.jwtIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(devTokenTTL)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"token":      signed,
		"expires_at": claims.ExpiresAt.Time.UTC().Format(time.RFC3339),
		"user":       user,
	})
}

// GenerateTestData fills an owned account with fake transaction history.
//
// Method: POST /api/v1/dev/accounts/:id/generate-test-data
// Query parameters:
//   - count: transactions to generate (default 100, max 1000)
//   - days: days of history (default 30, max 365)
//
// Environment: Development only
func (h *DevHandler) GenerateTestData(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	accountID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid account ID"))
	}

	account, err := h.accountRepo.GetByID(accountID)
	if err != nil {
		if err == repositories.ErrAccountNotFound {
			return SendError(c, errors.AccountNotFound)
		}
		return SendSystemError(c, err)
	}

	if account.UserID != userID {
		return SendError(c, errors.AccountNotFound)
	}

	count := getIntParam(c, "count", 100)
	if count < 1 {
		count = 1
	}
	if count > 1000 {
		count = 1000
	}

	days := getIntParam(c, "days", 30)
	if days < 1 {
		days = 1
	}
	if days > 365 {
		days = 365
	}

	end := time.Now()
	start := end.AddDate(0, 0, -days)

	transactions := h.demoData.GenerateTransactions(userID, accountID, start, end, count)
	if err := h.transactionRepo.CreateBatch(transactions); err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":              "Test data generated",
		"transactions_created": len(transactions),
	})
}
