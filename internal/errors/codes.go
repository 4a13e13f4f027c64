package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthMissingToken           ErrorCode = "AUTH_001"
	AuthExpiredToken           ErrorCode = "AUTH_002"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_003"
	AuthInsufficientPermission ErrorCode = "AUTH_004"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidAmount ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound    ErrorCode = "ACCOUNT_001"
	AccountInactive    ErrorCode = "ACCOUNT_002"
	AccountInvalidType ErrorCode = "ACCOUNT_003"
)

// Transaction error codes (TRANSACTION_*)
const (
	TransactionNotFound    ErrorCode = "TRANSACTION_001"
	TransactionInvalidType ErrorCode = "TRANSACTION_002"
)

// Goal error codes (GOAL_*)
const (
	GoalNotFound      ErrorCode = "GOAL_001"
	GoalInvalidAmount ErrorCode = "GOAL_002"
)

// Insight error codes (INSIGHT_*)
const (
	InsightNotFound ErrorCode = "INSIGHT_001"
)

// Provider and connection error codes (PROVIDER_*)
const (
	ProviderUnsupported   ErrorCode = "PROVIDER_001"
	ProviderAuthRejected  ErrorCode = "PROVIDER_002"
	ProviderNotConfigured ErrorCode = "PROVIDER_003"
	ProviderUnavailable   ErrorCode = "PROVIDER_004"
	ConnectionNotFound    ErrorCode = "PROVIDER_005"
	ConnectionLinkFailed  ErrorCode = "PROVIDER_006"
)

// Sync error codes (SYNC_*)
const (
	SyncFailed ErrorCode = "SYNC_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidAmount: "Invalid monetary amount",
	ValidationInvalidDate:   "Invalid date format or range",

	// Account errors
	AccountNotFound:    "Account not found",
	AccountInactive:    "Account is inactive",
	AccountInvalidType: "Invalid account type",

	// Transaction errors
	TransactionNotFound:    "Transaction not found",
	TransactionInvalidType: "Invalid transaction type",

	// Goal errors
	GoalNotFound:      "Goal not found",
	GoalInvalidAmount: "Invalid goal amount",

	// Insight errors
	InsightNotFound: "Insight not found",

	// Provider and connection errors
	ProviderUnsupported:   "Unsupported financial data provider",
	ProviderAuthRejected:  "The provider rejected the stored credential; re-link the connection",
	ProviderNotConfigured: "Provider API credentials are not configured; set the provider environment variables",
	ProviderUnavailable:   "The provider is temporarily unavailable; try syncing again later",
	ConnectionNotFound:    "Financial connection not found",
	ConnectionLinkFailed:  "Failed to link the financial institution",

	// Sync errors
	SyncFailed: "Account synchronization failed",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
