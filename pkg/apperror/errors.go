package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// CodeOf returns the AppError code of err, or SYS_000 for foreign errors.
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "SYS_000"
}

// ---- Agent Wallet (AGENT) ----

func ErrNoAgentWallet() *AppError {
	return New("AGENT_001", "No agent wallet found. Create one first", http.StatusNotFound)
}

func ErrWalletConflict() *AppError {
	return New("AGENT_002", "Agent wallet already exists for this user", http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New("AGENT_003", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ---- Delegation (DLG) ----

func ErrNotDelegated() *AppError {
	return New("DLG_001", "Agent wallet is not delegated. Authorize delegation first", http.StatusForbidden)
}

func ErrDelegateNotSet() *AppError {
	return New("DLG_002", "On-chain delegate does not match the agent wallet. Authorize delegation first", http.StatusForbidden)
}

// ---- Ledger (LEDGER) ----

func ErrNoLedgerAccount() *AppError {
	return New("LEDGER_001", "No trading account found. Deposit to initialize it", http.StatusConflict)
}

// ---- Security (SEC) ----

// ErrKeyIntegrity is fatal: the stored key failed authentication and must not be used.
func ErrKeyIntegrity(err error) *AppError {
	return Wrap("SEC_001", "Signing key integrity check failed", http.StatusInternalServerError, err)
}

// ---- Funding (FUND) ----

func ErrInsufficientBalance(message string) *AppError {
	return New("FUND_001", message, http.StatusUnprocessableEntity)
}

func ErrBelowMinimumDeposit(minimum string) *AppError {
	return New("FUND_002", fmt.Sprintf("Minimum deposit is $%s", minimum), http.StatusBadRequest)
}

// ---- Trading (TRADE) ----

func ErrNoOpenPosition(marketIndex uint16) *AppError {
	return New("TRADE_001", fmt.Sprintf("No open position in market %d", marketIndex), http.StatusConflict)
}

func ErrInvalidOrder(message string) *AppError {
	return New("TRADE_002", message, http.StatusBadRequest)
}

// ---- Transaction submission (TX) ----

// ErrSubmissionFailed marks a transaction the ledger rejected or never accepted.
func ErrSubmissionFailed(err error) *AppError {
	return Wrap("TX_001", "Transaction submission failed", http.StatusBadGateway, err)
}

// ErrOutcomeUnknown marks a submitted transaction whose confirmation timed out.
// It may still land; callers must not resubmit.
func ErrOutcomeUnknown(signature string, err error) *AppError {
	return Wrap("TX_002", fmt.Sprintf("Transaction %s submitted but not confirmed; outcome unknown", signature),
		http.StatusGatewayTimeout, err)
}

func ErrDuplicateRequest() *AppError {
	return New("TX_003", "A request with this idempotency key is already in progress", http.StatusConflict)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New("AUTH_001", "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

func ErrLockTimeout(err error) *AppError {
	return Wrap("SYS_002", "Lock acquisition timeout", http.StatusServiceUnavailable, err)
}

func ErrEncryptionFailure(err error) *AppError {
	return Wrap("SYS_003", "Encryption service failure", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a SYS_004 validation error.
func Validation(message string) *AppError {
	return New("SYS_004", message, http.StatusBadRequest)
}
