package apperror

import (
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

// Stable error codes returned to clients.
const (
	CodeInsufficientFunds  = "WAL_001"
	CodeInvalidAmount      = "WAL_002"
	CodeNotFound           = "WAL_003"
	CodeWalletInactive     = "WAL_004"
	CodeAlreadyDecided     = "REQ_001"
	CodeRequestExpired     = "REQ_002"
	CodeGatewayTimeout     = "PAY_001"
	CodeGatewayUnavailable = "PAY_002"
	CodeInvalidPhoneNumber = "PAY_003"
	CodeInvalidToken       = "AUTH_001"
	CodeForbidden          = "AUTH_002"
	CodeRateLimitExceeded  = "RATE_001"
	CodeInternal           = "SYS_001"
)

// ---- Wallet & Ledger (WAL) ----

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrWalletInactive() *AppError {
	return New(CodeWalletInactive, "Wallet is deactivated", http.StatusUnprocessableEntity)
}

// ---- Purchase Requests (REQ) ----

func ErrAlreadyDecided() *AppError {
	return New(CodeAlreadyDecided, "Purchase request was already handled", http.StatusConflict)
}

func ErrRequestExpired() *AppError {
	return New(CodeRequestExpired, "Purchase request has expired", http.StatusGone)
}

// ---- Payment Gateway (PAY) ----

func ErrGatewayTimeout() *AppError {
	return New(CodeGatewayTimeout, "Payment confirmation timed out", http.StatusGatewayTimeout)
}

func ErrGatewayUnavailable(err error) *AppError {
	return Wrap(CodeGatewayUnavailable, "Payment gateway unavailable", http.StatusBadGateway, err)
}

func ErrInvalidPhoneNumber() *AppError {
	return New(CodeInvalidPhoneNumber, "Invalid phone number", http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

func ErrForbidden() *AppError {
	return New(CodeForbidden, "Not allowed for this role", http.StatusForbidden)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a WAL_002-style validation error with a custom message.
func Validation(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}
