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

// ---- Disputes (DSP) ----

func ErrDisputeNotFound() *AppError {
	return New("DSP_001", "Dispute not found", http.StatusNotFound)
}

func ErrTransactionNotFound() *AppError {
	return New("DSP_002", "Transaction not found", http.StatusNotFound)
}

func ErrDraftNotFound() *AppError {
	return New("DSP_003", "Draft not found", http.StatusNotFound)
}

// ---- Validation (VAL) ----

// Validation returns a pre-mutation validation error. Validation always runs
// before any write, so a failure has zero side effects.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrRejectionNotesRequired() *AppError {
	return New("VAL_002", "Rejection requires non-empty resolution notes", http.StatusBadRequest)
}

// ---- Authorization (AUTHZ) ----

func ErrTransitionDenied(from, to string) *AppError {
	return New("AUTHZ_001", fmt.Sprintf("Transition %s -> %s is not permitted", from, to), http.StatusForbidden)
}

func ErrCapabilityMissing(capability string) *AppError {
	return New("AUTHZ_002", fmt.Sprintf("Missing capability: %s", capability), http.StatusForbidden)
}

func ErrInvalidIdentity() *AppError {
	return New("AUTHZ_003", "Invalid or missing identity token", http.StatusUnauthorized)
}

// ---- Transient network (NET) ----

// ErrTransient marks an injectable transient network failure. Read paths may
// retry it with backoff; write paths must propagate it unmodified.
func ErrTransient(op string) *AppError {
	return New("NET_001", fmt.Sprintf("Network error: %s failed", op), http.StatusBadGateway)
}

func ErrSearchSuperseded() *AppError {
	return New("NET_002", "Search superseded by a newer request", http.StatusConflict)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrPostCommit reports a failed audit or reconciliation step after the
// dispute write already committed. The new status stands; callers must
// surface the gap, never roll back.
func ErrPostCommit(step string, err error) *AppError {
	return Wrap("SYS_002", fmt.Sprintf("Post-commit step failed: %s", step), http.StatusInternalServerError, err)
}

func ErrStorage(err error) *AppError {
	return Wrap("SYS_003", "Storage error", http.StatusInternalServerError, err)
}

// IsTransient reports whether err carries the NET_001 transient code.
func IsTransient(err error) bool {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		return false
	}
	return appErr.Code == "NET_001"
}
