// internal/model/error.go
package model

import "errors"

// Application-level sentinel errors. Services wrap these in an AppError so
// handlers can map them to HTTP status codes without inspecting messages.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternalServer  = errors.New("internal server error")
	ErrForbidden       = errors.New("forbidden")
	ErrPatientRequired = errors.New("patient identifier missing")
	ErrConflict        = errors.New("resource conflict")

	// ErrSyncUnavailable marks a remote-store failure (network, auth,
	// configuration). On the record submission path it is NOT a request
	// failure: the record stays in the local store and the response says
	// "saved locally only".
	ErrSyncUnavailable = errors.New("remote sync unavailable")
)

// AppError carries a stable machine code plus a human message. The wrapped
// error is one of the sentinels above and drives status-code mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Err     error  `json:"-"`
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{Code: code, Message: message, Field: field, Err: err}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Detail returns the client-facing part of the error.
func (e *AppError) Detail() ErrorDetail {
	return ErrorDetail{Code: e.Code, Message: e.Message, Field: e.Field}
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse is the JSON body of every error response.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
