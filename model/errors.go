package model

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is the error shape every handler renders: an HTTP status plus a
// stable error code and message for the JSON envelope.
type AppError struct {
	Status    int    `json:"-"`
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}

func NotFound(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusNotFound, ErrorCode: "NOT_FOUND", Message: fmt.Sprintf(format, args...)}
}

func BadRequest(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusBadRequest, ErrorCode: "BAD_REQUEST", Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(message string) *AppError {
	if message == "" {
		message = "could not validate credentials"
	}
	return &AppError{Status: http.StatusUnauthorized, ErrorCode: "UNAUTHORIZED", Message: message}
}

func DuplicateValue(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusConflict, ErrorCode: "DUPLICATE_VALUE", Message: fmt.Sprintf(format, args...)}
}

func InsufficientData(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusBadRequest, ErrorCode: "INSUFFICIENT_DATA", Message: fmt.Sprintf(format, args...)}
}

func InternalServer(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusInternalServerError, ErrorCode: "INTERNAL_SERVER_ERROR", Message: fmt.Sprintf(format, args...)}
}

func GatewayTimeout(format string, args ...any) *AppError {
	return &AppError{Status: http.StatusGatewayTimeout, ErrorCode: "GATEWAY_TIMEOUT", Message: fmt.Sprintf(format, args...)}
}

// AsAppError unwraps err into an AppError, falling back to a generic
// internal error so raw failures never leak to clients.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return InternalServer("unexpected error")
}
