package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrBackendUnavailable = New(
		CodeBackendError,
		"The benefits backend could not be reached",
		http.StatusBadGateway,
	)
)

func RequiredField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is required", field), http.StatusBadRequest)
}

func InvalidField(field string) *AppError {
	return New(CodeInvalidInput, fmt.Sprintf("%s is invalid", field), http.StatusBadRequest)
}

// BackendRejected wraps a business refusal returned by the GraphQL backend.
// The backend message is shown to the user as-is.
func BackendRejected(message string) *AppError {
	if message == "" {
		message = "The request was rejected by the benefits backend"
	}
	return New(CodeBackendRejected, message, http.StatusBadGateway)
}

// Backend wraps a transport or GraphQL-level failure.
func Backend(err error) *AppError {
	return Wrap(err, CodeBackendError, ErrBackendUnavailable.Message, http.StatusBadGateway)
}
