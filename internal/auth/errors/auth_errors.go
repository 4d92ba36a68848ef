package autherrors

import (
	"jample-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrInvalidCredentials = apperror.New(
		"AUTH_FAILED",
		"Invalid email or password",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrSessionExpired = apperror.New(
		"SESSION_EXPIRED",
		"Session has expired, please sign in again",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to issue token",
		http.StatusInternalServerError,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
)
