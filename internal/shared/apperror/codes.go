package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "INVALID_INPUT"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidState       = "INVALID_STATE"
	CodeValidationRejected = "VALIDATION_REJECTED"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"

	// Upstream GraphQL backend
	CodeBackendError    = "BACKEND_ERROR"
	CodeBackendRejected = "BACKEND_REJECTED"
)
