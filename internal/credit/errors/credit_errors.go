package crediterrors

import (
	"net/http"

	"jample-admin/internal/shared/apperror"
)

const CodeAllocationFailed = "ALLOCATION_FAILED"

var (
	ErrMalformedSummary = apperror.New(
		apperror.CodeBackendError,
		"The credit summary returned by the backend is malformed",
		http.StatusBadGateway,
	)
	ErrAllocationFailed = apperror.New(
		CodeAllocationFailed,
		"Credits could not be allocated to any employee",
		http.StatusUnprocessableEntity,
	)
)
