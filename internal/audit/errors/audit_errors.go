package auditerrors

import (
	"jample-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"Audit entry already recorded",
		http.StatusConflict,
	)
	ErrInvalidEvent = apperror.New(
		apperror.CodeInvalidInput,
		"Audit event is missing required fields",
		http.StatusBadRequest,
	)
)
