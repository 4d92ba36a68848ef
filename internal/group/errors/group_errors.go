package grouperrors

import (
	"net/http"

	"jample-admin/internal/shared/apperror"
)

var (
	ErrGroupNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee group not found",
		http.StatusNotFound,
	)
	ErrInvalidGroupID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee group ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrNotApplied = apperror.BackendRejected("The benefits backend did not apply the group change")
)
