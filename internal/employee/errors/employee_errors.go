package employeeerrors

import (
	"jample-admin/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown employee status",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to build the employee export",
		http.StatusInternalServerError,
	)
)
