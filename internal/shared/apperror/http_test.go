package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"jample-admin/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps status and code", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.ErrForbidden)
		assert.Equal(t, http.StatusForbidden, got.Status)
		assert.Equal(t, apperror.CodeForbidden, got.Code)
	})

	t.Run("wrapped app error is unwrapped", func(t *testing.T) {
		err := fmt.Errorf("handler: %w", apperror.BackendRejected("employee already left"))
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusBadGateway, got.Status)
		assert.Equal(t, apperror.CodeBackendRejected, got.Code)
		assert.Equal(t, "employee already left", got.Message)
	})

	t.Run("backend transport error hides cause", func(t *testing.T) {
		got := apperror.ToHTTP(apperror.Backend(errors.New("dial tcp: refused")))
		assert.Equal(t, apperror.CodeBackendError, got.Code)
		assert.NotContains(t, got.Message, "dial tcp")
	})

	t.Run("plain error becomes internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
	})
}

func TestWithDetails(t *testing.T) {
	details := map[string]int{"failed": 2}
	err := apperror.ErrInvalidInput.WithDetails(details)

	got := apperror.ToHTTP(err)
	assert.Equal(t, details, got.Details)
	assert.Nil(t, apperror.ErrInvalidInput.Details)
	assert.Nil(t, apperror.ToHTTP(apperror.ErrInvalidInput).Details)
}
