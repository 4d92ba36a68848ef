package employee

import (
	"context"
	"errors"

	"jample-admin/internal/shared/apperror"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, context.Canceled) {
		return err
	}

	return apperror.Backend(err)
}
