package response

import (
	"net/http"

	"jample-admin/internal/i18n"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/verdict"

	"github.com/gin-gonic/gin"
)

// Rejected writes a failed local validation as 422 with the message
// rendered in the request locale. The raw verdict goes into details.
func Rejected(c *gin.Context, v verdict.Verdict) {
	Error(c, http.StatusUnprocessableEntity, apperror.CodeValidationRejected,
		i18n.T(c.Request.Context(), v.Reason, v.Params), v)
}
