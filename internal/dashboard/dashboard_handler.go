package dashboard

import (
	"net/http"

	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/contextutil"
	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dashboard.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	contextutil.Logger(c.Request.Context(), h.logger).Warn("dashboard request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) MemberStats(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.MemberStats(c.Request.Context(), sess)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) JamUsage(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	var q UsageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.JamUsage(c.Request.Context(), sess, q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) RecentReviews(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	var q ReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.RecentReviews(c.Request.Context(), sess, q)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
