package audit

import (
	"net/http"

	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("audit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("audit.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeError(c, apperror.ErrUnauthorized)
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	entries, total, err := h.service.List(c.Request.Context(), sess.CompanyID, q)
	if err != nil {
		h.writeError(c, err)
		return
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}
	meta := response.NewPaginationMeta(total, page, limit)
	response.Success(c, http.StatusOK, entries, &meta)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("audit request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
