package credit

import (
	"errors"
	"net/http"

	crediterrors "jample-admin/internal/credit/errors"
	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/contextutil"
	"jample-admin/internal/shared/response"
	"jample-admin/internal/shared/verdict"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	return NewHandlerWithRedis(service, nil, logger...)
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("credit.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("credit.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	log := contextutil.Logger(c.Request.Context(), h.logger)
	var rej *verdict.Rejection
	if errors.As(err, &rej) {
		log.Info("credit request rejected",
			zap.String("path", c.FullPath()),
			zap.String("reason", rej.Verdict.Reason),
		)
		response.Rejected(c, rej.Verdict)
		return
	}

	httpErr := apperror.ToHTTP(err)
	log.Warn("credit request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetSummary(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetSummary(c.Request.Context(), sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Preview(c.Request.Context(), sess, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Allocate answers PARTIAL as a success payload and ALL_FAILED as an
// error envelope carrying the failures. Only answered outcomes other than
// ALL_FAILED are stored for idempotent replay.
func (h *Handler) Allocate(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		middleware.CompleteIdempotency(c, h.rdb, nil)
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req AllocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http allocate credits validation failed", zap.Error(err))
		middleware.CompleteIdempotency(c, h.rdb, nil)
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Allocate(c.Request.Context(), sess, req)
	if err != nil {
		middleware.CompleteIdempotency(c, h.rdb, nil)
		h.writeServiceError(c, err)
		return
	}

	if resp.Kind == OutcomeAllFailed {
		middleware.CompleteIdempotency(c, h.rdb, nil)
		errObj := crediterrors.ErrAllocationFailed.WithDetails(resp)
		errObj.Message = resp.Message
		h.writeServiceError(c, errObj)
		return
	}

	middleware.CompleteIdempotency(c, h.rdb, resp)
	response.Success(c, http.StatusOK, resp, nil)
}
