package group

import (
	"errors"
	"net/http"
	"strconv"

	grouperrors "jample-admin/internal/group/errors"
	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/contextutil"
	"jample-admin/internal/shared/response"
	"jample-admin/internal/shared/verdict"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("group.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("group.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	log := contextutil.Logger(c.Request.Context(), h.logger)
	var rej *verdict.Rejection
	if errors.As(err, &rej) {
		response.Rejected(c, rej.Verdict)
		return
	}
	httpErr := apperror.ToHTTP(err)
	log.Warn("group request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func groupID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, grouperrors.ErrInvalidGroupID
	}
	return id, nil
}

func (h *Handler) GetAll(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetAll(c.Request.Context(), sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), sess, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	id, err := groupID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	var req UpdateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), sess, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	id, err := groupID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	if err := h.service.Delete(c.Request.Context(), sess, id); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"id": id, "deleted": true}, nil)
}

func (h *Handler) AssignEmployee(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	id, err := groupID(c)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.AssignEmployee(c.Request.Context(), sess, id, c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) UnassignEmployee(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.UnassignEmployee(c.Request.Context(), sess, c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
