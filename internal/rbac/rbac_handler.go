package rbac

import (
	"net/http"

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
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rbac request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Enforce answers a permission question inside the caller's company.
// user_id defaults to the caller.
func (h *Handler) Enforce(c *gin.Context) {
	var req EnforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	req = req.Normalize()
	req.CompanyID = c.GetString("company_id")
	if req.UserID == "" {
		req.UserID = c.GetString("user_id")
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, EnforceResponse{UserID: req.UserID, Allowed: allowed}, nil)
}

func (h *Handler) ListRoles(c *gin.Context) {
	roles, err := h.service.ListRoles(c.GetString("company_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, roles, nil)
}

func (h *Handler) ListPermissions(c *gin.Context) {
	perms, err := h.service.ListPermissions()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, perms, nil)
}
