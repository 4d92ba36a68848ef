package employee

import (
	"errors"
	"fmt"
	"net/http"

	employeeerrors "jample-admin/internal/employee/errors"
	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/contextutil"
	"jample-admin/internal/shared/response"
	"jample-admin/internal/shared/verdict"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	log := contextutil.Logger(c.Request.Context(), h.logger)
	var rej *verdict.Rejection
	if errors.As(err, &rej) {
		log.Info("employee request rejected",
			zap.String("path", c.FullPath()),
			zap.String("reason", rej.Verdict.Reason),
		)
		response.Rejected(c, rej.Verdict)
		return
	}

	httpErr := apperror.ToHTTP(err)
	log.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) GetAll(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	h.logger.Debug("http get all employees", zap.Int64("company_id", sess.CompanyID))

	resp, err := h.service.GetAll(c.Request.Context(), sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	q := parseListQuery(c)
	rows := applyListQuery(resp, q)
	meta := response.NewPaginationMeta(int64(len(rows)), q.Page, q.PageSize)
	response.Success(c, http.StatusOK, paginate(rows, q.Page, q.PageSize), &meta)
}

// Export streams the filtered and sorted directory (all pages) as xlsx.
func (h *Handler) Export(c *gin.Context) {
	ctx := c.Request.Context()
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetAll(ctx, sess)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	rows := applyListQuery(resp, parseListQuery(c))

	f, err := BuildWorkbook(ctx, rows)
	if err != nil {
		h.logger.Error("build employee workbook failed", zap.Error(err))
		h.writeServiceError(c, employeeerrors.ErrExportFailed)
		return
	}
	defer f.Close()

	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="employees-%d.xlsx"`, sess.CompanyID))
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.logger.Error("write employee workbook failed", zap.Error(err))
	}
}

func (h *Handler) GetById(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) GetStatusForm(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	resp, err := h.service.GetStatusForm(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) PreviewStatus(c *gin.Context) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http preview employee status validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.PreviewStatus(c.Request.Context(), sess, c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) ChangeStatus(c *gin.Context) {
	id := c.Param("id")
	sess, ok := middleware.GetSession(c)
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}
	h.logger.Debug("http change employee status",
		zap.Int64("company_id", sess.CompanyID),
		zap.String("employee_id", id),
	)

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http change employee status validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.ChangeStatus(c.Request.Context(), sess, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
