package auth

import (
	"net/http"
	"time"

	"jample-admin/internal/middleware"
	"jample-admin/internal/shared/apperror"
	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(s Service, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookie: secureCookie, logger: l}
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, apperror.MapValidationError(err))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}

	h.setCookie(c, res.AccessToken, int(time.Until(res.ExpiresAt).Seconds()))

	response.Success(c, http.StatusOK, LoginResponse{
		User:        res.User,
		AccessToken: res.AccessToken,
		ExpiresAt:   res.ExpiresAt,
	}, nil)
}

func (h *Handler) Me(c *gin.Context) {
	me, err := h.service.GetMe(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, me, nil)
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), c.GetString("sid")); err != nil {
		h.writeError(c, err)
		return
	}
	h.setCookie(c, "", -1)
	response.Success(c, http.StatusOK, "Logout success.", nil)
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.Error("auth request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
