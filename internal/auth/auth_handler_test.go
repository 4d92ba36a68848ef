package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"jample-admin/internal/auth"
	autherrors "jample-admin/internal/auth/errors"
	authMock "jample-admin/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupHandlerRouter(t *testing.T) (*gin.Engine, *authMock.MockService) {
	gin.SetMode(gin.TestMode)
	svc := authMock.NewMockService(gomock.NewController(t))
	h := auth.NewHandler(svc, false)

	fakeAuth := func(c *gin.Context) {
		c.Set("user_id", "u-1")
		c.Set("sid", "sid-1")
		c.Next()
	}

	r := gin.New()
	auth.RegisterRoutes(r.Group("/api/v1"), h, fakeAuth)
	return r, svc
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("sets cookie", func(t *testing.T) {
		r, svc := setupHandlerRouter(t)
		svc.EXPECT().Login(gomock.Any(), "admin@acme.io", "pw").Return(auth.LoginResult{
			AccessToken: "jwt",
			ExpiresAt:   time.Now().Add(time.Hour),
			User:        auth.AuthResponse{UserID: "u-1", CompanyID: 42},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"admin@acme.io","password":"pw"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		cookies := w.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, "access_token", cookies[0].Name)
		assert.Equal(t, "jwt", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
	})

	t.Run("bind error", func(t *testing.T) {
		r, _ := setupHandlerRouter(t)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"not-an-email"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		r, svc := setupHandlerRouter(t)
		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(auth.LoginResult{}, autherrors.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"email":"admin@acme.io","password":"bad"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "AUTH_FAILED", body["error"].(map[string]any)["code"])
	})
}

func TestAuthHandler_MeAndLogout(t *testing.T) {
	r, svc := setupHandlerRouter(t)
	svc.EXPECT().GetMe(gomock.Any(), "sid-1").Return(auth.AuthResponse{UserID: "u-1", Role: "role-admin"}, nil)
	svc.EXPECT().Logout(gomock.Any(), "sid-1").Return(nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "role-admin")

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
