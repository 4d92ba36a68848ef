package middleware

import (
	"context"
	"net/http"
	"strconv"

	autherrors "jample-admin/internal/auth/errors"
	"jample-admin/internal/backend"
	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const SessionKey = "backend_session"

// SessionStore resolves a session id to the backend token issued at login.
type SessionStore interface {
	Token(ctx context.Context, sid string) (string, error)
}

// BackendSession must run after AuthMiddleware. It turns the token claims
// into an explicit backend.Session that handlers pass down.
func BackendSession(store SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := strconv.ParseInt(c.GetString("company_id"), 10, 64)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "company_id is not numeric", nil)
			c.Abort()
			return
		}

		token, err := store.Token(c.Request.Context(), c.GetString("sid"))
		if err != nil || token == "" {
			errObj := autherrors.ErrSessionExpired
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}

		c.Set(SessionKey, backend.Session{
			CompanyID: companyID,
			UserID:    c.GetString("user_id"),
			Token:     token,
		})
		c.Next()
	}
}

func GetSession(c *gin.Context) (backend.Session, bool) {
	v, ok := c.Get(SessionKey)
	if !ok {
		return backend.Session{}, false
	}
	sess, ok := v.(backend.Session)
	return sess, ok
}
