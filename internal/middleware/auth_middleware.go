package middleware

import (
	"errors"
	"net/http"
	"strings"

	autherrors "jample-admin/internal/auth/errors"
	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const AccessTokenCookie = "access_token"

// SessionClaims is the payload of the admin session token. Ids are
// strings so they survive JSON number handling in other clients.
type SessionClaims struct {
	UserID    string `json:"user_id"`
	CompanyID string `json:"company_id"`
	SessionID string `json:"sid"`
	Role      string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (c SessionClaims) missing() string {
	switch {
	case c.UserID == "":
		return "user_id"
	case c.CompanyID == "":
		return "company_id"
	case c.SessionID == "":
		return "sid"
	}
	return ""
}

// AuthMiddleware validates the session JWT from the Authorization header
// or the access_token cookie and copies its claims into the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)
	parser := jwt.NewParser(jwt.WithValidMethods([]string{
		jwt.SigningMethodHS256.Alg(),
		jwt.SigningMethodHS384.Alg(),
		jwt.SigningMethodHS512.Alg(),
	}))

	return func(c *gin.Context) {
		raw := bearerOrCookie(c)
		if raw == "" {
			abortUnauthorized(c, "UNAUTHORIZED", "Token not found")
			return
		}

		var claims SessionClaims
		token, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			errObj := autherrors.ErrInvalidToken
			if errors.Is(err, jwt.ErrTokenExpired) {
				errObj = autherrors.ErrTokenExpired
			}
			abortUnauthorized(c, errObj.Code, errObj.Message)
			return
		}
		if name := claims.missing(); name != "" {
			abortUnauthorized(c, autherrors.ErrInvalidToken.Code, name+" not found in token")
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("company_id", claims.CompanyID)
		c.Set("sid", claims.SessionID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

func bearerOrCookie(c *gin.Context) string {
	if tok, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer "); ok && tok != "" {
		return strings.TrimSpace(tok)
	}
	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie
	}
	return ""
}

func abortUnauthorized(c *gin.Context, code, message string) {
	response.Error(c, http.StatusUnauthorized, code, message, nil)
	c.Abort()
}
