package middleware

import (
	"jample-admin/internal/i18n"

	"github.com/gin-gonic/gin"
)

// Locale picks ko or en from Accept-Language for verdict messages.
func Locale() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.DefaultLocale()
		if h := c.GetHeader("Accept-Language"); h != "" {
			locale = i18n.Match(h)
		}
		c.Header("Content-Language", locale)
		c.Request = c.Request.WithContext(i18n.WithLocale(c.Request.Context(), locale))
		c.Next()
	}
}
