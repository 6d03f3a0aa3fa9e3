// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/truvalue/truvalue-backend/internal/i18n"
)

// I18nMiddleware negotiates the response language from Accept-Language
// against the loaded translation catalogs.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := "en"

		// Handle values like "de-DE,de;q=0.9,en;q=0.8": only the first
		// preference is considered.
		if header := c.GetHeader("Accept-Language"); header != "" {
			first := strings.TrimSpace(strings.Split(strings.Split(header, ",")[0], ";")[0])
			for _, supported := range i18n.GetSupportedLanguages() {
				if strings.HasPrefix(first, supported) {
					lang = supported
					break
				}
			}
		}

		c.Set("lang", lang)
		c.Next()
	}
}
