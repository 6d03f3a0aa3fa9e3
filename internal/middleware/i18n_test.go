// internal/middleware/i18n_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func negotiatedLang(t *testing.T, header string) string {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var lang string
	r := gin.New()
	r.Use(I18nMiddleware())
	r.GET("/", func(c *gin.Context) {
		lang = c.GetString("lang")
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Accept-Language", header)
	}
	r.ServeHTTP(w, req)
	return lang
}

func TestI18nMiddlewareDefaultsToEnglish(t *testing.T) {
	assert.Equal(t, "en", negotiatedLang(t, ""))
}

func TestI18nMiddlewareFallsBackForUnsupported(t *testing.T) {
	assert.Equal(t, "en", negotiatedLang(t, "fr-FR,fr;q=0.9"))
}

func TestI18nMiddlewareMatchesFirstPreference(t *testing.T) {
	assert.Equal(t, "en", negotiatedLang(t, "en-US,en;q=0.9,de;q=0.8"))
}
