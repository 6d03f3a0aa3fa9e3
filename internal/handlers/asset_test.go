// internal/handlers/asset_test.go
package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// assetTestRouter stands in for the authenticated route group. The nil
// service is fine for requests rejected before the service is reached.
func assetTestRouter(wallet string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAssetHandler(nil)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", uint(1))
		c.Set("username", "alice")
		if wallet != "" {
			c.Set("wallet_address", wallet)
		}
		c.Next()
	})
	r.GET("/assets", h.GetAssets)
	r.POST("/assets", h.CreateAsset)
	return r
}

func TestGetAssetsRejectsUnknownStatus(t *testing.T) {
	r := assetTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/assets?status=bogus", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid asset status")
}

func TestGetAssetsRejectsUnknownType(t *testing.T) {
	r := assetTestRouter("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/assets?type=castle", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid asset type")
}

func TestCreateAssetRequiresOwnerAddressWithoutWallet(t *testing.T) {
	r := assetTestRouter("")

	body := `{"type":"watch","metadata":{"name":"Speedmaster"}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/assets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "owner_address")
}

func TestRespondServiceErrorMapsConflicts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, msg := range []string{
		"invalid status transition: cannot mint a draft asset",
		"minted assets cannot be modified",
		"minted assets cannot be deleted",
	} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		respondServiceError(c, errors.New(msg))
		assert.Equal(t, http.StatusConflict, w.Code, "message %q", msg)
		assert.Contains(t, w.Body.String(), msg)
	}
}

func TestRespondServiceErrorMapsNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondServiceError(c, errors.New("asset not found"))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
