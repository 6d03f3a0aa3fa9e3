// internal/utils/response_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetWalletFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetWalletFromContext(c)
	assert.False(t, ok)

	c.Set("wallet_address", "")
	_, ok = GetWalletFromContext(c)
	assert.False(t, ok)

	c.Set("wallet_address", "0x5FbDB2315678afecb367f032d93F642f64180aa3")
	wallet, ok := GetWalletFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", wallet)
}

func TestGetUserIDFromContext(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, ok := GetUserIDFromContext(c)
	assert.False(t, ok)

	c.Set("user_id", uint(7))
	userID, ok := GetUserIDFromContext(c)
	assert.True(t, ok)
	assert.Equal(t, uint(7), userID)
}
