// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationContext(query string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/assets"+query, nil)
	return c
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := GetPaginationParams(paginationContext(""))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
	assert.Equal(t, "", params.Search)
}

func TestGetPaginationParamsClampsBadInput(t *testing.T) {
	params := GetPaginationParams(paginationContext("?page=-3&limit=9999&order=sideways"))

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, 20, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsPassesSearch(t *testing.T) {
	params := GetPaginationParams(paginationContext("?page=3&limit=50&search=rolex&order=asc"))

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 50, params.Limit)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "rolex", params.Search)
}

func TestCreatePaginationResult(t *testing.T) {
	result := CreatePaginationResult([]int{1, 2, 3}, 45, PaginationParams{Page: 2, Limit: 20})

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}
