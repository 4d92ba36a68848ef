package response_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jample-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPaginationMeta(t *testing.T) {
	assert.Equal(t, 3, response.NewPaginationMeta(21, 1, 10).TotalPages)
	assert.Equal(t, 2, response.NewPaginationMeta(20, 1, 10).TotalPages)
	assert.Equal(t, 0, response.NewPaginationMeta(5, 1, 0).TotalPages)
}

func TestEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	response.Error(c, http.StatusConflict, "CONFLICT", "already done", map[string]string{"id": "1"})

	require.Equal(t, http.StatusConflict, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, false, body["ok"])
	assert.NotContains(t, body, "data")
	errBody := body["error"].(map[string]any)
	assert.Equal(t, "CONFLICT", errBody["code"])
	assert.Equal(t, "1", errBody["details"].(map[string]any)["id"])

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	response.Success(c, http.StatusOK, []int{1}, nil)
	body = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["ok"])
	assert.NotContains(t, body, "error")
}
