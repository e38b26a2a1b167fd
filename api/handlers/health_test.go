package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"referral-api/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Check_NilDatabase(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewHealthHandler(nil, logger.New())
	router.GET("/health", handler.Check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "error", response["status"])
	assert.Equal(t, "referral-api", response["service"])
	assert.NotEmpty(t, response["timestamp"])
}

func TestHealthHandler_Check_ResponseFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewHealthHandler(nil, logger.New())
	router.GET("/health", handler.Check)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)

	assert.Contains(t, response, "status")
	assert.Contains(t, response, "service")
	assert.Contains(t, response, "timestamp")

	status := response["status"].(string)
	assert.Contains(t, []string{"ok", "error"}, status)
}
