package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitBlocksOverLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(2, time.Hour))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	get := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "203.0.113.7:1234"
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	require.Equal(t, http.StatusOK, get().Code)
	require.Equal(t, http.StatusOK, get().Code)

	resp := get()
	assert.Equal(t, http.StatusTooManyRequests, resp.Code)
	assert.Contains(t, resp.Body.String(), "Muitas tentativas")
}

func TestRateLimitIsPerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RateLimit(1, time.Hour))
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	get := func(addr string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		return resp
	}

	require.Equal(t, http.StatusOK, get("203.0.113.7:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, get("203.0.113.7:1234").Code)

	// A different client has its own budget.
	assert.Equal(t, http.StatusOK, get("198.51.100.9:1234").Code)
}
