package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestLoggerMiddlewarePropagatesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(LoggerMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("request_id"))
	})

	// A caller-supplied id is kept, exposed to handlers, and echoed back
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "trace-7f3a91c2")
	router.ServeHTTP(w, req)
	require.Equal(t, "trace-7f3a91c2", w.Header().Get("X-Request-ID"))
	require.Equal(t, "trace-7f3a91c2", w.Body.String())

	// A missing id is generated
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))

	// Short caller ids must not break the log prefix
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Request-ID", "abc")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}
