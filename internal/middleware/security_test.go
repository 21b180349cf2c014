package middleware

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/api/fonts", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.NoRoute(NotFoundHandler)

	for _, path := range []string{"/api/fonts", "/missing"} {
		w := serve(r, http.MethodGet, path)
		require.Equal(t, "DENY", w.Header().Get("X-Frame-Options"), path)
		require.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"), path)
		require.Equal(t, DefaultContentSecurityPolicy, w.Header().Get("Content-Security-Policy"), path)
		require.Equal(t, "no-referrer", w.Header().Get("Referrer-Policy"), path)
		require.Equal(t, "cross-origin", w.Header().Get("Cross-Origin-Resource-Policy"), path)
	}
}
