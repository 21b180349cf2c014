package middleware

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/charlesng35/ayumi/pkg/response"
)

func TestErrorEnvelopes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(Recovery())
	r.GET("/api/dashboard", func(c *gin.Context) {
		panic("template missing")
	})
	r.NoRoute(NotFoundHandler)
	r.NoMethod(MethodNotAllowedHandler)

	cases := []struct {
		method  string
		path    string
		status  int
		code    string
		message string
	}{
		{http.MethodGet, "/api/dashboard", http.StatusInternalServerError, "INTERNAL_SERVER_ERROR", ""},
		{http.MethodGet, "/api/unknown", http.StatusNotFound, "NOT_FOUND", "route /api/unknown not found"},
		{http.MethodPost, "/api/dashboard", http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method POST not allowed"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := serve(r, tc.method, tc.path)
			require.Equal(t, tc.status, w.Code)

			var payload response.Response
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
			require.False(t, payload.Success)
			require.Equal(t, tc.code, payload.Error.Code)
			if tc.message != "" {
				require.Equal(t, tc.message, payload.Error.Message)
			}
		})
	}
}
