package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/pkg/response"
)

// Version is reported by the info endpoint. Overridden at build time with -ldflags.
var Version = "2.0.0"

// Info describes the API and its main route groups.
func Info(provider string) gin.HandlerFunc {
	payload := gin.H{
		"message":    "Ayumi API - Walking with God",
		"version":    Version,
		"powered_by": provider,
		"endpoints": gin.H{
			"bible":      "/api/bible/*",
			"devotional": "/api/devotional/*",
			"prayer":     "/api/prayer/*",
			"fonts":      "/api/fonts",
			"colors":     "/api/colors",
			"worship":    "/api/worship/*",
			"dashboard":  "/api/dashboard",
		},
	}
	return func(c *gin.Context) {
		response.Success(c, http.StatusOK, payload)
	}
}
