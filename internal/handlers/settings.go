package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/services"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/response"
)

type SettingsHandler struct {
	svc *services.SettingsService
}

func NewSettingsHandler(svc *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

// Get returns the user's settings, creating defaults on first access.
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.svc.Get(requestContext(c), c.Param("userID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, settings)
}

// Update accepts a free-form object. Keys without a dedicated column are kept in extra.
func (h *SettingsHandler) Update(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, apperrors.NewBadRequest("invalid JSON payload"))
		return
	}

	settings, err := h.svc.Update(requestContext(c), c.Param("userID"), body)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":  "Settings updated",
		"settings": settings,
	})
}
