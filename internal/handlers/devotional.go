package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/services"
	"github.com/charlesng35/ayumi/pkg/response"
)

// DevotionalHandler serves synchronously generated devotionals and prayers.
// Every endpoint answers with fallback content when generation fails; meta.source
// tells the two apart.
type DevotionalHandler struct {
	svc *services.DevotionalService
}

func NewDevotionalHandler(svc *services.DevotionalService) *DevotionalHandler {
	return &DevotionalHandler{svc: svc}
}

type devotionalRequest struct {
	Topic string `json:"topic" validate:"max=200"`
}

type prayerPromptsRequest struct {
	Verse string `json:"verse" validate:"required,max=2000"`
}

type prayerRequest struct {
	PrayerType string `json:"prayer_type" validate:"required,max=64"`
}

func (h *DevotionalHandler) Devotional(c *gin.Context) {
	var req devotionalRequest
	if !bindOptional(c, &req) {
		return
	}

	devotional, source := h.svc.Devotional(requestContext(c), req.Topic)
	response.SuccessWithMeta(c, http.StatusOK, devotional, &response.Meta{Source: string(source)})
}

func (h *DevotionalHandler) PrayerPrompts(c *gin.Context) {
	var req prayerPromptsRequest
	if !bindAndValidate(c, &req) {
		return
	}

	prompts, source, err := h.svc.PrayerPrompts(requestContext(c), req.Verse)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"prompts": prompts}, &response.Meta{Source: string(source)})
}

func (h *DevotionalHandler) Prayer(c *gin.Context) {
	var req prayerRequest
	if !bindAndValidate(c, &req) {
		return
	}

	prayer, source, err := h.svc.Prayer(requestContext(c), req.PrayerType)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"prayer": prayer}, &response.Meta{Source: string(source)})
}
