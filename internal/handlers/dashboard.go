package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/dashboard"
	"github.com/charlesng35/ayumi/pkg/response"
)

// Response headers describing a served dashboard.
const (
	HeaderContentSource = "X-Content-Source"
	HeaderDayKey        = "X-Day-Key"
)

type DashboardHandler struct {
	svc *dashboard.Service
}

func NewDashboardHandler(svc *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Today always answers 200 with either the stored or the fallback payload.
func (h *DashboardHandler) Today(c *gin.Context) {
	result := h.svc.Today(requestContext(c))

	c.Header(HeaderContentSource, string(result.Source))
	c.Header(HeaderDayKey, result.DayKey)
	c.Header("Cache-Control", "no-store")
	response.Raw(c, http.StatusOK, result.Payload)
}
