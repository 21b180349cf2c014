package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/services"
	"github.com/charlesng35/ayumi/pkg/response"
)

// StatusHandler records client heartbeats.
type StatusHandler struct {
	svc *services.StatusService
}

func NewStatusHandler(svc *services.StatusService) *StatusHandler {
	return &StatusHandler{svc: svc}
}

type statusCheckRequest struct {
	ClientName string `json:"client_name" validate:"required,max=128"`
}

func (h *StatusHandler) Create(c *gin.Context) {
	var req statusCheckRequest
	if !bindAndValidate(c, &req) {
		return
	}

	check, err := h.svc.Create(requestContext(c), req.ClientName)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, check)
}

func (h *StatusHandler) List(c *gin.Context) {
	checks, err := h.svc.List(requestContext(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, checks, &response.Meta{Total: len(checks)})
}
