package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/services"
	"github.com/charlesng35/ayumi/pkg/response"
)

type JournalHandler struct {
	svc *services.JournalService
}

func NewJournalHandler(svc *services.JournalService) *JournalHandler {
	return &JournalHandler{svc: svc}
}

func (h *JournalHandler) Create(c *gin.Context) {
	var input services.CreateJournalInput
	if !bindAndValidate(c, &input) {
		return
	}

	entry, err := h.svc.Create(requestContext(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, entry)
}

// ListByUser returns a user's entries, newest first.
func (h *JournalHandler) ListByUser(c *gin.Context) {
	entries, err := h.svc.ListByUser(requestContext(c), c.Param("userID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"entries": entries}, &response.Meta{Total: len(entries)})
}

func (h *JournalHandler) Get(c *gin.Context) {
	entry, err := h.svc.Get(requestContext(c), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

func (h *JournalHandler) Update(c *gin.Context) {
	var input services.UpdateJournalInput
	if !bindAndValidate(c, &input) {
		return
	}

	entry, err := h.svc.Update(requestContext(c), c.Param("id"), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, entry)
}

func (h *JournalHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Journal entry deleted"})
}
