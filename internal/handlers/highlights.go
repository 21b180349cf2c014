package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/services"
	"github.com/charlesng35/ayumi/pkg/response"
)

type HighlightHandler struct {
	svc *services.HighlightService
}

func NewHighlightHandler(svc *services.HighlightService) *HighlightHandler {
	return &HighlightHandler{svc: svc}
}

// Create highlights a verse. Highlighting the same verse again replaces the color.
func (h *HighlightHandler) Create(c *gin.Context) {
	var input services.CreateHighlightInput
	if !bindAndValidate(c, &input) {
		return
	}

	highlight, err := h.svc.Create(requestContext(c), input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, highlight)
}

func (h *HighlightHandler) ListByUser(c *gin.Context) {
	highlights, err := h.svc.ListByUser(requestContext(c), c.Param("userID"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"highlights": highlights}, &response.Meta{Total: len(highlights)})
}

func (h *HighlightHandler) ListByChapter(c *gin.Context) {
	chapter, ok := pathChapter(c)
	if !ok {
		return
	}

	highlights, err := h.svc.ListByChapter(requestContext(c), c.Param("userID"), c.Param("book"), chapter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"highlights": highlights}, &response.Meta{Total: len(highlights)})
}

func (h *HighlightHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(requestContext(c), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Highlight deleted"})
}
