package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/catalog"
	"github.com/charlesng35/ayumi/internal/services"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/response"
)

// BibleHandler serves the version catalog and generated chapter text.
type BibleHandler struct {
	catalog   *catalog.Catalog
	scripture *services.ScriptureService
}

func NewBibleHandler(cat *catalog.Catalog, scripture *services.ScriptureService) *BibleHandler {
	return &BibleHandler{catalog: cat, scripture: scripture}
}

type readChapterRequest struct {
	Book    string `json:"book" validate:"required,max=64"`
	Chapter int    `json:"chapter" validate:"required,min=1,max=150"`
	Version string `json:"version" validate:"max=32"`
}

func (h *BibleHandler) Versions(c *gin.Context) {
	versions := h.catalog.Versions()
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"versions": versions}, &response.Meta{Total: len(versions)})
}

func (h *BibleHandler) VersionsByLanguage(c *gin.Context) {
	code := strings.TrimSpace(c.Param("code"))
	versions := h.catalog.VersionsByLanguage(code)
	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"language_code": code,
		"versions":      versions,
	}, &response.Meta{Total: len(versions)})
}

func (h *BibleHandler) Version(c *gin.Context) {
	version, ok := h.catalog.Version(c.Param("id"))
	if !ok {
		response.Error(c, apperrors.ErrVersionNotFound)
		return
	}
	response.Success(c, http.StatusOK, version)
}

func (h *BibleHandler) Languages(c *gin.Context) {
	languages := h.catalog.Languages()
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"languages": languages}, &response.Meta{Total: len(languages)})
}

// Read returns a chapter with its background context. Generation failures
// yield empty verses and a null context rather than an error.
func (h *BibleHandler) Read(c *gin.Context) {
	var req readChapterRequest
	if !bindAndValidate(c, &req) {
		return
	}

	reading, err := h.scripture.Read(requestContext(c), req.Book, req.Chapter, req.Version)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, reading)
}

// Chapter returns verses only, e.g. GET /api/bible/John/3?version=NIV.
func (h *BibleHandler) Chapter(c *gin.Context) {
	chapter, ok := pathChapter(c)
	if !ok {
		return
	}
	book := strings.TrimSpace(c.Param("book"))

	verses, version, err := h.scripture.Chapter(requestContext(c), book, chapter, c.Query("version"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"book":    book,
		"chapter": chapter,
		"version": version,
		"verses":  verses,
	})
}
