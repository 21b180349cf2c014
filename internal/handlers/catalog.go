package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/catalog"
	apperrors "github.com/charlesng35/ayumi/pkg/errors"
	"github.com/charlesng35/ayumi/pkg/response"
)

// CatalogHandler serves fonts, highlight colors and the worship library.
type CatalogHandler struct {
	catalog *catalog.Catalog
}

func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: cat}
}

func (h *CatalogHandler) Fonts(c *gin.Context) {
	fonts := h.catalog.Fonts()
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"fonts": fonts}, &response.Meta{Total: len(fonts)})
}

func (h *CatalogHandler) FontsByCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Param("category"))
	fonts := h.catalog.FontsByCategory(category)
	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"category": category,
		"fonts":    fonts,
	}, &response.Meta{Total: len(fonts)})
}

func (h *CatalogHandler) Font(c *gin.Context) {
	font, ok := h.catalog.Font(c.Param("id"))
	if !ok {
		response.Error(c, apperrors.ErrFontNotFound)
		return
	}
	response.Success(c, http.StatusOK, font)
}

func (h *CatalogHandler) Colors(c *gin.Context) {
	colors := h.catalog.Colors()
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"colors": colors}, &response.Meta{Total: len(colors)})
}

func (h *CatalogHandler) ColorsByCategory(c *gin.Context) {
	category := strings.TrimSpace(c.Param("category"))
	colors := h.catalog.ColorsByCategory(category)
	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"category": category,
		"colors":   colors,
	}, &response.Meta{Total: len(colors)})
}

func (h *CatalogHandler) Color(c *gin.Context) {
	color, ok := h.catalog.Color(c.Param("id"))
	if !ok {
		response.Error(c, apperrors.ErrColorNotFound)
		return
	}
	response.Success(c, http.StatusOK, color)
}

func (h *CatalogHandler) Artists(c *gin.Context) {
	artists := h.catalog.Artists()
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"artists": artists}, &response.Meta{Total: len(artists)})
}

func (h *CatalogHandler) Artist(c *gin.Context) {
	artist, ok := h.catalog.Artist(c.Param("id"))
	if !ok {
		response.Error(c, apperrors.ErrArtistNotFound)
		return
	}
	response.Success(c, http.StatusOK, artist)
}

func (h *CatalogHandler) Songs(c *gin.Context) {
	songs := h.catalog.Songs()
	response.SuccessWithMeta(c, http.StatusOK, gin.H{"songs": songs}, &response.Meta{Total: len(songs)})
}

// SearchSongs matches the query against song titles and artist names.
func (h *CatalogHandler) SearchSongs(c *gin.Context) {
	query := strings.TrimSpace(c.Param("query"))
	if query == "" {
		response.Error(c, apperrors.NewBadRequest("query is required"))
		return
	}
	results := h.catalog.SearchSongs(query)
	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"query":   query,
		"results": results,
	}, &response.Meta{Total: len(results)})
}

// ArtistSongs lists an artist's songs. Unknown artists yield an empty list.
func (h *CatalogHandler) ArtistSongs(c *gin.Context) {
	artistID := strings.TrimSpace(c.Param("id"))
	songs := h.catalog.ArtistSongs(artistID)
	response.SuccessWithMeta(c, http.StatusOK, gin.H{
		"artist_id": artistID,
		"songs":     songs,
	}, &response.Meta{Total: len(songs)})
}
