package api

import (
	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/handlers"
)

func registerDashboardRoutes(api *gin.RouterGroup, handler *handlers.DashboardHandler) {
	api.GET("/dashboard", handler.Today)
}

func registerBibleRoutes(api *gin.RouterGroup, handler *handlers.BibleHandler, limit gin.HandlerFunc) {
	bible := api.Group("/bible")
	{
		bible.GET("/versions", handler.Versions)
		bible.GET("/versions/language/:code", handler.VersionsByLanguage)
		bible.GET("/versions/:id", handler.Version)
		bible.GET("/languages", handler.Languages)
		bible.POST("/read", limit, handler.Read)
		bible.GET("/:book/:chapter", limit, handler.Chapter)
	}
}

func registerCatalogRoutes(api *gin.RouterGroup, handler *handlers.CatalogHandler) {
	fonts := api.Group("/fonts")
	{
		fonts.GET("", handler.Fonts)
		fonts.GET("/category/:category", handler.FontsByCategory)
		fonts.GET("/:id", handler.Font)
	}

	colors := api.Group("/colors")
	{
		colors.GET("", handler.Colors)
		colors.GET("/category/:category", handler.ColorsByCategory)
		colors.GET("/:id", handler.Color)
	}

	worship := api.Group("/worship")
	{
		worship.GET("/artists", handler.Artists)
		worship.GET("/artists/:id", handler.Artist)
		worship.GET("/songs", handler.Songs)
		worship.GET("/search/:query", handler.SearchSongs)
		worship.GET("/artist/:id/songs", handler.ArtistSongs)
	}
}

func registerDevotionalRoutes(api *gin.RouterGroup, handler *handlers.DevotionalHandler, limit gin.HandlerFunc) {
	api.POST("/devotional/generate", limit, handler.Devotional)

	prayer := api.Group("/prayer")
	prayer.Use(limit)
	{
		prayer.POST("/prompts", handler.PrayerPrompts)
		prayer.POST("/generate", handler.Prayer)
	}
}
