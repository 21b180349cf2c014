package api

import (
	"github.com/gin-gonic/gin"

	"github.com/charlesng35/ayumi/internal/handlers"
)

func registerHighlightRoutes(api *gin.RouterGroup, handler *handlers.HighlightHandler) {
	highlights := api.Group("/highlights")
	{
		highlights.POST("", handler.Create)
		highlights.GET("/:userID", handler.ListByUser)
		highlights.GET("/:userID/:book/:chapter", handler.ListByChapter)
		highlights.DELETE("/:id", handler.Delete)
	}
}

func registerJournalRoutes(api *gin.RouterGroup, handler *handlers.JournalHandler) {
	journal := api.Group("/journal")
	{
		journal.POST("", handler.Create)
		journal.GET("/entry/:id", handler.Get)
		journal.PUT("/entry/:id", handler.Update)
		journal.DELETE("/entry/:id", handler.Delete)
		journal.GET("/:userID", handler.ListByUser)
	}
}

func registerSettingsRoutes(api *gin.RouterGroup, handler *handlers.SettingsHandler) {
	api.GET("/settings/:userID", handler.Get)
	api.PUT("/settings/:userID", handler.Update)
}

func registerStatusRoutes(api *gin.RouterGroup, handler *handlers.StatusHandler) {
	api.POST("/status", handler.Create)
	api.GET("/status", handler.List)
}
