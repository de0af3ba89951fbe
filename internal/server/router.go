// Package server assembles the HTTP router of the journal API.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/k1ngsterr1/quick-notes/internal/docs" // swagger spec
	apperrors "github.com/k1ngsterr1/quick-notes/internal/errors"
	"github.com/k1ngsterr1/quick-notes/internal/handlers"
	"github.com/k1ngsterr1/quick-notes/internal/middleware"
	"github.com/k1ngsterr1/quick-notes/internal/services"
)

// Deps are the services and settings the router is built from.
type Deps struct {
	Records   services.RecordServicer
	Settings  services.SettingsServicer
	JWTSecret string
}

// NewRouter wires middleware, health, swagger and the v1 API.
func NewRouter(deps Deps) *gin.Engine {
	recordHandler := handlers.NewRecordHandler(deps.Records)
	settingsHandler := handlers.NewSettingsHandler(deps.Settings)
	normalizeHandler := handlers.NewNormalizeHandler()

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Unknown routes go through ErrorHandler so they get the JSON envelope.
	router.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperrors.WithMessage(apperrors.ErrNotFound, "Route not found"))
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.DeviceAuth(deps.JWTSecret))

	records := v1.Group("/records")
	records.GET("", recordHandler.ListRecords)
	records.POST("", recordHandler.CreateRecord)
	records.POST("/refresh", recordHandler.RefreshRecords)
	records.GET("/recent", recordHandler.RecentRecords)
	records.DELETE("/:id", recordHandler.DeleteRecord)

	v1.GET("/stats", recordHandler.GetStats)

	settings := v1.Group("/settings")
	settings.GET("", settingsHandler.GetSettings)
	settings.PUT("", settingsHandler.UpdateSettings)
	settings.POST("/dark-mode", settingsHandler.ToggleDarkMode)

	normalize := v1.Group("/normalize")
	normalize.POST("/percent", normalizeHandler.Percent)
	normalize.POST("/rekind", normalizeHandler.Rekind)
	normalize.POST("/currency", normalizeHandler.Currency)
	normalize.POST("/content", normalizeHandler.Content)

	return router
}
