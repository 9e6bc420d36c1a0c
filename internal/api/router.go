package api

import (
	"github.com/gin-gonic/gin"

	v1 "github.com/orderdocs/orderdocs/internal/api/v1"
	"github.com/orderdocs/orderdocs/internal/config"
	"github.com/orderdocs/orderdocs/internal/logger"
	"github.com/orderdocs/orderdocs/internal/rest/middleware"
)

type Handlers struct {
	Document *v1.DocumentHandler
	Email    *v1.EmailHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers, cfg, logger)

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers, cfg *config.Configuration, logger *logger.Logger) {
	// Interactive generation requires the manage-orders capability and a
	// valid anti-forgery token.
	documents := router.Group("/documents",
		middleware.RequireManageOrders(cfg, logger),
		middleware.RequireRequestToken(cfg, logger),
	)
	{
		documents.POST("/generate", handlers.Document.Generate)
	}

	// The email system authenticates with the API key only; it sends no
	// interactive token.
	emails := router.Group("/emails", middleware.RequireManageOrders(cfg, logger))
	{
		emails.POST("/:trigger_id/attachments", handlers.Email.Attachments)
	}
}
