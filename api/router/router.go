package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"blog-agent/api/handlers"
	"blog-agent/api/middleware"
	"blog-agent/config"
	_ "blog-agent/docs"
	"blog-agent/services"
	"blog-agent/writer"
)

func New() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestTrace())
	r.Use(middleware.RequestLoggingMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	callbackSvc := services.NewCallbackService(config.GetConfig().Writer.Mode, writer.GeminiWriter{})
	r.POST("/callback", handlers.CallbackHandler(callbackSvc))

	return r
}
