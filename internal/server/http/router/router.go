package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/customerhub/internal/server/http/handlers"
	"github.com/polkiloo/customerhub/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.Facade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithDecompressFn(gzip.DefaultDecompressHandle)))

	authHandler := handlers.NewAuthHandler(facade)
	customerHandler := handlers.NewCustomerHandler(facade)

	engine.POST("/register", authHandler.Register)
	engine.POST("/login", authHandler.Login)

	// Listing and searching stay public.
	engine.GET("/customers", customerHandler.List)
	engine.GET("/search", customerHandler.Search)

	secured := engine.Group("")
	secured.Use(middleware.AuthRequired(facade))
	secured.GET("/protected-route", authHandler.Protected)
	secured.GET("/customers/:id", customerHandler.Get)
	secured.PUT("/customers/:id", customerHandler.Update)
	secured.DELETE("/customers/:id", customerHandler.Delete)

	return engine
}
