package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/handlers"
	"github.com/Techevery/Native-admin-dashboard-backend/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StorefrontFacade, allowedOrigins []string, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(corsMiddleware(allowedOrigins))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	subcategoryHandler := handlers.NewSubcategoryHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/login", authHandler.Login)
	authAdmin := auth.Group("")
	authAdmin.Use(middleware.AuthRequired(facade))
	authAdmin.POST("/users", authHandler.CreateUser)
	authAdmin.POST("/users/invite", authHandler.InviteUser)

	// public storefront reads plus checkout
	api.GET("/categories", categoryHandler.Overview)
	api.GET("/categories/:id", categoryHandler.Get)
	api.GET("/subcategories", subcategoryHandler.List)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.POST("/orders", orderHandler.Checkout)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.POST("/categories", categoryHandler.Create)
	protected.PATCH("/categories/:id", categoryHandler.Update)
	protected.DELETE("/categories/:id", categoryHandler.Delete)
	protected.POST("/subcategories", subcategoryHandler.Create)
	protected.PATCH("/subcategories/:id", subcategoryHandler.Update)
	protected.DELETE("/subcategories/:id", subcategoryHandler.Delete)
	protected.POST("/products", productHandler.Create)
	protected.PATCH("/products/:id", productHandler.Update)
	protected.DELETE("/products/:id", productHandler.Delete)
	protected.GET("/orders", orderHandler.List)
	protected.GET("/orders/:id", orderHandler.Get)
	protected.PATCH("/orders/:id/status", orderHandler.UpdateStatus)

	return engine
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(allowedOrigins) == 0 {
		cfg.AllowAllOrigins = true
		cfg.AllowCredentials = false
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
