package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	custommiddleware "botdesk/internal/middleware"
)

// RouterConfig holds all dependencies for routing
type RouterConfig struct {
	AuthHandler   *AuthHandler
	UserHandler   *UserHandler
	BotHandler    *BotHandler
	MarketHandler *MarketHandler
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(e *echo.Echo, config *RouterConfig) {
	// Middleware
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Skip logging for the health probe to reduce noise
			return c.Request().URL.Path == "/health"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())
	e.Use(middleware.Secure())

	// Health check
	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "botdesk-api",
		})
	})

	// API group
	api := e.Group("/api")

	// Auth routes (public)
	auth := api.Group("/auth")
	{
		auth.POST("/login", config.AuthHandler.Login)
		auth.POST("/signup", config.AuthHandler.Signup)
		auth.POST("/logout", config.AuthHandler.Logout)
	}

	// User routes (protected with AuthMiddleware)
	user := api.Group("/user", custommiddleware.AuthMiddleware)
	{
		user.GET("/me", config.UserHandler.GetMe)
		user.PATCH("/me", config.UserHandler.UpdateMe)
	}

	// Bot routes (protected with AuthMiddleware)
	bots := api.Group("/bots", custommiddleware.AuthMiddleware)
	{
		bots.GET("", config.BotHandler.List)
		bots.POST("", config.BotHandler.Create)
		bots.POST("/refresh", config.BotHandler.Refresh)
		bots.GET("/:id", config.BotHandler.Get)
		bots.PATCH("/:id", config.BotHandler.Update)
		bots.DELETE("/:id", config.BotHandler.Delete)
		bots.POST("/:id/toggle", config.BotHandler.Toggle)
	}

	// Portfolio, trade history and dashboard (protected)
	market := api.Group("", custommiddleware.AuthMiddleware)
	{
		market.GET("/portfolio", config.MarketHandler.GetPortfolio)
		market.GET("/portfolio/transactions", config.MarketHandler.GetTransactions)
		market.GET("/trades", config.MarketHandler.GetTrades)
		market.GET("/dashboard", config.MarketHandler.GetDashboard)
	}
}
