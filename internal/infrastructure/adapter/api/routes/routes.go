package routes

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups everything the router dispatches to
type Handlers struct {
	Auth       *handler.AuthHandler
	Prediction *handler.PredictionHandler
	Admin      *handler.AdminHandler
	Health     *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API.
// Generation routes sit behind both the bearer check and the rate limiter.
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	authUseCase usecase.AuthUseCase,
	limiter *middleware.RateLimiter,
) {
	requireAuth := middleware.Auth(authUseCase)

	api := router.Group("/api")
	{
		// GET|HEAD /api/heartbeat
		api.GET("/heartbeat", handlers.Health.Heartbeat)
		api.HEAD("/heartbeat", handlers.Health.Heartbeat)
	}

	auth := api.Group("/auth")
	{
		// POST /api/auth/register
		auth.POST("/register", handlers.Auth.Register)

		// POST /api/auth/login
		auth.POST("/login", handlers.Auth.Login)

		// GET /api/auth/me
		auth.GET("/me", requireAuth, handlers.Auth.Me)
	}

	predictions := api.Group("/predictions")
	{
		// GET /api/predictions
		predictions.GET("", handlers.Prediction.List)

		// GET /api/predictions/elites
		predictions.GET("/elites", handlers.Prediction.ListElite)

		// GET /api/predictions/elites/slip
		predictions.GET("/elites/slip", handlers.Prediction.EliteSlip)

		// POST /api/predictions/generate
		predictions.POST("/generate", requireAuth, limiter.Middleware(), handlers.Prediction.Generate)

		// POST /api/predictions/daily-slip
		predictions.POST("/daily-slip", requireAuth, limiter.Middleware(), handlers.Prediction.DailySlip)
	}

	admin := api.Group("/admin", requireAuth)
	{
		// POST /api/admin/seed-predictions
		admin.POST("/seed-predictions", handlers.Admin.SeedPredictions)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, allowedOrigins []string) {
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	if len(allowedOrigins) > 0 {
		router.Use(middleware.CORS(allowedOrigins))
	}
}
