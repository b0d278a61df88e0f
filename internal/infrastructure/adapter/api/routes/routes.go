package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/launchvest/launchvest/internal/domain/entity"
	"github.com/launchvest/launchvest/internal/domain/port/auth"
	coreport "github.com/launchvest/launchvest/internal/domain/port/core"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/handler"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/api/middleware"
	"github.com/launchvest/launchvest/internal/infrastructure/adapter/cache"
)

// Handlers bundles everything SetupRoutes needs to wire the API
type Handlers struct {
	Auth       *handler.AuthHandler
	User       *handler.UserHandler
	Campaign   *handler.CampaignHandler
	Investment *handler.InvestmentHandler
	Report     *handler.ReportHandler
	Admin      *handler.AdminHandler
}

// SetupRoutes configures all the routes for the API. Campaign browsing
// is public; everything else requires a bearer token, and the admin
// group additionally requires the admin role. When a redis client is
// provided, public campaign reads are served from the response cache.
func SetupRoutes(
	router *gin.Engine,
	handlers Handlers,
	tokens auth.TokenService,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	logger coreport.Logger,
) {
	authRequired := middleware.Auth(tokens, logger)
	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	// Public routes
	router.POST("/auth/register", handlers.Auth.Register)
	router.POST("/auth/login", handlers.Auth.Login)

	publicCampaigns := router.Group("/campaigns")
	if redisClient != nil {
		publicCampaigns.Use(cache.ResponseCache(redisClient, cacheTTL, logger))
	}
	{
		publicCampaigns.GET("", handlers.Campaign.List)
		publicCampaigns.GET("/:id", handlers.Campaign.Get)
		publicCampaigns.GET("/:id/reviews", handlers.Campaign.ListReviews)
	}

	// Authenticated routes
	authed := router.Group("", authRequired)
	{
		authed.GET("/auth/verify", handlers.Auth.Verify)

		authed.GET("/users/me", handlers.User.GetProfile)
		authed.PUT("/users/me", handlers.User.UpdateProfile)

		authed.POST("/campaigns", handlers.Campaign.Create)
		authed.PUT("/campaigns/:id", handlers.Campaign.Update)
		authed.POST("/campaigns/:id/activate", handlers.Campaign.Activate)
		authed.POST("/campaigns/:id/reviews", handlers.Campaign.AddReview)

		authed.POST("/investments", handlers.Investment.Create)
		authed.GET("/investments", handlers.Investment.List)
		authed.GET("/investments/:id", handlers.Investment.Get)

		authed.GET("/dashboards/entrepreneur", handlers.Report.EntrepreneurDashboard)
		authed.GET("/dashboards/investor", handlers.Report.InvestorDashboard)
	}

	// Admin routes
	admin := router.Group("/admin", authRequired, adminOnly)
	{
		admin.GET("/users", handlers.Admin.ListUsers)
		admin.GET("/campaigns", handlers.Campaign.List)
		admin.GET("/dashboard", handlers.Admin.PlatformStats)
		admin.PUT("/campaigns/:id/status", handlers.Admin.OverrideCampaignStatus)
		admin.PUT("/investments/:id/status", handlers.Admin.OverrideInvestmentStatus)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	// Apply middlewares in the correct order
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
