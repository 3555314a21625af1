package server

import (
	"github.com/cyphera/cyphera-wallets/internal/handlers"
	"github.com/cyphera/cyphera-wallets/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options configures the router
type Options struct {
	Wallets        handlers.WalletManager
	Receipts       handlers.DepositReceiver
	APIKeys        middleware.APIKeyStore
	RateLimiter    *middleware.RateLimiter
	AllowedOrigins []string
}

// NewRouter builds the gin engine with every route registered
func NewRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(configureCORS(opts.AllowedOrigins))
	router.Use(middleware.CorrelationIDMiddleware())
	if opts.RateLimiter != nil {
		router.Use(opts.RateLimiter.Middleware())
	}

	InitializeRoutes(router, opts)
	return router
}

// InitializeRoutes registers the health, provider webhook and wallet routes
func InitializeRoutes(router *gin.Engine, opts Options) {
	healthHandler := handlers.NewHealthHandler()
	walletHandler := handlers.NewWalletHandler(opts.Wallets)
	alchemyHandler := handlers.NewAlchemyWebhookHandler(opts.Receipts)

	router.GET("/health", healthHandler.Health)

	// Provider deliveries authenticate with their signature, not an API key
	router.POST("/webhooks/alchemy", alchemyHandler.HandleWebhook)

	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIKeyAuth(opts.APIKeys))
	{
		wallets := v1.Group("/wallets")
		{
			wallets.POST("", walletHandler.CreateWallet)
			wallets.GET("", walletHandler.ListWallets)
			wallets.GET("/:wallet_id", walletHandler.GetWallet)
			wallets.DELETE("/:wallet_id", walletHandler.DeleteWallet)
		}
	}
}

func configureCORS(allowedOrigins []string) gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()
	if len(allowedOrigins) == 0 {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-API-Key", middleware.CorrelationIDHeader}
	corsConfig.ExposeHeaders = []string{middleware.CorrelationIDHeader, "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"}
	return cors.New(corsConfig)
}
