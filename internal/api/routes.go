package api

import (
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/middleware"
	"github.com/jcotes2k/digital-growth-marketing-sub002/internal/services"

	"github.com/gin-gonic/gin"
)

var (
	checkoutService  *services.CheckoutService
	paymentService   *services.PaymentService
	generatorService *services.GeneratorService
	rateLimiter      *services.RateLimiter
)

// SetupRoutes sets up all routes
func SetupRoutes(r *gin.Engine) {
	emailService := services.NewEmailService()
	commissionService := services.NewCommissionService(emailService)

	checkoutService = services.NewCheckoutService()
	paymentService = services.NewPaymentService(commissionService)
	generatorService = services.NewGeneratorService(services.NewAIGateway())
	rateLimiter = services.NewRateLimiter()

	// API route group
	api := r.Group("/api")
	{
		// Checkout and payment gateway routes
		checkout := api.Group("/checkout")
		{
			checkout.POST("/session", CreateCheckoutSession)
		}

		payments := api.Group("/payments")
		{
			// No authentication, the payment gateway calls this
			payments.POST("/webhook", PaymentWebhookHandler)
		}

		// Content generator routes
		generate := api.Group("/generate")
		{
			generate.GET("/tools", ListToolsHandler)
			generate.POST("/:tool", GenerateHandler)
		}

		// Affiliate program routes
		affiliates := api.Group("/affiliates")
		{
			affiliates.POST("", RegisterAffiliateHandler)
			affiliates.GET("/:code/stats", AffiliateStatsHandler)
			affiliates.POST("/track", TrackReferralHandler)
		}

		// Subscription status for the UI
		api.GET("/subscriptions/:userId", SubscriptionStatusHandler)

		// Admin routes (require the admin API key)
		admin := api.Group("/admin")
		admin.Use(middleware.AdminAuthMiddleware())
		{
			admin.GET("/stats", AdminStatsHandler)
			admin.GET("/affiliates", AdminAffiliatesHandler)
			admin.PUT("/affiliates/:code/toggle", AdminToggleAffiliateHandler)
			admin.GET("/usage", AdminUsageHandler)
			admin.GET("/transactions", AdminTransactionsHandler)
		}
	}

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "growth-suite",
		})
	})
}
