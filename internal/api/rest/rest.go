package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, adminAuth gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Purchase endpoints (public)
		v1.POST("/purchases", handler.SubmitPurchase)
		v1.GET("/purchases/:tx_hash", handler.GetPurchaseStatus)
		v1.GET("/buyers/:address/purchases", handler.GetBuyerPurchases)

		// Sale read endpoints (public)
		v1.GET("/rounds", handler.ListRounds)
		v1.GET("/rounds/active", handler.GetActiveRound)
		v1.GET("/sale", handler.GetSale)
		v1.GET("/price", handler.GetPrice)

		// Admin endpoints (API key or JWT)
		admin := v1.Group("/admin", adminAuth)
		{
			admin.POST("/rounds/:round/activate", handler.ActivateRound)
			admin.POST("/rounds/:round/complete", handler.CompleteRound)
			admin.POST("/rounds/:round/reset", handler.ResetRound)
			admin.POST("/sale/finish", handler.FinishSale)
			admin.PUT("/sale/total-raised", handler.SetTotalRaised)
			admin.PUT("/sale/total-raised/mode", handler.SetTotalRaisedMode)
		}
	}
}
