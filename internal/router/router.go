package router

import (
	"github.com/gin-gonic/gin"

	"spendlens/internal/config"
	"spendlens/internal/handler"
	"spendlens/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	invoiceH *handler.InvoiceHandler,
	analyticsH *handler.AnalyticsHandler,
	chatH *handler.ChatHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Dashboard aggregates
	v1.GET("/stats", analyticsH.Stats)
	v1.GET("/vendors/top", analyticsH.TopVendors)

	analytics := v1.Group("/analytics")
	analytics.GET("/invoice-trends", analyticsH.InvoiceTrends)
	analytics.GET("/category-spend", analyticsH.CategorySpend)
	analytics.GET("/cash-outflow", analyticsH.CashOutflow)

	// Invoices
	v1.GET("/invoices", invoiceH.List)
	v1.GET("/invoices/export", invoiceH.Export)

	// Natural-language queries
	v1.POST("/chat", chatH.Ask)
	v1.POST("/sql", chatH.RunSQL)

	return r
}
