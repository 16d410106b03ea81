package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"spendlens/internal/service"
)

// AnalyticsHandler serves the dashboard aggregate endpoints.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Stats handles GET /stats.
func (h *AnalyticsHandler) Stats(c *gin.Context) {
	stats, err := h.analyticsService.Dashboard(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, stats)
}

// InvoiceTrends handles GET /invoice-trends.
func (h *AnalyticsHandler) InvoiceTrends(c *gin.Context) {
	trends, err := h.analyticsService.InvoiceTrends(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, trends)
}

// CategorySpend handles GET /category-spend.
func (h *AnalyticsHandler) CategorySpend(c *gin.Context) {
	spend, err := h.analyticsService.CategorySpend(c.Request.Context())
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, spend)
}

// CashOutflow handles GET /cash-outflow?months=N.
func (h *AnalyticsHandler) CashOutflow(c *gin.Context) {
	months, _ := strconv.Atoi(c.DefaultQuery("months", "6"))

	outflow, err := h.analyticsService.CashOutflow(c.Request.Context(), months)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, outflow)
}

// TopVendors handles GET /vendors/top?limit=N.
func (h *AnalyticsHandler) TopVendors(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	vendors, err := h.analyticsService.TopVendors(c.Request.Context(), limit)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, vendors)
}
