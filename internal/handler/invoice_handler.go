package handler

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"spendlens/internal/domain"
	"spendlens/internal/service"
)

// InvoiceHandler serves the invoice listing and export endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List handles GET /invoices with search, status, page and limit filters.
func (h *InvoiceHandler) List(c *gin.Context) {
	filter := domain.InvoiceFilter{
		Search: c.Query("search"),
		Status: domain.InvoiceStatus(c.Query("status")),
	}
	filter.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	filter.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))

	rows, total, err := h.invoiceService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}

	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 50
	}
	totalPages := (total + filter.Limit - 1) / filter.Limit

	RespondPaginated(c, rows, PagMeta{
		Page:       filter.Page,
		Limit:      filter.Limit,
		Total:      total,
		TotalPages: totalPages,
	})
}

// Export handles GET /invoices/export?format=csv|xlsx.
func (h *InvoiceHandler) Export(c *gin.Context) {
	filter := domain.InvoiceFilter{
		Search: c.Query("search"),
		Status: domain.InvoiceStatus(c.Query("status")),
	}
	format := c.DefaultQuery("format", "csv")

	result, err := h.invoiceService.Export(c.Request.Context(), filter, format)
	if err != nil {
		HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Data)
}
