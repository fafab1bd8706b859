package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"invoicing-dashboard-backend/internal/services/query"
)

// QueryHandler serves the dashboard's read side: the invoices table,
// form prefill, and the summary panels.
type QueryHandler struct {
	queries *query.Service
}

func NewQueryHandler(queries *query.Service) *QueryHandler {
	return &QueryHandler{queries: queries}
}

func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("p", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// ListInvoices serves one page of the invoices table. Query params
// mirror the mock API: p (page), l (page size), filter (substring).
// Ordering is fixed to date descending.
func (h *QueryHandler) ListInvoices(c *gin.Context) {
	size, err := strconv.Atoi(c.DefaultQuery("l", strconv.Itoa(query.ItemsPerPage)))
	if err != nil {
		size = query.ItemsPerPage
	}
	rows := h.queries.FilteredRows(c.Request.Context(), c.Query("filter"), pageParam(c), size)
	c.JSON(http.StatusOK, gin.H{"invoices": rows})
}

func (h *QueryHandler) InvoicePages(c *gin.Context) {
	pages := h.queries.Pages(c.Request.Context(), c.Query("filter"))
	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *QueryHandler) GetInvoice(c *gin.Context) {
	form, err := h.queries.InvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found."})
		return
	}
	c.JSON(http.StatusOK, form)
}

func (h *QueryHandler) LatestInvoices(c *gin.Context) {
	latest, err := h.queries.LatestInvoices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch the latest invoices."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"invoices": latest})
}

func (h *QueryHandler) CardData(c *gin.Context) {
	cards, err := h.queries.CardData(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch card data."})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *QueryHandler) Revenue(c *gin.Context) {
	revenue, err := h.queries.Revenue(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch revenue data."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"revenue": revenue})
}

func (h *QueryHandler) ListCustomers(c *gin.Context) {
	customers, err := h.queries.CustomerFields(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch all customers."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"customers": customers})
}
