package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	handler "invoicing-dashboard-backend/internal/handlers"
	"invoicing-dashboard-backend/internal/logger"
	"invoicing-dashboard-backend/internal/services/invoices"
	"invoicing-dashboard-backend/internal/services/query"
	"invoicing-dashboard-backend/internal/store"
)

func RegisterRoutes(r *gin.Engine, stores *store.Stores, log *logger.Logger) {
	cache := query.NewCache()
	queries := query.NewService(stores, cache, log)
	coordinator := invoices.NewService(stores, cache, log)

	invoiceHandler := handler.NewInvoiceHandler(coordinator)
	queryHandler := handler.NewQueryHandler(queries)

	api := r.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	inv := api.Group("/invoices")
	{
		inv.GET("", queryHandler.ListInvoices)
		inv.GET("/pages", queryHandler.InvoicePages)
		inv.GET("/latest", queryHandler.LatestInvoices)
		inv.GET("/:id", queryHandler.GetInvoice)
		inv.POST("", invoiceHandler.CreateInvoice)
		inv.PUT("/:id", invoiceHandler.UpdateInvoice)
		inv.DELETE("/:id", invoiceHandler.DeleteInvoice)
	}

	api.GET("/customers", queryHandler.ListCustomers)

	dashboard := api.Group("/dashboard")
	{
		dashboard.GET("/cards", queryHandler.CardData)
		dashboard.GET("/revenue", queryHandler.Revenue)
	}
}
