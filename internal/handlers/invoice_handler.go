package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"invoicing-dashboard-backend/internal/services/invoices"
)

// InvoiceHandler is the form submission boundary: it translates form
// posts into coordinator calls and coordinator outcomes into either a
// redirect signal or a {message, errors} payload for re-rendering.
type InvoiceHandler struct {
	coordinator *invoices.Service
}

func NewInvoiceHandler(coordinator *invoices.Service) *InvoiceHandler {
	return &InvoiceHandler{coordinator: coordinator}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var draft invoices.FormDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	outcome, err := h.coordinator.Create(c.Request.Context(), draft)
	if err != nil {
		h.respondMutationError(c, "Create", err)
		return
	}
	c.JSON(http.StatusCreated, outcome)
}

func (h *InvoiceHandler) UpdateInvoice(c *gin.Context) {
	var draft invoices.FormDraft
	if err := c.ShouldBind(&draft); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}

	outcome, err := h.coordinator.Update(c.Request.Context(), c.Param("id"), draft)
	if err != nil {
		h.respondMutationError(c, "Update", err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	outcome, err := h.coordinator.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondMutationError(c, "Delete", err)
		return
	}
	c.JSON(http.StatusOK, outcome)
}

// respondMutationError maps the coordinator's failure taxonomy onto the
// form boundary. Internal transport detail never leaks: persistence
// failures all surface as the generic database-error message.
func (h *InvoiceHandler) respondMutationError(c *gin.Context, op string, err error) {
	var verr *invoices.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"message": verr.Message,
			"errors":  verr.Fields,
		})
		return
	}
	if errors.Is(err, invoices.ErrCustomerNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Customer not found."})
		return
	}
	if errors.Is(err, invoices.ErrInvoiceNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice not found."})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"message": "Database Error: Failed to " + op + " Invoice.",
	})
}
