package invoices

import "invoicing-dashboard-backend/internal/models"

// Project derives the denormalized listing row from an invoice and its
// customer. The customer fields are a snapshot taken at write time; the
// row is not re-projected when the customer later changes.
func Project(inv *models.Invoice, c *models.Customer) models.InvoiceRow {
	return models.InvoiceRow{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		ImageURL:   c.ImageURL,
		Date:       inv.Date,
		Amount:     inv.Amount,
		Status:     inv.Status,
	}
}
