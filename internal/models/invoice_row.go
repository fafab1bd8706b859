package models

// InvoiceRow is the denormalized read-model row backing the invoices
// table view. Name, Email and ImageURL are a snapshot of the customer as
// of the last successful write, not a live join; they may go stale after
// a customer edit.
type InvoiceRow struct {
	ID         string `gorm:"primaryKey" json:"id"`
	CustomerID string `gorm:"index" json:"customer_id"`
	Name       string `gorm:"index" json:"name"`
	Email      string `json:"email"`
	ImageURL   string `json:"image_url"`
	Date       string `gorm:"index" json:"date"`
	Amount     int64  `json:"amount"`
	Status     string `gorm:"index" json:"status"`
}

func (InvoiceRow) TableName() string {
	return "invoices_table"
}
