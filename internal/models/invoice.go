package models

// Invoice statuses. The form boundary only ever submits these two values.
const (
	StatusPending = "pending"
	StatusPaid    = "paid"
)

// Invoice is the normalized record, keyed by id. Amount is stored in
// integer minor units (cents). Updates are full replaces, never patches.
type Invoice struct {
	ID         string `gorm:"primaryKey" json:"id"`
	CustomerID string `gorm:"index" json:"customer_id"`
	Amount     int64  `gorm:"index" json:"amount"`
	Date       string `gorm:"index" json:"date"` // ISO YYYY-MM-DD
	Status     string `gorm:"index" json:"status"`
}

func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusPaid
}
