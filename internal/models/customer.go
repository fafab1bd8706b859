package models

// Customer is owned by an external customer-management service; this
// backend only ever reads it.
type Customer struct {
	ID       string `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"index" json:"name"`
	Email    string `json:"email"`
	ImageURL string `json:"image_url"`
}

// CustomerField is the trimmed shape used to populate the invoice form's
// customer dropdown.
type CustomerField struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
