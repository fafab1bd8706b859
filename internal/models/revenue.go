package models

// Revenue is one month of the dashboard's revenue chart, in minor units.
type Revenue struct {
	Month   string `gorm:"primaryKey" json:"month"`
	Revenue int64  `json:"revenue"`
}
