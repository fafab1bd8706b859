package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// DriftAuditLog records a dual-write that left the normalized store and
// the read model divergent: one side applied, the other failed. Rows are
// written best-effort after the fact; nothing in the write path depends
// on them. They exist so an operator (or a later reconciliation job) can
// find and repair drift.
type DriftAuditLog struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	InvoiceID  string    `gorm:"index"`
	Operation  string    // create, update, delete
	FailedSide string    // invoice, invoice_row, both
	Reason     string
	Details    datatypes.JSON
	CreatedAt  time.Time
}
