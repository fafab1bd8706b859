// Package store abstracts the three interchangeable backends behind one
// set of interfaces: in-memory seed data, a gorm database, or the
// mock-API partitions over HTTP. The coordinator and query service only
// ever see these interfaces; which backend is live is decided by config
// at startup.
package store

import (
	"context"
	"errors"

	"invoicing-dashboard-backend/internal/models"
)

// ErrNotFound is returned when an id resolves to nothing, whichever
// backend is serving.
var ErrNotFound = errors.New("store: not found")

type InvoiceStore interface {
	Get(ctx context.Context, id string) (*models.Invoice, error)
	List(ctx context.Context) ([]models.Invoice, error)
	Create(ctx context.Context, inv *models.Invoice) error
	Update(ctx context.Context, inv *models.Invoice) error
	Delete(ctx context.Context, id string) error
}

type InvoiceRowStore interface {
	Get(ctx context.Context, id string) (*models.InvoiceRow, error)
	List(ctx context.Context) ([]models.InvoiceRow, error)
	Create(ctx context.Context, row *models.InvoiceRow) error
	Update(ctx context.Context, row *models.InvoiceRow) error
	Delete(ctx context.Context, id string) error
}

// CustomerStore is read-only: customers are owned by an external service.
type CustomerStore interface {
	Get(ctx context.Context, id string) (*models.Customer, error)
	List(ctx context.Context) ([]models.Customer, error)
}

type RevenueStore interface {
	List(ctx context.Context) ([]models.Revenue, error)
}

// AuditStore records dual-write drift. Writes are best-effort; callers
// ignore failures beyond logging them.
type AuditStore interface {
	Record(ctx context.Context, entry *models.DriftAuditLog) error
}

// Stores bundles one backend's implementations for wiring.
type Stores struct {
	Invoices    InvoiceStore
	InvoiceRows InvoiceRowStore
	Customers   CustomerStore
	Revenue     RevenueStore
	Audit       AuditStore
}
