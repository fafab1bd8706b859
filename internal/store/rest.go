package store

import (
	"context"

	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/transport"
)

// Resource paths on the mock-API partitions.
const (
	resourceInvoices      = "invoices"
	resourceCustomers     = "customers"
	resourceInvoicesTable = "invoices_table"
	resourceRevenue       = "revenue"
)

// NewRESTStores wires the stores to the three mock-API partitions: v1
// serves revenue, v2 invoices and customers, v3 the invoices_table read
// model. Drift audit has no remote partition, so it stays in-process.
func NewRESTStores(v1, v2, v3 *transport.Client) *Stores {
	return &Stores{
		Invoices:    &restInvoices{c: v2},
		InvoiceRows: &restRows{c: v3},
		Customers:   &restCustomers{c: v2},
		Revenue:     &restRevenue{c: v1},
		Audit:       NewMemoryAudit(),
	}
}

func translateTransportErr(err error) error {
	if transport.IsNotFound(err) {
		return ErrNotFound
	}
	return err
}

type restInvoices struct{ c *transport.Client }

func (s *restInvoices) Get(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.c.Get(ctx, resourceInvoices+"/"+id, &inv); err != nil {
		return nil, translateTransportErr(err)
	}
	return &inv, nil
}

func (s *restInvoices) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	if err := s.c.Get(ctx, resourceInvoices, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (s *restInvoices) Create(ctx context.Context, inv *models.Invoice) error {
	return s.c.Post(ctx, resourceInvoices, inv, inv)
}

func (s *restInvoices) Update(ctx context.Context, inv *models.Invoice) error {
	return translateTransportErr(s.c.Put(ctx, resourceInvoices+"/"+inv.ID, inv, inv))
}

func (s *restInvoices) Delete(ctx context.Context, id string) error {
	return translateTransportErr(s.c.Delete(ctx, resourceInvoices+"/"+id, nil))
}

type restRows struct{ c *transport.Client }

func (s *restRows) Get(ctx context.Context, id string) (*models.InvoiceRow, error) {
	var row models.InvoiceRow
	if err := s.c.Get(ctx, resourceInvoicesTable+"/"+id, &row); err != nil {
		return nil, translateTransportErr(err)
	}
	return &row, nil
}

func (s *restRows) List(ctx context.Context) ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	if err := s.c.Get(ctx, resourceInvoicesTable, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *restRows) Create(ctx context.Context, row *models.InvoiceRow) error {
	return s.c.Post(ctx, resourceInvoicesTable, row, row)
}

func (s *restRows) Update(ctx context.Context, row *models.InvoiceRow) error {
	return translateTransportErr(s.c.Put(ctx, resourceInvoicesTable+"/"+row.ID, row, row))
}

func (s *restRows) Delete(ctx context.Context, id string) error {
	return translateTransportErr(s.c.Delete(ctx, resourceInvoicesTable+"/"+id, nil))
}

type restCustomers struct{ c *transport.Client }

func (s *restCustomers) Get(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.c.Get(ctx, resourceCustomers+"/"+id, &c); err != nil {
		return nil, translateTransportErr(err)
	}
	return &c, nil
}

func (s *restCustomers) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	if err := s.c.Get(ctx, resourceCustomers, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

type restRevenue struct{ c *transport.Client }

func (s *restRevenue) List(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	if err := s.c.Get(ctx, resourceRevenue, &revenue); err != nil {
		return nil, err
	}
	return revenue, nil
}
