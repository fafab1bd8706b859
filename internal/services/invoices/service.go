package invoices

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"

	"invoicing-dashboard-backend/internal/logger"
	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/store"
)

// InvoicesPath is where the form boundary navigates after a successful
// mutation, and the cached view the mutation invalidates.
const InvoicesPath = "/dashboard/invoices"

const (
	sideInvoice = "invoice"
	sideRow     = "invoice_row"
	sideBoth    = "both"
)

// Revalidator is the cache-invalidation signal sent to the query service
// after a successful write.
type Revalidator interface {
	Invalidate()
}

// Outcome is the caller-visible result of a successful mutation. The
// redirect is returned, never performed here, so the coordinator stays
// testable without a routing harness.
type Outcome struct {
	RedirectTo string `json:"redirect_to,omitempty"`
}

// Service keeps the normalized invoice store and the denormalized read
// model consistent under create, update and delete. The two stores may
// be independent backends with no shared transaction, so each operation
// is a saga with defined partial-failure outcomes rather than an atomic
// commit:
//
//   - Create writes the invoice first; if the read-model write then
//     fails, the invoice is NOT rolled back. The pair is divergent until
//     repaired. This window is accepted: writes are idempotent by id and
//     a DriftAuditLog row marks the divergence for reconciliation.
//   - Update and delete touch both sides concurrently; either side
//     failing leaves the other applied. Same policy: report, audit,
//     never retry, never roll back.
type Service struct {
	invoices  store.InvoiceStore
	rows      store.InvoiceRowStore
	customers store.CustomerStore
	audit     store.AuditStore
	cache     Revalidator
	log       *logger.Logger

	now   func() time.Time
	newID func() string
}

func NewService(stores *store.Stores, cache Revalidator, baseLog *logger.Logger) *Service {
	return &Service{
		invoices:  stores.Invoices,
		rows:      stores.InvoiceRows,
		customers: stores.Customers,
		audit:     stores.Audit,
		cache:     cache,
		log:       baseLog.With("service", "invoices"),
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}
}

// Create validates the draft, resolves the customer, then writes the
// invoice followed by its read-model row. Customer resolution failing
// aborts before any write; no partial state exists at that point.
func (s *Service) Create(ctx context.Context, draft FormDraft) (*Outcome, error) {
	valid, verr := ValidateDraft(draft, "Create")
	if verr != nil {
		return nil, verr
	}

	customer, err := s.customers.Get(ctx, valid.CustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("resolve customer %s: %w", valid.CustomerID, err)
	}

	inv := &models.Invoice{
		ID:         s.newID(),
		CustomerID: valid.CustomerID,
		Amount:     valid.Amount,
		Date:       s.now().UTC().Format("2006-01-02"),
		Status:     valid.Status,
	}

	if err := s.invoices.Create(ctx, inv); err != nil {
		s.log.Error("invoice create failed", "invoice_id", inv.ID, "error", err)
		return nil, &PersistenceError{Op: "create", Side: sideInvoice, Err: err}
	}

	row := Project(inv, customer)
	if err := s.rows.Create(ctx, &row); err != nil {
		// The invoice is already written and stays written. Record the
		// drift and surface the failure.
		s.log.Error("read-model create failed, invoice left without row",
			"invoice_id", inv.ID, "error", err)
		s.recordDrift(ctx, "create", sideRow, inv.ID, err)
		return nil, &PersistenceError{Op: "create", Side: sideRow, Err: err}
	}

	s.cache.Invalidate()
	return &Outcome{RedirectTo: InvoicesPath}, nil
}

// Update replaces customer_id, amount and status on both copies,
// preserving the invoice date and the customer snapshot from the prior
// write. The two snapshots are fetched concurrently, then both writes
// run concurrently; neither side waits on or rolls back the other.
func (s *Service) Update(ctx context.Context, id string, draft FormDraft) (*Outcome, error) {
	valid, verr := ValidateDraft(draft, "Update")
	if verr != nil {
		return nil, verr
	}

	var (
		inv *models.Invoice
		row *models.InvoiceRow
	)
	g, fetchCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		inv, err = s.invoices.Get(fetchCtx, id)
		return err
	})
	g.Go(func() error {
		var err error
		row, err = s.rows.Get(fetchCtx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, fmt.Errorf("fetch invoice %s: %w", id, err)
	}

	inv.CustomerID = valid.CustomerID
	inv.Amount = valid.Amount
	inv.Status = valid.Status

	// The row keeps its customer snapshot even when customer_id changes;
	// snapshots refresh only on the next create-style projection.
	row.CustomerID = valid.CustomerID
	row.Amount = valid.Amount
	row.Status = valid.Status

	var invErr, rowErr error
	var writes errgroup.Group
	writes.Go(func() error {
		invErr = s.invoices.Update(ctx, inv)
		return nil
	})
	writes.Go(func() error {
		rowErr = s.rows.Update(ctx, row)
		return nil
	})
	_ = writes.Wait()

	if invErr != nil || rowErr != nil {
		return nil, s.reportPartial(ctx, "update", id, invErr, rowErr)
	}

	s.cache.Invalidate()
	return &Outcome{RedirectTo: InvoicesPath}, nil
}

// Delete removes both copies concurrently. Order between the two deletes
// is not defined; a failed side leaves the other side's delete applied.
func (s *Service) Delete(ctx context.Context, id string) (*Outcome, error) {
	var invErr, rowErr error
	var deletes errgroup.Group
	deletes.Go(func() error {
		invErr = s.invoices.Delete(ctx, id)
		return nil
	})
	deletes.Go(func() error {
		rowErr = s.rows.Delete(ctx, id)
		return nil
	})
	_ = deletes.Wait()

	if errors.Is(invErr, store.ErrNotFound) && errors.Is(rowErr, store.ErrNotFound) {
		return nil, ErrInvoiceNotFound
	}
	if invErr != nil || rowErr != nil {
		return nil, s.reportPartial(ctx, "delete", id, invErr, rowErr)
	}

	s.cache.Invalidate()
	return &Outcome{}, nil
}

// reportPartial logs a failed dual write, records drift when exactly one
// side applied, and builds the PersistenceError for the caller.
func (s *Service) reportPartial(ctx context.Context, op, id string, invErr, rowErr error) error {
	side := sideBoth
	err := invErr
	switch {
	case invErr != nil && rowErr == nil:
		side = sideInvoice
	case invErr == nil && rowErr != nil:
		side, err = sideRow, rowErr
	}

	s.log.Error("dual write failed",
		"op", op, "invoice_id", id, "failed_side", side,
		"invoice_error", invErr, "row_error", rowErr)

	// Both sides failing means neither copy changed; only a one-sided
	// failure leaves the pair divergent.
	if side != sideBoth {
		s.recordDrift(ctx, op, side, id, err)
	}
	return &PersistenceError{Op: op, Side: side, Err: err}
}

func (s *Service) recordDrift(ctx context.Context, op, failedSide, invoiceID string, cause error) {
	details, _ := json.Marshal(map[string]interface{}{
		"operation":   op,
		"failed_side": failedSide,
		"invoice_id":  invoiceID,
		"error":       cause.Error(),
	})
	entry := &models.DriftAuditLog{
		ID:         uuid.New(),
		InvoiceID:  invoiceID,
		Operation:  op,
		FailedSide: failedSide,
		Reason:     cause.Error(),
		Details:    datatypes.JSON(details),
		CreatedAt:  s.now(),
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		// Best effort only; the drift is already logged above.
		s.log.Warn("drift audit write failed", "invoice_id", invoiceID, "error", err)
	}
}
