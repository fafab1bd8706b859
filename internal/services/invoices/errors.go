package invoices

import (
	"errors"
	"fmt"
)

// Field error codes surfaced to the form for highlighting.
const (
	CodeMissingField  = "MissingField"
	CodeInvalidAmount = "InvalidAmount"
	CodeInvalidEnum   = "InvalidEnum"
)

// ErrCustomerNotFound aborts a create before any write happens.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrInvoiceNotFound is returned when an update or delete targets an id
// that neither store knows.
var ErrInvoiceNotFound = errors.New("invoice not found")

type FieldError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationError carries the full set of per-field problems so the form
// can be redisplayed with everything highlighted at once. It is expected
// user error and never logged as a failure.
type ValidationError struct {
	Message string                  `json:"message"`
	Fields  map[string][]FieldError `json:"errors"`
}

func (e *ValidationError) Error() string { return e.Message }

// PersistenceError reports a write that failed after validation passed.
// The other side of the dual write may already be applied; nothing is
// rolled back (see the coordinator's notes on the consistency window).
type PersistenceError struct {
	Op   string // create, update, delete
	Side string // invoice, invoice_row, both
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s write failed: %v", e.Op, e.Side, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
