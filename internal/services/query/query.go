// Package query serves the dashboard's read side. Listing and searching
// go through the denormalized invoices_table read model only; the
// normalized invoice store is touched just for aggregates and form
// prefill.
package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"invoicing-dashboard-backend/internal/models"
)

// ItemsPerPage is the fixed page size of the invoices table.
const ItemsPerPage = 6

// DataFetchError is a read failure on a critical path (aggregates,
// revenue, customer list). It always propagates: a silently wrong
// financial summary is worse than a visible failure.
type DataFetchError struct {
	Resource string
	Err      error
}

func (e *DataFetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Resource, e.Err)
}

func (e *DataFetchError) Unwrap() error { return e.Err }

// Filter keeps rows where any field, stringified, contains q
// case-insensitively. An empty query matches everything and returns the
// input unchanged.
func Filter(rows []models.InvoiceRow, q string) []models.InvoiceRow {
	if q == "" {
		return rows
	}
	needle := strings.ToLower(q)
	out := make([]models.InvoiceRow, 0, len(rows))
	for _, row := range rows {
		if rowMatches(row, needle) {
			out = append(out, row)
		}
	}
	return out
}

func rowMatches(row models.InvoiceRow, needle string) bool {
	for _, field := range []string{
		row.ID,
		row.CustomerID,
		row.Name,
		row.Email,
		row.ImageURL,
		row.Date,
		strconv.FormatInt(row.Amount, 10),
		row.Status,
	} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// SortByDateDesc orders rows newest first. Dates are ISO YYYY-MM-DD, so
// descending lexicographic compare is descending chronological order.
func SortByDateDesc(rows []models.InvoiceRow) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date > rows[j].Date
	})
}

// Paginate returns the 1-indexed page of the given size. Pages beyond
// the available range are empty, never an error.
func Paginate(rows []models.InvoiceRow, page, size int) []models.InvoiceRow {
	if page < 1 || size < 1 {
		return []models.InvoiceRow{}
	}
	start := (page - 1) * size
	if start >= len(rows) {
		return []models.InvoiceRow{}
	}
	end := start + size
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// CountPages is ceil(len(rows)/ItemsPerPage); zero rows means zero pages.
func CountPages(rows []models.InvoiceRow) int {
	return (len(rows) + ItemsPerPage - 1) / ItemsPerPage
}

// SumByStatus totals invoice amounts in cents, split by status. Working
// in integer minor units keeps the sums free of floating-point drift.
func SumByStatus(invoices []models.Invoice) (paid, pending int64) {
	for _, inv := range invoices {
		switch inv.Status {
		case models.StatusPaid:
			paid += inv.Amount
		case models.StatusPending:
			pending += inv.Amount
		}
	}
	return paid, pending
}
