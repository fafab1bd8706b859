package query

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/errgroup"

	"invoicing-dashboard-backend/internal/logger"
	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/money"
	"invoicing-dashboard-backend/internal/store"
)

const latestCount = 5

// CardData is the dashboard summary. Totals are formatted as currency
// strings at this boundary; the sums themselves are computed in cents.
type CardData struct {
	NumberOfInvoices     int    `json:"numberOfInvoices"`
	NumberOfCustomers    int    `json:"numberOfCustomers"`
	TotalPaidInvoices    string `json:"totalPaidInvoices"`
	TotalPendingInvoices string `json:"totalPendingInvoices"`
}

// LatestInvoice is one entry of the dashboard's recent-invoices panel.
type LatestInvoice struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
	Email    string `json:"email"`
	Amount   string `json:"amount"`
}

// InvoiceForm is the prefill shape for the edit form; amount is back in
// dollars.
type InvoiceForm struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	Amount     float64 `json:"amount"`
	Status     string  `json:"status"`
}

type Service struct {
	invoices  store.InvoiceStore
	rows      store.InvoiceRowStore
	customers store.CustomerStore
	revenue   store.RevenueStore
	cache     *Cache
	log       *logger.Logger
}

func NewService(stores *store.Stores, cache *Cache, baseLog *logger.Logger) *Service {
	return &Service{
		invoices:  stores.Invoices,
		rows:      stores.InvoiceRows,
		customers: stores.Customers,
		revenue:   stores.Revenue,
		cache:     cache,
		log:       baseLog.With("service", "query"),
	}
}

// FilteredRows returns one page of the invoices table matching q, newest
// first. A failing read degrades to an empty page: an empty list is a
// safe view, and the table is not worth a 500.
func (s *Service) FilteredRows(ctx context.Context, q string, page, size int) []models.InvoiceRow {
	if size < 1 {
		size = ItemsPerPage
	}
	rows, err := s.rows.List(ctx)
	if err != nil {
		s.log.Error("invoices table fetch failed, serving empty page", "error", err)
		return []models.InvoiceRow{}
	}
	filtered := Filter(rows, q)
	SortByDateDesc(filtered)
	return Paginate(filtered, page, size)
}

// Pages returns the page count for q, cached until the next mutation.
// Degrades to 0 on a failing read.
func (s *Service) Pages(ctx context.Context, q string) int {
	key := "pages:" + q
	if v, ok := s.cache.get(key); ok {
		return v.(int)
	}
	rows, err := s.rows.List(ctx)
	if err != nil {
		s.log.Error("invoices table fetch failed, reporting zero pages", "error", err)
		return 0
	}
	pages := CountPages(Filter(rows, q))
	s.cache.set(key, pages)
	return pages
}

// InvoiceByID fetches the normalized invoice for form prefill. Any read
// failure is reported as not-found rather than surfacing the transport
// error to the form.
func (s *Service) InvoiceByID(ctx context.Context, id string) (*InvoiceForm, error) {
	inv, err := s.invoices.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			s.log.Error("invoice fetch failed, reporting not found", "invoice_id", id, "error", err)
		}
		return nil, store.ErrNotFound
	}
	return &InvoiceForm{
		ID:         inv.ID,
		CustomerID: inv.CustomerID,
		Amount:     money.Dollars(inv.Amount),
		Status:     inv.Status,
	}, nil
}

// CardData computes the dashboard summary. Both source lists are fetched
// concurrently; either failing is fatal and propagates as a
// DataFetchError.
func (s *Service) CardData(ctx context.Context) (*CardData, error) {
	if v, ok := s.cache.get("cards"); ok {
		return v.(*CardData), nil
	}

	var (
		invoices  []models.Invoice
		customers []models.Customer
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		invoices, err = s.invoices.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		customers, err = s.customers.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.log.Error("card data fetch failed", "error", err)
		return nil, &DataFetchError{Resource: "card data", Err: err}
	}

	paid, pending := SumByStatus(invoices)
	cards := &CardData{
		NumberOfInvoices:     len(invoices),
		NumberOfCustomers:    len(customers),
		TotalPaidInvoices:    money.Format(paid),
		TotalPendingInvoices: money.Format(pending),
	}
	s.cache.set("cards", cards)
	return cards, nil
}

// LatestInvoices returns the five newest invoices joined with their
// customers, amounts currency-formatted. Fetch failures propagate.
func (s *Service) LatestInvoices(ctx context.Context) ([]LatestInvoice, error) {
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		s.log.Error("latest invoices fetch failed", "error", err)
		return nil, &DataFetchError{Resource: "latest invoices", Err: err}
	}
	customers, err := s.customers.List(ctx)
	if err != nil {
		s.log.Error("customers fetch failed", "error", err)
		return nil, &DataFetchError{Resource: "latest invoices", Err: err}
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].Date > invoices[j].Date
	})
	if len(invoices) > latestCount {
		invoices = invoices[:latestCount]
	}

	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}

	latest := make([]LatestInvoice, 0, len(invoices))
	for _, inv := range invoices {
		c := byID[inv.CustomerID]
		latest = append(latest, LatestInvoice{
			ID:       inv.ID,
			Name:     c.Name,
			ImageURL: c.ImageURL,
			Email:    c.Email,
			Amount:   money.Format(inv.Amount),
		})
	}
	return latest, nil
}

// Revenue returns the monthly revenue chart data. Fetch failures
// propagate.
func (s *Service) Revenue(ctx context.Context) ([]models.Revenue, error) {
	revenue, err := s.revenue.List(ctx)
	if err != nil {
		s.log.Error("revenue fetch failed", "error", err)
		return nil, &DataFetchError{Resource: "revenue", Err: err}
	}
	return revenue, nil
}

// CustomerFields lists customers as {id, name} sorted by name for the
// invoice form dropdown. Fetch failures propagate.
func (s *Service) CustomerFields(ctx context.Context) ([]models.CustomerField, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		s.log.Error("customers fetch failed", "error", err)
		return nil, &DataFetchError{Resource: "customers", Err: err}
	}
	sort.Slice(customers, func(i, j int) bool {
		return customers[i].Name < customers[j].Name
	})
	fields := make([]models.CustomerField, 0, len(customers))
	for _, c := range customers {
		fields = append(fields, models.CustomerField{ID: c.ID, Name: c.Name})
	}
	return fields, nil
}
