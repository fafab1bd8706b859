package query

import (
	"context"
	"errors"
	"testing"

	"invoicing-dashboard-backend/internal/logger"
	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/store"
)

var errUpstream = errors.New("upstream unreachable")

type failingRowStore struct{ store.InvoiceRowStore }

func (failingRowStore) List(context.Context) ([]models.InvoiceRow, error) {
	return nil, errUpstream
}

type failingInvoiceStore struct{ store.InvoiceStore }

func (failingInvoiceStore) List(context.Context) ([]models.Invoice, error) {
	return nil, errUpstream
}

func (failingInvoiceStore) Get(context.Context, string) (*models.Invoice, error) {
	return nil, errUpstream
}

func newTestQueryService(t *testing.T) (*Service, *store.MemoryStores, *store.Stores, *Cache) {
	t.Helper()
	mem := store.NewMemoryStores()
	mem.SeedPlaceholderData()
	stores := mem.Stores()
	cache := NewCache()
	return NewService(stores, cache, logger.NewNop()), mem, stores, cache
}

func TestFilteredRowsSortsAndPaginates(t *testing.T) {
	svc, _, _, _ := newTestQueryService(t)

	page1 := svc.FilteredRows(context.Background(), "", 1, ItemsPerPage)
	if len(page1) != ItemsPerPage {
		t.Fatalf("page 1 has %d rows, want %d", len(page1), ItemsPerPage)
	}
	for i := 1; i < len(page1); i++ {
		if page1[i-1].Date < page1[i].Date {
			t.Fatalf("page not sorted descending at %d", i)
		}
	}
}

func TestFilteredRowsDegradesToEmptyOnFailure(t *testing.T) {
	svc, _, stores, _ := newTestQueryService(t)
	stores.InvoiceRows = failingRowStore{}
	svc.rows = stores.InvoiceRows

	rows := svc.FilteredRows(context.Background(), "", 1, ItemsPerPage)
	if len(rows) != 0 {
		t.Fatalf("expected empty degraded view, got %d rows", len(rows))
	}
}

func TestPagesCountsAndCaches(t *testing.T) {
	svc, _, stores, cache := newTestQueryService(t)

	all, _ := stores.InvoiceRows.List(context.Background())
	want := CountPages(all)
	if got := svc.Pages(context.Background(), ""); got != want {
		t.Fatalf("Pages = %d, want %d", got, want)
	}

	// Served from cache even if the store goes away, until invalidated.
	svc.rows = failingRowStore{}
	if got := svc.Pages(context.Background(), ""); got != want {
		t.Fatalf("cached Pages = %d, want %d", got, want)
	}
	cache.Invalidate()
	if got := svc.Pages(context.Background(), ""); got != 0 {
		t.Fatalf("degraded Pages = %d, want 0", got)
	}
}

func TestInvoiceByIDDegradesToNotFound(t *testing.T) {
	svc, _, stores, _ := newTestQueryService(t)

	all, _ := stores.Invoices.List(context.Background())
	form, err := svc.InvoiceByID(context.Background(), all[0].ID)
	if err != nil {
		t.Fatalf("InvoiceByID: %v", err)
	}
	if form.Amount != float64(all[0].Amount)/100 {
		t.Fatalf("amount = %v dollars, want %v", form.Amount, float64(all[0].Amount)/100)
	}

	if _, err := svc.InvoiceByID(context.Background(), "ghost"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	// Transport failures surface as not-found too, never as a raw error.
	svc.invoices = failingInvoiceStore{}
	if _, err := svc.InvoiceByID(context.Background(), all[0].ID); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestCardDataTotals(t *testing.T) {
	svc, _, stores, _ := newTestQueryService(t)

	cards, err := svc.CardData(context.Background())
	if err != nil {
		t.Fatalf("CardData: %v", err)
	}

	invoices, _ := stores.Invoices.List(context.Background())
	customers, _ := stores.Customers.List(context.Background())
	if cards.NumberOfInvoices != len(invoices) || cards.NumberOfCustomers != len(customers) {
		t.Fatalf("unexpected counts: %+v", cards)
	}

	paid, pending := SumByStatus(invoices)
	if cards.TotalPaidInvoices == "" || cards.TotalPendingInvoices == "" {
		t.Fatalf("totals missing: %+v", cards)
	}
	if paid+pending == 0 {
		t.Fatal("seed data should have nonzero totals")
	}
}

func TestCardDataFetchFailureIsFatal(t *testing.T) {
	svc, _, _, _ := newTestQueryService(t)
	svc.invoices = failingInvoiceStore{}

	_, err := svc.CardData(context.Background())
	var ferr *DataFetchError
	if !errors.As(err, &ferr) {
		t.Fatalf("err = %v, want DataFetchError", err)
	}
}

func TestLatestInvoicesJoinsCustomers(t *testing.T) {
	svc, _, _, _ := newTestQueryService(t)

	latest, err := svc.LatestInvoices(context.Background())
	if err != nil {
		t.Fatalf("LatestInvoices: %v", err)
	}
	if len(latest) != 5 {
		t.Fatalf("expected 5 latest invoices, got %d", len(latest))
	}
	for _, li := range latest {
		if li.Name == "" || li.Email == "" {
			t.Fatalf("customer join missing for %+v", li)
		}
		if li.Amount == "" || li.Amount[0] != '$' {
			t.Fatalf("amount not currency-formatted: %q", li.Amount)
		}
	}
}

func TestCustomerFieldsSortedByName(t *testing.T) {
	svc, _, _, _ := newTestQueryService(t)

	fields, err := svc.CustomerFields(context.Background())
	if err != nil {
		t.Fatalf("CustomerFields: %v", err)
	}
	if len(fields) == 0 {
		t.Fatal("expected seeded customers")
	}
	for i := 1; i < len(fields); i++ {
		if fields[i-1].Name > fields[i].Name {
			t.Fatalf("not sorted by name at %d: %q > %q", i, fields[i-1].Name, fields[i].Name)
		}
	}
}

func TestRevenueReturnsSeededMonths(t *testing.T) {
	svc, _, _, _ := newTestQueryService(t)

	revenue, err := svc.Revenue(context.Background())
	if err != nil {
		t.Fatalf("Revenue: %v", err)
	}
	if len(revenue) != 12 {
		t.Fatalf("expected 12 months, got %d", len(revenue))
	}
}
