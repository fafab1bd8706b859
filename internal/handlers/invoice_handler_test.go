package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"invoicing-dashboard-backend/internal/logger"
	"invoicing-dashboard-backend/internal/models"
	"invoicing-dashboard-backend/internal/routes"
	"invoicing-dashboard-backend/internal/store"
)

const seededCustomerID = "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa"

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	mem := store.NewMemoryStores()
	mem.SeedPlaceholderData()
	r := gin.New()
	routes.RegisterRoutes(r, mem.Stores(), logger.NewNop())
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateInvoiceFormSuccessRedirects(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/api/invoices", url.Values{
		"customer_id": {seededCustomerID},
		"amount":      {"42.50"},
		"status":      {"pending"},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		RedirectTo string `json:"redirect_to"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.RedirectTo != "/dashboard/invoices" {
		t.Fatalf("redirect_to = %q", resp.RedirectTo)
	}
}

func TestCreateInvoiceValidationFailureListsEveryField(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/api/invoices", url.Values{
		"customer_id": {""},
		"amount":      {"-5"},
		"status":      {"bogus"},
	})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string                       `json:"message"`
		Errors  map[string][]json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "Missing Fields. Failed to Create Invoice." {
		t.Fatalf("message = %q", resp.Message)
	}
	if len(resp.Errors) != 3 {
		t.Fatalf("expected 3 field errors, got %v", resp.Errors)
	}
}

func TestCreateInvoiceUnknownCustomer(t *testing.T) {
	r := setupRouter(t)

	w := postForm(r, "/api/invoices", url.Values{
		"customer_id": {"no-such-customer"},
		"amount":      {"10"},
		"status":      {"paid"},
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
}

func TestListInvoicesPaginationParams(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices?p=1&l=6", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var resp struct {
		Invoices []models.InvoiceRow `json:"invoices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(resp.Invoices) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(resp.Invoices))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices/pages", nil))
	var pages struct {
		Pages int `json:"pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &pages); err != nil {
		t.Fatalf("decode pages: %v", err)
	}
	if pages.Pages != 3 { // 13 seeded rows / 6 per page
		t.Fatalf("pages = %d, want 3", pages.Pages)
	}
}

func TestUpdateThenGetInvoice(t *testing.T) {
	r := setupRouter(t)

	// Pick a seeded invoice id off the listing.
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices?p=1&l=1", nil))
	var listing struct {
		Invoices []models.InvoiceRow `json:"invoices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil || len(listing.Invoices) == 0 {
		t.Fatalf("listing: %v %s", err, w.Body.String())
	}
	row := listing.Invoices[0]

	req := httptest.NewRequest(http.MethodPut, "/api/invoices/"+row.ID,
		strings.NewReader(url.Values{
			"customer_id": {row.CustomerID},
			"amount":      {"99.99"},
			"status":      {"paid"},
		}.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", w.Code, w.Body.String())
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices/"+row.ID, nil))
	var form struct {
		Amount float64 `json:"amount"`
		Status string  `json:"status"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &form); err != nil {
		t.Fatalf("decode form: %v", err)
	}
	if form.Amount != 99.99 || form.Status != "paid" {
		t.Fatalf("unexpected prefill: %+v", form)
	}
}

func TestDeleteInvoiceRemovesFromListing(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices?p=1&l=1", nil))
	var listing struct {
		Invoices []models.InvoiceRow `json:"invoices"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &listing); err != nil || len(listing.Invoices) == 0 {
		t.Fatalf("listing: %v", err)
	}
	id := listing.Invoices[0].ID

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/invoices/"+id, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices/"+id, nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("get after delete = %d", w.Code)
	}
}

func TestGetUnknownInvoiceIs404(t *testing.T) {
	r := setupRouter(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/invoices/ghost", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestDashboardEndpoints(t *testing.T) {
	r := setupRouter(t)

	for _, path := range []string{"/api/dashboard/cards", "/api/dashboard/revenue", "/api/customers", "/api/invoices/latest", "/api/health"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET %s = %d, body %s", path, w.Code, w.Body.String())
		}
	}
}
