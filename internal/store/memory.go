package store

import (
	"context"
	"sync"

	"invoicing-dashboard-backend/internal/models"
)

// MemoryStores is the placeholder-data backend. The original kept these
// as bare module-level arrays; here they live behind the store
// interfaces with a mutex so the same coordinator logic runs against
// them unchanged.
type MemoryStores struct {
	mu        sync.RWMutex
	invoices  map[string]models.Invoice
	rows      map[string]models.InvoiceRow
	customers map[string]models.Customer
	revenue   []models.Revenue
	audit     []models.DriftAuditLog
}

func NewMemoryStores() *MemoryStores {
	return &MemoryStores{
		invoices:  make(map[string]models.Invoice),
		rows:      make(map[string]models.InvoiceRow),
		customers: make(map[string]models.Customer),
	}
}

// Stores exposes the backend through the common interface bundle.
func (m *MemoryStores) Stores() *Stores {
	return &Stores{
		Invoices:    &memoryInvoices{m: m},
		InvoiceRows: &memoryRows{m: m},
		Customers:   &memoryCustomers{m: m},
		Revenue:     &memoryRevenue{m: m},
		Audit:       &memoryAudit{m: m},
	}
}

// SeedPlaceholderData loads the demo dataset the memory backend ships
// with, mirroring the original placeholder arrays.
func (m *MemoryStores) SeedPlaceholderData() {
	customers := []models.Customer{
		{ID: "d6e15727-9fe1-4961-8c5b-ea44a9bd81aa", Name: "Evil Rabbit", Email: "evil@rabbit.com", ImageURL: "/customers/evil-rabbit.png"},
		{ID: "3958dc9e-712f-4377-85e9-fec4b6a6442a", Name: "Delba de Oliveira", Email: "delba@oliveira.com", ImageURL: "/customers/delba-de-oliveira.png"},
		{ID: "3958dc9e-742f-4377-85e9-fec4b6a6442a", Name: "Lee Robinson", Email: "lee@robinson.com", ImageURL: "/customers/lee-robinson.png"},
		{ID: "76d65c26-f784-44a2-ac19-586678f7c2f2", Name: "Michael Novotny", Email: "michael@novotny.com", ImageURL: "/customers/michael-novotny.png"},
		{ID: "cc27c14a-0acf-4f4a-a6c9-d45682c144b9", Name: "Amy Burns", Email: "amy@burns.com", ImageURL: "/customers/amy-burns.png"},
		{ID: "13d07535-c59e-4157-a011-f8d2ef4e0cbb", Name: "Balazs Orban", Email: "balazs@orban.com", ImageURL: "/customers/balazs-orban.png"},
	}
	invoices := []models.Invoice{
		{ID: "ae7c3a1e-8aa0-4c10-a5c3-3f3a1e2b8a01", CustomerID: customers[0].ID, Amount: 15795, Date: "2022-12-06", Status: models.StatusPending},
		{ID: "b2f1d0c9-1b2a-4d3c-8e4f-5a6b7c8d9e02", CustomerID: customers[1].ID, Amount: 20348, Date: "2022-11-14", Status: models.StatusPending},
		{ID: "c3a2e1d0-2c3b-4e4d-9f50-6b7c8d9e0f03", CustomerID: customers[4].ID, Amount: 3040, Date: "2022-10-29", Status: models.StatusPaid},
		{ID: "d4b3f2e1-3d4c-4f5e-a061-7c8d9e0f1a04", CustomerID: customers[3].ID, Amount: 44800, Date: "2023-09-10", Status: models.StatusPaid},
		{ID: "e5c4a3f2-4e5d-4a6f-b172-8d9e0f1a2b05", CustomerID: customers[5].ID, Amount: 34577, Date: "2023-08-05", Status: models.StatusPending},
		{ID: "f6d5b4a3-5f6e-4b70-c283-9e0f1a2b3c06", CustomerID: customers[2].ID, Amount: 54246, Date: "2023-07-16", Status: models.StatusPending},
		{ID: "a7e6c5b4-6a7f-4c81-d394-0f1a2b3c4d07", CustomerID: customers[0].ID, Amount: 666, Date: "2023-06-27", Status: models.StatusPending},
		{ID: "b8f7d6c5-7b80-4d92-e4a5-1a2b3c4d5e08", CustomerID: customers[3].ID, Amount: 32545, Date: "2023-06-09", Status: models.StatusPaid},
		{ID: "c9a8e7d6-8c91-4ea3-f5b6-2b3c4d5e6f09", CustomerID: customers[4].ID, Amount: 1250, Date: "2023-06-17", Status: models.StatusPaid},
		{ID: "d0b9f8e7-9da2-4fb4-a6c7-3c4d5e6f7a10", CustomerID: customers[5].ID, Amount: 8546, Date: "2023-06-07", Status: models.StatusPaid},
		{ID: "e1c0a9f8-aeb3-40c5-b7d8-4d5e6f7a8b11", CustomerID: customers[1].ID, Amount: 500, Date: "2023-08-19", Status: models.StatusPaid},
		{ID: "f2d1b0a9-bfc4-41d6-c8e9-5e6f7a8b9c12", CustomerID: customers[5].ID, Amount: 8945, Date: "2023-06-03", Status: models.StatusPaid},
		{ID: "a3e2c1b0-c0d5-42e7-d9fa-6f7a8b9c0d13", CustomerID: customers[2].ID, Amount: 1000, Date: "2022-06-05", Status: models.StatusPaid},
	}
	revenue := []models.Revenue{
		{Month: "Jan", Revenue: 200000}, {Month: "Feb", Revenue: 180000},
		{Month: "Mar", Revenue: 220000}, {Month: "Apr", Revenue: 250000},
		{Month: "May", Revenue: 230000}, {Month: "Jun", Revenue: 320000},
		{Month: "Jul", Revenue: 350000}, {Month: "Aug", Revenue: 370000},
		{Month: "Sep", Revenue: 250000}, {Month: "Oct", Revenue: 280000},
		{Month: "Nov", Revenue: 300000}, {Month: "Dec", Revenue: 480000},
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range customers {
		m.customers[c.ID] = c
	}
	byID := make(map[string]models.Customer, len(customers))
	for _, c := range customers {
		byID[c.ID] = c
	}
	for _, inv := range invoices {
		m.invoices[inv.ID] = inv
		c := byID[inv.CustomerID]
		m.rows[inv.ID] = models.InvoiceRow{
			ID:         inv.ID,
			CustomerID: inv.CustomerID,
			Name:       c.Name,
			Email:      c.Email,
			ImageURL:   c.ImageURL,
			Date:       inv.Date,
			Amount:     inv.Amount,
			Status:     inv.Status,
		}
	}
	m.revenue = revenue
}

// SeedCustomers loads customers directly; the CustomerStore interface
// is read-only because customers are owned elsewhere.
func (m *MemoryStores) SeedCustomers(customers []models.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range customers {
		m.customers[c.ID] = c
	}
}

// AuditEntries returns recorded drift entries. Used by tests and debug
// endpoints; the write path never reads them back.
func (m *MemoryStores) AuditEntries() []models.DriftAuditLog {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.DriftAuditLog, len(m.audit))
	copy(out, m.audit)
	return out
}

// NewMemoryAudit returns a standalone in-process audit store, used by
// backends that have no durable home for drift records.
func NewMemoryAudit() AuditStore {
	return &memoryAudit{m: NewMemoryStores()}
}

type memoryInvoices struct{ m *MemoryStores }

func (s *memoryInvoices) Get(_ context.Context, id string) (*models.Invoice, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	inv, ok := s.m.invoices[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &inv, nil
}

func (s *memoryInvoices) List(_ context.Context) ([]models.Invoice, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.Invoice, 0, len(s.m.invoices))
	for _, inv := range s.m.invoices {
		out = append(out, inv)
	}
	return out, nil
}

func (s *memoryInvoices) Create(_ context.Context, inv *models.Invoice) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.invoices[inv.ID] = *inv
	return nil
}

func (s *memoryInvoices) Update(_ context.Context, inv *models.Invoice) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.invoices[inv.ID]; !ok {
		return ErrNotFound
	}
	s.m.invoices[inv.ID] = *inv
	return nil
}

func (s *memoryInvoices) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.invoices[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.invoices, id)
	return nil
}

type memoryRows struct{ m *MemoryStores }

func (s *memoryRows) Get(_ context.Context, id string) (*models.InvoiceRow, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	row, ok := s.m.rows[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *memoryRows) List(_ context.Context) ([]models.InvoiceRow, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.InvoiceRow, 0, len(s.m.rows))
	for _, row := range s.m.rows {
		out = append(out, row)
	}
	return out, nil
}

func (s *memoryRows) Create(_ context.Context, row *models.InvoiceRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.rows[row.ID] = *row
	return nil
}

func (s *memoryRows) Update(_ context.Context, row *models.InvoiceRow) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.rows[row.ID]; !ok {
		return ErrNotFound
	}
	s.m.rows[row.ID] = *row
	return nil
}

func (s *memoryRows) Delete(_ context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.rows[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.rows, id)
	return nil
}

type memoryCustomers struct{ m *MemoryStores }

func (s *memoryCustomers) Get(_ context.Context, id string) (*models.Customer, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	c, ok := s.m.customers[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *memoryCustomers) List(_ context.Context) ([]models.Customer, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.Customer, 0, len(s.m.customers))
	for _, c := range s.m.customers {
		out = append(out, c)
	}
	return out, nil
}

type memoryRevenue struct{ m *MemoryStores }

func (s *memoryRevenue) List(_ context.Context) ([]models.Revenue, error) {
	s.m.mu.RLock()
	defer s.m.mu.RUnlock()
	out := make([]models.Revenue, len(s.m.revenue))
	copy(out, s.m.revenue)
	return out, nil
}

type memoryAudit struct{ m *MemoryStores }

func (s *memoryAudit) Record(_ context.Context, entry *models.DriftAuditLog) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	s.m.audit = append(s.m.audit, *entry)
	return nil
}
