package store

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"invoicing-dashboard-backend/internal/models"
)

// NewGormStores wires all stores to one gorm database (postgres or
// sqlite, whichever the config opened).
func NewGormStores(db *gorm.DB) *Stores {
	return &Stores{
		Invoices:    &gormInvoices{db: db},
		InvoiceRows: &gormRows{db: db},
		Customers:   &gormCustomers{db: db},
		Revenue:     &gormRevenue{db: db},
		Audit:       &gormAudit{db: db},
	}
}

// AutoMigrate creates the backing tables.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Invoice{},
		&models.InvoiceRow{},
		&models.Customer{},
		&models.Revenue{},
		&models.DriftAuditLog{},
	)
}

func translateErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

type gormInvoices struct{ db *gorm.DB }

func (s *gormInvoices) Get(ctx context.Context, id string) (*models.Invoice, error) {
	var inv models.Invoice
	if err := s.db.WithContext(ctx).First(&inv, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &inv, nil
}

func (s *gormInvoices) List(ctx context.Context) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.WithContext(ctx).Find(&invoices).Error
	return invoices, err
}

func (s *gormInvoices) Create(ctx context.Context, inv *models.Invoice) error {
	return s.db.WithContext(ctx).Create(inv).Error
}

func (s *gormInvoices) Update(ctx context.Context, inv *models.Invoice) error {
	res := s.db.WithContext(ctx).Model(&models.Invoice{}).Where("id = ?", inv.ID).
		Select("*").Omit("id").Updates(inv)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormInvoices) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Invoice{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormRows struct{ db *gorm.DB }

func (s *gormRows) Get(ctx context.Context, id string) (*models.InvoiceRow, error) {
	var row models.InvoiceRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &row, nil
}

func (s *gormRows) List(ctx context.Context) ([]models.InvoiceRow, error) {
	var rows []models.InvoiceRow
	err := s.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (s *gormRows) Create(ctx context.Context, row *models.InvoiceRow) error {
	return s.db.WithContext(ctx).Create(row).Error
}

func (s *gormRows) Update(ctx context.Context, row *models.InvoiceRow) error {
	res := s.db.WithContext(ctx).Model(&models.InvoiceRow{}).Where("id = ?", row.ID).
		Select("*").Omit("id").Updates(row)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormRows) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.InvoiceRow{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

type gormCustomers struct{ db *gorm.DB }

func (s *gormCustomers) Get(ctx context.Context, id string) (*models.Customer, error) {
	var c models.Customer
	if err := s.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (s *gormCustomers) List(ctx context.Context) ([]models.Customer, error) {
	var customers []models.Customer
	err := s.db.WithContext(ctx).Find(&customers).Error
	return customers, err
}

type gormRevenue struct{ db *gorm.DB }

func (s *gormRevenue) List(ctx context.Context) ([]models.Revenue, error) {
	var revenue []models.Revenue
	err := s.db.WithContext(ctx).Find(&revenue).Error
	return revenue, err
}

type gormAudit struct{ db *gorm.DB }

func (s *gormAudit) Record(ctx context.Context, entry *models.DriftAuditLog) error {
	return s.db.WithContext(ctx).Create(entry).Error
}
