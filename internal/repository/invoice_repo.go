package repository

import (
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

// Expose DB if needed
func (r *InvoiceRepository) DB() *gorm.DB {
	return r.db
}

// Create inserts a new invoice, generating the ID when the caller left it
// unset.
func (r *InvoiceRepository) Create(invoice *models.Invoice) error {
	if invoice.ID == uuid.Nil {
		invoice.ID = uuid.New()
	}
	return r.db.Create(invoice).Error
}

// UpdateFields sets customer_id, amount and status for the given id. No
// existence check: a missing row updates zero rows and is not an error.
func (r *InvoiceRepository) UpdateFields(id, customerID string, amount int64, status string) error {
	return r.db.Model(&models.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"customer_id": customerID,
			"amount":      amount,
			"status":      status,
		}).Error
}

// Delete removes the row matching id; deleting a missing id is a no-op.
func (r *InvoiceRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Invoice{}).Error
}

// GetByID fetch a single invoice by ID
func (r *InvoiceRepository) GetByID(id string) (*models.Invoice, error) {
	var invoice models.Invoice
	err := r.db.First(&invoice, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

// GetAll returns every invoice, newest date first.
func (r *InvoiceRepository) GetAll() ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := r.db.Order("date DESC, created_at DESC").Find(&invoices).Error
	return invoices, err
}
