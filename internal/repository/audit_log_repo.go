package repository

import (
	"invoice-dashboard-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	db *gorm.DB
}

func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

func (r *AuditLogRepository) Create(entry *models.ActionAuditLog) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	return r.db.Create(entry).Error
}

func (r *AuditLogRepository) ListByInvoice(invoiceID string) ([]models.ActionAuditLog, error) {
	var entries []models.ActionAuditLog
	err := r.db.Where("invoice_id = ?", invoiceID).Order("created_at ASC").Find(&entries).Error
	return entries, err
}
