package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ActionAuditLog records one invoice mutation and the form that caused it.
type ActionAuditLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Action    string    `gorm:"index"`
	InvoiceID string    `gorm:"index"`
	Form      datatypes.JSON
	CreatedAt time.Time
}
