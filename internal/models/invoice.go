package models

import (
	"time"

	"github.com/google/uuid"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID string    `gorm:"column:customer_id;index"`
	Amount     int64     `gorm:"index"` // cents
	Status     string    `gorm:"index"`
	Date       string    `gorm:"type:date"`
	CreatedAt  time.Time
}
