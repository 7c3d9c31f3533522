package models

import (
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}
