package models

import (
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
)

type PaymentModel struct {
	ID      string `gorm:"primaryKey;type:uuid"`
	OrderID string `gorm:"type:uuid;index;not null"`

	// Unique across all attempts. The database enforces the idempotency
	// of succeeded-payment processing through this constraint.
	ExternalRef string `gorm:"uniqueIndex;not null"`

	Method        domain.PaymentMethod `gorm:"not null"`
	Amount        float64              `gorm:"not null"`
	Currency      string               `gorm:"not null"`
	State         domain.PaymentState  `gorm:"index;not null"`
	FailureReason string

	ReceiptPath     string
	ReceiptVerified bool `gorm:"default:false"`

	CreatedAt   time.Time `gorm:"index"`
	UpdatedAt   time.Time
	SucceededAt *time.Time
	FailedAt    *time.Time
}
