package models

import (
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
)

type OrderModel struct {
	ID            string               `gorm:"primaryKey;type:uuid"`
	Number        string               `gorm:"uniqueIndex;not null"`
	CustomerID    string               `gorm:"type:uuid;index;not null"`
	Customer      CustomerModel        `gorm:"foreignKey:CustomerID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	ServiceType   domain.ServiceType   `gorm:"not null"`
	AcademicLevel domain.AcademicLevel `gorm:"not null"`
	Subject       string               `gorm:"not null"`
	Requirements  string               `gorm:"type:text;not null"`
	SpecialNotes  string               `gorm:"type:text"`
	Deadline      time.Time            `gorm:"index:idx_deadline;not null"`

	// Pricing snapshot, immutable once written.
	BasePrice          float64 `gorm:"not null"`
	AcademicMultiplier float64 `gorm:"not null"`
	UrgencyMultiplier  float64 `gorm:"not null"`
	TotalAmount        float64 `gorm:"index:idx_amount;not null"`
	TotalAmountUSD     float64 `gorm:"not null"`
	Currency           string  `gorm:"not null"`

	Status        domain.OrderStatus   `gorm:"index:idx_status_created"`
	PaymentStatus domain.PaymentStatus `gorm:"index"`
	DeliveredFile string
	AdminNotes    string `gorm:"type:text"`

	CreatedAt   time.Time `gorm:"index:idx_status_created"`
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	PaidAt      *time.Time
	StartedAt   *time.Time
	DeliveredAt *time.Time
	CompletedAt *time.Time

	Payments []PaymentModel `gorm:"foreignKey:OrderID;references:ID"`
}
