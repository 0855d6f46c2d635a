package models

import "time"

type CustomerModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	TelegramID   string `gorm:"uniqueIndex;not null"`
	Username     string
	FullName     string `gorm:"not null"`
	Email        string `gorm:"index"`
	Phone        string
	Language     string `gorm:"default:en"`
	Country      string `gorm:"default:OTHER"`
	Currency     string `gorm:"default:USD"`
	Active       bool   `gorm:"default:true;index"`
	LastActivity time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
