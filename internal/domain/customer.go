package domain

import "time"

// Customer is the ordering party. Created on first contact, touched on
// every interaction, never hard-deleted while orders reference it.
type Customer struct {
	ID           string
	TelegramID   string
	Username     string
	FullName     string
	Email        string
	Phone        string
	Language     string
	Country      string
	Currency     string
	Active       bool
	LastActivity time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
