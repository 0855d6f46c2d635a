package domain

import "time"

type CustomerRepository interface {
	CreateCustomer(customer *Customer) error
	GetCustomerByID(customerID string) (*Customer, error)
	GetCustomerByTelegramID(telegramID string) (*Customer, error)
	UpdateCustomer(customer *Customer) error
	TouchLastActivity(customerID string, at time.Time) error
}
