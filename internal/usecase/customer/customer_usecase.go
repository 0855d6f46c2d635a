package usecase

import (
	"errors"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
	"github.com/google/uuid"
)

type TouchCustomerInput struct {
	TelegramID string
	Username   string
	FullName   string
	Language   string
	Country    string
}

type CustomerUsecase interface {
	RegisterOrTouch(input *TouchCustomerInput) (*domain.Customer, error)
	UpdatePreferences(customerID, language, currency string) (*domain.Customer, error)
	GetByTelegramID(telegramID string) (*domain.Customer, error)
}

type DefaultCustomerUsecase struct {
	CustomerRepo domain.CustomerRepository
	Pricing      *pricing.Engine
	Clock        func() time.Time
}

func NewDefaultCustomerUsecase(customerRepo domain.CustomerRepository, pricingEngine *pricing.Engine) *DefaultCustomerUsecase {
	return &DefaultCustomerUsecase{
		CustomerRepo: customerRepo,
		Pricing:      pricingEngine,
		Clock:        time.Now,
	}
}

// RegisterOrTouch creates the customer on first contact and refreshes the
// activity timestamp on every later one.
func (uc *DefaultCustomerUsecase) RegisterOrTouch(input *TouchCustomerInput) (*domain.Customer, error) {
	customer, err := uc.CustomerRepo.GetCustomerByTelegramID(input.TelegramID)
	if err != nil {
		if !errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, err
		}

		now := uc.Clock()
		customer = &domain.Customer{
			ID:           uuid.NewString(),
			TelegramID:   input.TelegramID,
			Username:     input.Username,
			FullName:     input.FullName,
			Language:     defaultString(input.Language, "en"),
			Country:      defaultString(input.Country, "OTHER"),
			Currency:     "USD",
			Active:       true,
			LastActivity: now,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.CustomerRepo.CreateCustomer(customer); err != nil {
			return nil, err
		}
		return customer, nil
	}

	now := uc.Clock()
	if input.Username != "" && input.Username != customer.Username {
		customer.Username = input.Username
		customer.UpdatedAt = now
		if err := uc.CustomerRepo.UpdateCustomer(customer); err != nil {
			return nil, err
		}
	}
	if err := uc.CustomerRepo.TouchLastActivity(customer.ID, now); err != nil {
		return nil, err
	}
	customer.LastActivity = now

	return customer, nil
}

func (uc *DefaultCustomerUsecase) UpdatePreferences(customerID, language, currency string) (*domain.Customer, error) {
	customer, err := uc.CustomerRepo.GetCustomerByID(customerID)
	if err != nil {
		return nil, err
	}

	if currency != "" {
		if !uc.Pricing.SupportedCurrency(currency) {
			return nil, domain.ErrInvalidCurrency
		}
		customer.Currency = currency
	}
	if language != "" {
		customer.Language = language
	}
	customer.UpdatedAt = uc.Clock()

	if err := uc.CustomerRepo.UpdateCustomer(customer); err != nil {
		return nil, err
	}

	return customer, nil
}

func (uc *DefaultCustomerUsecase) GetByTelegramID(telegramID string) (*domain.Customer, error) {
	return uc.CustomerRepo.GetCustomerByTelegramID(telegramID)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
