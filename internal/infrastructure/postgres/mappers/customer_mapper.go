package mappers

import (
	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/models"
)

func ToDomainCustomer(model *models.CustomerModel) *domain.Customer {
	return &domain.Customer{
		ID:           model.ID,
		TelegramID:   model.TelegramID,
		Username:     model.Username,
		FullName:     model.FullName,
		Email:        model.Email,
		Phone:        model.Phone,
		Language:     model.Language,
		Country:      model.Country,
		Currency:     model.Currency,
		Active:       model.Active,
		LastActivity: model.LastActivity,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMCustomer(customer *domain.Customer) *models.CustomerModel {
	return &models.CustomerModel{
		ID:           customer.ID,
		TelegramID:   customer.TelegramID,
		Username:     customer.Username,
		FullName:     customer.FullName,
		Email:        customer.Email,
		Phone:        customer.Phone,
		Language:     customer.Language,
		Country:      customer.Country,
		Currency:     customer.Currency,
		Active:       customer.Active,
		LastActivity: customer.LastActivity,
		CreatedAt:    customer.CreatedAt,
		UpdatedAt:    customer.UpdatedAt,
	}
}
