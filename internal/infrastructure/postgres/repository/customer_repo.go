package repository

import (
	"errors"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/mappers"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCustomerRepository struct {
	DB *gorm.DB
}

func NewDefaultCustomerRepository(db *gorm.DB) *DefaultCustomerRepository {
	return &DefaultCustomerRepository{DB: db}
}

func (r *DefaultCustomerRepository) CreateCustomer(customer *domain.Customer) error {
	return r.DB.Create(mappers.ToGORMCustomer(customer)).Error
}

func (r *DefaultCustomerRepository) GetCustomerByID(customerID string) (*domain.Customer, error) {
	var customer models.CustomerModel
	if err := r.DB.First(&customer, "id = ?", customerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCustomer(&customer), nil
}

func (r *DefaultCustomerRepository) GetCustomerByTelegramID(telegramID string) (*domain.Customer, error) {
	var customer models.CustomerModel
	if err := r.DB.First(&customer, "telegram_id = ?", telegramID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCustomerNotFound
		}
		return nil, err
	}
	return mappers.ToDomainCustomer(&customer), nil
}

func (r *DefaultCustomerRepository) UpdateCustomer(customer *domain.Customer) error {
	return r.DB.Save(mappers.ToGORMCustomer(customer)).Error
}

func (r *DefaultCustomerRepository) TouchLastActivity(customerID string, at time.Time) error {
	return r.DB.Model(&models.CustomerModel{}).
		Where("id = ?", customerID).
		Updates(map[string]interface{}{
			"last_activity": at,
			"updated_at":    at,
		}).Error
}
