package repository

import (
	"errors"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/mappers"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultPaymentRepository struct {
	DB *gorm.DB
}

func NewDefaultPaymentRepository(db *gorm.DB) *DefaultPaymentRepository {
	return &DefaultPaymentRepository{DB: db}
}

func (r *DefaultPaymentRepository) CreatePayment(payment *domain.Payment) error {
	paymentModel := mappers.ToGORMPayment(payment)
	if err := r.DB.Create(paymentModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicatePayment
		}
		return err
	}
	return nil
}

func (r *DefaultPaymentRepository) GetPaymentByID(paymentID string) (*domain.Payment, error) {
	var payment models.PaymentModel
	if err := r.DB.First(&payment, "id = ?", paymentID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&payment), nil
}

func (r *DefaultPaymentRepository) GetPaymentByExternalRef(externalRef string) (*domain.Payment, error) {
	var payment models.PaymentModel
	if err := r.DB.First(&payment, "external_ref = ?", externalRef).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return mappers.ToDomainPayment(&payment), nil
}

func (r *DefaultPaymentRepository) GetPaymentsByOrderID(orderID string) ([]*domain.Payment, error) {
	var paymentModels []models.PaymentModel
	if err := r.DB.Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&paymentModels).Error; err != nil {
		return nil, err
	}

	payments := make([]*domain.Payment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = mappers.ToDomainPayment(&paymentModels[i])
	}

	return payments, nil
}

func (r *DefaultPaymentRepository) MarkSucceeded(paymentID string, at time.Time) (bool, error) {
	res := r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND state = ?", paymentID, domain.StatePending).
		Updates(map[string]interface{}{
			"state":        domain.StateSucceeded,
			"succeeded_at": at,
			"updated_at":   at,
		})
	if res.Error != nil {
		// The partial unique index on (order_id) WHERE state='succeeded'
		// fires here if another attempt already won.
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, domain.ErrPaymentAlreadySucceeded
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *DefaultPaymentRepository) MarkFailed(paymentID, reason string, at time.Time) error {
	res := r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND state = ?", paymentID, domain.StatePending).
		Updates(map[string]interface{}{
			"state":          domain.StateFailed,
			"failure_reason": reason,
			"failed_at":      at,
			"updated_at":     at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}

func (r *DefaultPaymentRepository) MarkRefunded(paymentID string, at time.Time) error {
	res := r.DB.Model(&models.PaymentModel{}).
		Where("id = ? AND state = ?", paymentID, domain.StateSucceeded).
		Updates(map[string]interface{}{
			"state":      domain.StateRefunded,
			"updated_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrInvalidStateTransition
	}
	return nil
}

func (r *DefaultPaymentRepository) SetReceipt(paymentID, receiptPath string) error {
	return r.DB.Model(&models.PaymentModel{}).
		Where("id = ?", paymentID).
		Update("receipt_path", receiptPath).Error
}

func (r *DefaultPaymentRepository) SetReceiptVerified(paymentID string) error {
	return r.DB.Model(&models.PaymentModel{}).
		Where("id = ?", paymentID).
		Update("receipt_verified", true).Error
}

func (r *DefaultPaymentRepository) HasSucceededPayment(orderID string) (bool, error) {
	var count int64
	if err := r.DB.Model(&models.PaymentModel{}).
		Where("order_id = ? AND state = ?", orderID, domain.StateSucceeded).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
