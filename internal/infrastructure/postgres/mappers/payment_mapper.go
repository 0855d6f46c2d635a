package mappers

import (
	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/models"
)

func ToDomainPayment(model *models.PaymentModel) *domain.Payment {
	return &domain.Payment{
		ID:              model.ID,
		OrderID:         model.OrderID,
		ExternalRef:     model.ExternalRef,
		Method:          model.Method,
		Amount:          model.Amount,
		Currency:        model.Currency,
		State:           model.State,
		FailureReason:   model.FailureReason,
		ReceiptPath:     model.ReceiptPath,
		ReceiptVerified: model.ReceiptVerified,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
		SucceededAt:     model.SucceededAt,
		FailedAt:        model.FailedAt,
	}
}

func ToGORMPayment(payment *domain.Payment) *models.PaymentModel {
	return &models.PaymentModel{
		ID:              payment.ID,
		OrderID:         payment.OrderID,
		ExternalRef:     payment.ExternalRef,
		Method:          payment.Method,
		Amount:          payment.Amount,
		Currency:        payment.Currency,
		State:           payment.State,
		FailureReason:   payment.FailureReason,
		ReceiptPath:     payment.ReceiptPath,
		ReceiptVerified: payment.ReceiptVerified,
		CreatedAt:       payment.CreatedAt,
		UpdatedAt:       payment.UpdatedAt,
		SucceededAt:     payment.SucceededAt,
		FailedAt:        payment.FailedAt,
	}
}
