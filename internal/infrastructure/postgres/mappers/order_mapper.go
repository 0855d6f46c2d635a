package mappers

import (
	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	order := &domain.Order{
		ID:            model.ID,
		Number:        model.Number,
		CustomerID:    model.CustomerID,
		ServiceType:   model.ServiceType,
		AcademicLevel: model.AcademicLevel,
		Subject:       model.Subject,
		Requirements:  model.Requirements,
		SpecialNotes:  model.SpecialNotes,
		Deadline:      model.Deadline,
		Pricing: domain.PricingSnapshot{
			BasePrice:          model.BasePrice,
			AcademicMultiplier: model.AcademicMultiplier,
			UrgencyMultiplier:  model.UrgencyMultiplier,
			TotalAmount:        model.TotalAmount,
			TotalAmountUSD:     model.TotalAmountUSD,
			Currency:           model.Currency,
		},
		Status:        model.Status,
		PaymentStatus: model.PaymentStatus,
		DeliveredFile: model.DeliveredFile,
		AdminNotes:    model.AdminNotes,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
		ConfirmedAt:   model.ConfirmedAt,
		PaidAt:        model.PaidAt,
		StartedAt:     model.StartedAt,
		DeliveredAt:   model.DeliveredAt,
		CompletedAt:   model.CompletedAt,
	}

	for i := range model.Payments {
		order.Payments = append(order.Payments, ToDomainPayment(&model.Payments[i]))
	}

	return order
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	return &models.OrderModel{
		ID:                 order.ID,
		Number:             order.Number,
		CustomerID:         order.CustomerID,
		ServiceType:        order.ServiceType,
		AcademicLevel:      order.AcademicLevel,
		Subject:            order.Subject,
		Requirements:       order.Requirements,
		SpecialNotes:       order.SpecialNotes,
		Deadline:           order.Deadline,
		BasePrice:          order.Pricing.BasePrice,
		AcademicMultiplier: order.Pricing.AcademicMultiplier,
		UrgencyMultiplier:  order.Pricing.UrgencyMultiplier,
		TotalAmount:        order.Pricing.TotalAmount,
		TotalAmountUSD:     order.Pricing.TotalAmountUSD,
		Currency:           order.Pricing.Currency,
		Status:             order.Status,
		PaymentStatus:      order.PaymentStatus,
		DeliveredFile:      order.DeliveredFile,
		AdminNotes:         order.AdminNotes,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
		ConfirmedAt:        order.ConfirmedAt,
		PaidAt:             order.PaidAt,
		StartedAt:          order.StartedAt,
		DeliveredAt:        order.DeliveredAt,
		CompletedAt:        order.CompletedAt,
	}
}
