package handlers

import (
	"net/http"

	usecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/order"
	"github.com/go-chi/chi/v5"
)

type startCardPaymentRequest struct {
	CustomerEmail string `json:"customer_email"`
}

func StartCardPaymentHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req startCardPaymentRequest
		if !decodeBody(w, r, &req) {
			return
		}

		session, err := uc.StartCardPayment(chi.URLParam(r, "orderID"), req.CustomerEmail)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, session)
	}
}

type confirmPaymentRequest struct {
	ExternalRef string `json:"external_ref"`
}

func ConfirmPaymentHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req confirmPaymentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ExternalRef == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "external_ref is required"})
			return
		}

		payment, err := uc.ConfirmPayment(req.ExternalRef)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, payment)
	}
}

type failPaymentRequest struct {
	ExternalRef string `json:"external_ref"`
	Reason      string `json:"reason"`
}

func FailPaymentHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req failPaymentRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ExternalRef == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "external_ref is required"})
			return
		}

		if err := uc.FailPayment(req.ExternalRef, req.Reason); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}

func RefundPaymentHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := uc.RefundPayment(chi.URLParam(r, "orderID")); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}

type submitReceiptRequest struct {
	ReceiptPath string `json:"receipt_path"`
}

func SubmitBankReceiptHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitReceiptRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.ReceiptPath == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "receipt_path is required"})
			return
		}

		payment, err := uc.SubmitBankReceipt(chi.URLParam(r, "orderID"), req.ReceiptPath)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusCreated, payment)
	}
}

func VerifyBankReceiptHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payment, err := uc.VerifyBankReceipt(chi.URLParam(r, "paymentID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, payment)
	}
}
