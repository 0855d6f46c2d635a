package handlers

import (
	"net/http"

	customerusecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/customer"
	"github.com/go-chi/chi/v5"
)

type touchCustomerRequest struct {
	TelegramID string `json:"telegram_id"`
	Username   string `json:"username"`
	FullName   string `json:"full_name"`
	Language   string `json:"language"`
	Country    string `json:"country"`
}

func TouchCustomerHandler(uc customerusecase.CustomerUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req touchCustomerRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.TelegramID == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "telegram_id is required"})
			return
		}

		customer, err := uc.RegisterOrTouch(&customerusecase.TouchCustomerInput{
			TelegramID: req.TelegramID,
			Username:   req.Username,
			FullName:   req.FullName,
			Language:   req.Language,
			Country:    req.Country,
		})
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, customer)
	}
}

type updatePreferencesRequest struct {
	Language string `json:"language"`
	Currency string `json:"currency"`
}

func UpdatePreferencesHandler(uc customerusecase.CustomerUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePreferencesRequest
		if !decodeBody(w, r, &req) {
			return
		}

		customer, err := uc.UpdatePreferences(chi.URLParam(r, "customerID"), req.Language, req.Currency)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, customer)
	}
}

func GetCustomerHandler(uc customerusecase.CustomerUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		customer, err := uc.GetByTelegramID(chi.URLParam(r, "telegramID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, customer)
	}
}
