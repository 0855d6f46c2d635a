package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/logger"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Get().Errorw("failed to encode response", "error", err.Error())
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps the domain error taxonomy onto HTTP statuses so the
// bot and dashboard can render a precise message.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrOrderNotFound),
		errors.Is(err, domain.ErrPaymentNotFound),
		errors.Is(err, domain.ErrCustomerNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidServiceType),
		errors.Is(err, domain.ErrInvalidAcademicLevel),
		errors.Is(err, domain.ErrInvalidCurrency),
		errors.Is(err, domain.ErrDeadlineNotFuture),
		errors.Is(err, domain.ErrDeliveredFileMissing):
		respondJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrInvalidStateTransition),
		errors.Is(err, domain.ErrCancelRequiresRefund),
		errors.Is(err, domain.ErrDuplicatePayment),
		errors.Is(err, domain.ErrPaymentAlreadySucceeded),
		errors.Is(err, domain.ErrReceiptNotVerified),
		errors.Is(err, domain.ErrNumberConflict):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	default:
		logger.Get().Errorw("internal error", "error", err.Error())
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
