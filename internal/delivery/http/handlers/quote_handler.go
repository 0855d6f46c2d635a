package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/bu6wer8/student-services-V4-Docker/internal/infrastructure/cache"
	"github.com/bu6wer8/student-services-V4-Docker/internal/pricing"
	usecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/order"
)

type quoteRequest struct {
	ServiceType       string `json:"service_type"`
	AcademicLevel     string `json:"academic_level"`
	DaysUntilDeadline int    `json:"days_until_deadline"`
	Currency          string `json:"currency"`
}

// QuoteHandler serves price previews for the bot conversation. Quotes are
// deterministic, so identical requests are answered from the cache.
func QuoteHandler(uc usecase.OrderUsecase, store cache.Store, ttl time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req quoteRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.DaysUntilDeadline < 1 {
			req.DaysUntilDeadline = 1
		}
		if req.Currency == "" {
			req.Currency = "USD"
		}

		key := fmt.Sprintf("quote:%s:%s:%d:%s", req.ServiceType, req.AcademicLevel, req.DaysUntilDeadline, req.Currency)
		if store != nil {
			if cached, ok := store.Get(key); ok {
				var breakdown pricing.Breakdown
				if err := json.Unmarshal(cached, &breakdown); err == nil {
					respondJSON(w, http.StatusOK, &breakdown)
					return
				}
			}
		}

		breakdown, err := uc.Quote(
			domain.ServiceType(req.ServiceType),
			domain.AcademicLevel(req.AcademicLevel),
			req.DaysUntilDeadline,
			req.Currency,
		)
		if err != nil {
			respondError(w, err)
			return
		}

		if store != nil {
			if raw, err := json.Marshal(breakdown); err == nil {
				store.Set(key, raw, ttl)
			}
		}

		respondJSON(w, http.StatusOK, breakdown)
	}
}
