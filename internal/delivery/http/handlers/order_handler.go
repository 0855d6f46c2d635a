package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	orderdto "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/dto/order"
	usecase "github.com/bu6wer8/student-services-V4-Docker/internal/usecase/order"
	"github.com/go-chi/chi/v5"
)

type createOrderRequest struct {
	CustomerID    string    `json:"customer_id"`
	ServiceType   string    `json:"service_type"`
	AcademicLevel string    `json:"academic_level"`
	Subject       string    `json:"subject"`
	Requirements  string    `json:"requirements"`
	SpecialNotes  string    `json:"special_notes"`
	Deadline      time.Time `json:"deadline"`
	Currency      string    `json:"currency"`
}

func CreateOrderHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createOrderRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if req.CustomerID == "" || req.Subject == "" || req.Requirements == "" {
			respondJSON(w, http.StatusBadRequest, errorResponse{Error: "customer_id, subject and requirements are required"})
			return
		}
		if req.Currency == "" {
			req.Currency = "USD"
		}

		order, err := uc.CreateOrder(&orderdto.CreateOrderInput{
			CustomerID:    req.CustomerID,
			ServiceType:   domain.ServiceType(req.ServiceType),
			AcademicLevel: domain.AcademicLevel(req.AcademicLevel),
			Subject:       req.Subject,
			Requirements:  req.Requirements,
			SpecialNotes:  req.SpecialNotes,
			Deadline:      req.Deadline,
			Currency:      req.Currency,
		})
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusCreated, order)
	}
}

func GetOrderHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := uc.GetOrderByID(chi.URLParam(r, "orderID"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, order)
	}
}

func GetOrderByNumberHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := uc.GetOrderByNumber(chi.URLParam(r, "number"))
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, order)
	}
}

type listOrdersResponse struct {
	Orders []*domain.Order `json:"orders"`
	Total  int64           `json:"total"`
}

func ListOrdersHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		page, _ := strconv.Atoi(q.Get("page"))
		limit, _ := strconv.Atoi(q.Get("limit"))

		input := &orderdto.ListOrdersInput{
			Filters: domain.OrderFilters{
				CustomerID:    q.Get("customer_id"),
				Number:        q.Get("number"),
				ServiceType:   domain.ServiceType(q.Get("service_type")),
				Status:        domain.OrderStatus(q.Get("status")),
				PaymentStatus: domain.PaymentStatus(q.Get("payment_status")),
			},
			SortBy:    q.Get("sort_by"),
			SortOrder: q.Get("sort_order"),
			Page:      page,
			Limit:     limit,
		}

		orders, total, err := uc.ListOrders(input)
		if err != nil {
			respondError(w, err)
			return
		}

		respondJSON(w, http.StatusOK, listOrdersResponse{Orders: orders, Total: total})
	}
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func UpdateOrderStatusHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateStatusRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := uc.UpdateOrderStatus(chi.URLParam(r, "orderID"), domain.OrderStatus(req.Status)); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}

type cancelOrderRequest struct {
	Reason string `json:"reason"`
}

func CancelOrderHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req cancelOrderRequest
		if !decodeBody(w, r, &req) {
			return
		}
		if req.Reason == "" {
			req.Reason = "admin"
		}

		if err := uc.CancelOrder(chi.URLParam(r, "orderID"), req.Reason); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}

type deliverOrderRequest struct {
	FilePath string `json:"file_path"`
}

func DeliverOrderHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deliverOrderRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := uc.MarkDelivered(chi.URLParam(r, "orderID"), req.FilePath); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}

type adminNotesRequest struct {
	Notes string `json:"notes"`
}

func SetAdminNotesHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req adminNotesRequest
		if !decodeBody(w, r, &req) {
			return
		}

		if err := uc.SetAdminNotes(chi.URLParam(r, "orderID"), req.Notes); err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, nil)
	}
}

func CustomerOrdersHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		orders, err := uc.GetOrdersByCustomerID(chi.URLParam(r, "customerID"), limit)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, orders)
	}
}

func OrderStatisticsHandler(uc usecase.OrderUsecase) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		dateTo := time.Now()
		dateFrom := dateTo.AddDate(0, -1, 0)
		if v := q.Get("date_from"); v != "" {
			if parsed, err := time.Parse(time.RFC3339, v); err == nil {
				dateFrom = parsed
			}
		}
		if v := q.Get("date_to"); v != "" {
			if parsed, err := time.Parse(time.RFC3339, v); err == nil {
				dateTo = parsed
			}
		}

		stats, err := uc.GetOrderStatistics(dateFrom, dateTo)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, stats)
	}
}
