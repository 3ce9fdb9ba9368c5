package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"orderapi/internal/model"
	"orderapi/internal/mw"
	"orderapi/internal/service"
)

func ListOrdersHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		orders, err := orderSvc.List(r.Context())
		if err != nil {
			slog.Error("list orders failed", "error", err, "request_id", mw.RequestIDFromContext(r.Context()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusOK, orders)
	}
}

func GetOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		order, err := orderSvc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				w.WriteHeader(http.StatusNotFound)
			default:
				slog.Error("get order failed", "id", id, "error", err, "request_id", mw.RequestIDFromContext(r.Context()))
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}

		writeJSON(w, http.StatusOK, order)
	}
}

func CreateOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var order model.Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		created, err := orderSvc.Create(r.Context(), order)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrClientNotFound):
				http.Error(w, "client not found", http.StatusNotFound)
			default:
				slog.Error("create order failed", "id", order.ID, "error", err, "request_id", mw.RequestIDFromContext(r.Context()))
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}

		writeJSON(w, http.StatusCreated, created)
	}
}

func ReplaceOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var order model.Order
		if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		if err := orderSvc.Replace(r.Context(), id, order); err != nil {
			slog.Error("replace order failed", "id", id, "error", err, "request_id", mw.RequestIDFromContext(r.Context()))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func DeleteOrderHandler(orderSvc *service.OrderService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := orderSvc.Delete(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, service.ErrOrderNotFound):
				w.WriteHeader(http.StatusNotFound)
			default:
				slog.Error("delete order failed", "id", id, "error", err, "request_id", mw.RequestIDFromContext(r.Context()))
				http.Error(w, err.Error(), http.StatusBadRequest)
			}
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}
