package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/rl1809/food-order/internal/core/domain"
	"github.com/rl1809/food-order/internal/core/service"
)

const emptyOrderMessage = "Order must include items"

type HTTPHandler struct {
	catalog *service.CatalogService
	orders  *service.OrderService
	log     logrus.FieldLogger
}

type PlaceOrderHTTPRequest struct {
	Items []domain.OrderItem `json:"items"`
}

type PlaceOrderHTTPResponse struct {
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

type ErrorHTTPResponse struct {
	Error string `json:"error"`
}

func NewHTTPHandler(catalog *service.CatalogService, orders *service.OrderService, log logrus.FieldLogger) *HTTPHandler {
	return &HTTPHandler{catalog: catalog, orders: orders, log: log}
}

func (h *HTTPHandler) ListFood(w http.ResponseWriter, r *http.Request) {
	items, err := h.catalog.ListFood(r.Context())
	if err != nil {
		h.internalError(w, "list food", err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *HTTPHandler) Seed(w http.ResponseWriter, r *http.Request) {
	msg, err := h.catalog.Seed(r.Context())
	if err != nil {
		h.internalError(w, "seed", err)
		return
	}

	h.log.Info("catalog seeded")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(msg))
}

func (h *HTTPHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{Error: "invalid request body"})
		return
	}

	id, err := h.orders.PlaceOrder(r.Context(), req.Items)
	if err != nil {
		if errors.Is(err, service.ErrEmptyOrder) {
			writeJSON(w, http.StatusBadRequest, ErrorHTTPResponse{Error: emptyOrderMessage})
			return
		}
		h.internalError(w, "place order", err)
		return
	}

	h.log.WithFields(logrus.Fields{"order_id": id, "lines": len(req.Items)}).Info("order placed")
	writeJSON(w, http.StatusOK, PlaceOrderHTTPResponse{
		Message: service.OrderConfirmation,
		OrderID: id,
	})
}

func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.internalError(w, "list orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *HTTPHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPHandler) internalError(w http.ResponseWriter, op string, err error) {
	h.log.WithError(err).WithField("op", op).Error("request failed")
	writeJSON(w, http.StatusInternalServerError, ErrorHTTPResponse{Error: "internal error"})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
