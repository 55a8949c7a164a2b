package http

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"restaurant-orders/internal/models"
)

type createOrderResponse struct {
	Success         bool         `json:"success"`
	Message         string       `json:"message"`
	OrderId         string       `json:"orderId"`
	Order           models.Order `json:"order"`
	PaymentDeadline time.Time    `json:"paymentDeadline"`
}

type orderResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message,omitempty"`
	Order   models.Order `json:"order"`
}

type listOrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
}

// CreatePendingOrder
// @Summary CreatePendingOrder
// @Description Records an order awaiting bank-transfer payment and emails payment instructions
// @ID create-pending-order
// @Accept json
// @Produce json
// @Param input body models.CreateOrderRequest true "customer, items and totals"
// @Success 200 {object} createOrderResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/pending [post]
func (h *Handler) CreatePendingOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	order, err := h.svc.CreatePending(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, messages{internal: "Failed to create order"})
		return
	}

	c.JSON(http.StatusOK, createOrderResponse{
		Success:         true,
		Message:         "Order created. Payment required to confirm.",
		OrderId:         order.OrderId,
		Order:           order,
		PaymentDeadline: order.PaymentDeadline,
	})
}

// SubmitPaymentProof
// @Summary SubmitPaymentProof
// @Description Confirms payment for a pending order before its deadline
// @ID submit-payment-proof
// @Accept json
// @Produce json
// @Param orderId path string true "order id"
// @Param input body models.PaymentProof false "payment reference and note"
// @Success 200 {object} orderResponse
// @Failure 400,404,409 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{orderId}/payment-proof [post]
func (h *Handler) SubmitPaymentProof(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("orderId"))
	if orderID == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing order id", "")
		return
	}

	var proof models.PaymentProof
	if err := c.ShouldBindJSON(&proof); err != nil && !errors.Is(err, io.EOF) {
		newErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	order, err := h.svc.SubmitPaymentProof(c.Request.Context(), orderID, proof)
	if err != nil {
		respondServiceError(c, err, messages{
			notFound: "Order not found or expired",
			internal: "Failed to submit payment proof",
		})
		return
	}

	c.JSON(http.StatusOK, orderResponse{
		Success: true,
		Message: "Payment proof submitted successfully. Your order is being processed.",
		Order:   order,
	})
}

// GetOrder
// @Summary GetOrder
// @Description Returns an order by id, preferring the paid copy over the pending one
// @ID get-order
// @Produce json
// @Param orderId path string true "order id"
// @Success 200 {object} orderResponse
// @Failure 404 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/orders/{orderId} [get]
func (h *Handler) GetOrder(c *gin.Context) {
	orderID := strings.TrimSpace(c.Param("orderId"))

	order, err := h.svc.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		respondServiceError(c, err, messages{internal: "Failed to fetch order"})
		return
	}

	c.JSON(http.StatusOK, orderResponse{Success: true, Order: order})
}

// ListOrders
// @Summary ListOrders
// @Description Lists paid and pending orders, newest first
// @ID list-orders
// @Produce json
// @Success 200 {object} listOrdersResponse
// @Failure 500 {object} errorResponse
// @Router /api/admin/orders [get]
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, messages{internal: "Failed to fetch orders"})
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	c.JSON(http.StatusOK, listOrdersResponse{Success: true, Orders: orders})
}
