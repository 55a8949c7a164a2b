package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	httpdelivery "restaurant-orders/internal/delivery/http"
	"restaurant-orders/internal/models"
	"restaurant-orders/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type svcStub struct {
	createPending func(req models.CreateOrderRequest) (models.Order, error)
	submitProof   func(id string, proof models.PaymentProof) (models.Order, error)
	getOrder      func(id string) (models.Order, error)
	listOrders    func() ([]models.Order, error)
	sendContact   func(msg models.ContactMessage) error
}

var _ httpdelivery.Service = (*svcStub)(nil)

func (s *svcStub) CreatePending(_ context.Context, req models.CreateOrderRequest) (models.Order, error) {
	if s.createPending != nil {
		return s.createPending(req)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}

func (s *svcStub) SubmitPaymentProof(_ context.Context, id string, proof models.PaymentProof) (models.Order, error) {
	if s.submitProof != nil {
		return s.submitProof(id, proof)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}

func (s *svcStub) GetOrder(_ context.Context, id string) (models.Order, error) {
	if s.getOrder != nil {
		return s.getOrder(id)
	}
	return models.Order{}, service.ErrNotFound
}

func (s *svcStub) ListOrders(context.Context) ([]models.Order, error) {
	if s.listOrders != nil {
		return s.listOrders()
	}
	return nil, nil
}

func (s *svcStub) SendContactMessage(_ context.Context, msg models.ContactMessage) error {
	if s.sendContact != nil {
		return s.sendContact(msg)
	}
	return nil
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func serve(t *testing.T, s *svcStub, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	r := httpdelivery.NewHandler(s, httpdelivery.WithServiceName("Matt-Kenn")).InitRoutes()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &e))
	return e
}

const createBody = `{
  "customerName":"Ada Obi",
  "customerEmail":"ada@example.com",
  "customerPhone":"+2348000000000",
  "items":[{"name":"Jollof Rice","quantity":2,"price":2500}],
  "subtotal":5000,"deliveryFee":1000,"total":6000,
  "bankDetails":{"accountName":"Matt-Kenn","accountNumber":"0123456789","bankName":"GTBank"}
}`

func TestHealth(t *testing.T) {
	w := serve(t, &svcStub{}, http.MethodGet, "/api/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"status":"OK","message":"Matt-Kenn backend is running!"}`, w.Body.String())
	require.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID_Echoed(t *testing.T) {
	r := httpdelivery.NewHandler(&svcStub{}).InitRoutes()
	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}

func TestCreatePendingOrder_OK(t *testing.T) {
	deadline := time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	var got models.CreateOrderRequest
	s := &svcStub{
		createPending: func(req models.CreateOrderRequest) (models.Order, error) {
			got = req
			return models.Order{
				OrderId:         "MK-ABC-12345",
				CustomerName:    req.CustomerName,
				Items:           req.Items,
				Status:          models.StatusPendingPayment,
				PaymentDeadline: deadline,
			}, nil
		},
	}

	w := serve(t, s, http.MethodPost, "/api/orders/pending", createBody)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success         bool         `json:"success"`
		Message         string       `json:"message"`
		OrderId         string       `json:"orderId"`
		Order           models.Order `json:"order"`
		PaymentDeadline time.Time    `json:"paymentDeadline"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	require.Equal(t, "Order created. Payment required to confirm.", resp.Message)
	require.Equal(t, "MK-ABC-12345", resp.OrderId)
	require.Equal(t, "MK-ABC-12345", resp.Order.OrderId)
	require.True(t, deadline.Equal(resp.PaymentDeadline))

	require.Equal(t, "Ada Obi", got.CustomerName)
	require.Len(t, got.Items, 1)
	require.Equal(t, "GTBank", got.BankDetails.BankName)
}

func TestCreatePendingOrder_ValidationError_400(t *testing.T) {
	s := &svcStub{
		createPending: func(models.CreateOrderRequest) (models.Order, error) {
			return models.Order{}, fmt.Errorf("%w: customerPhone is required", service.ErrValidation)
		},
	}

	w := serve(t, s, http.MethodPost, "/api/orders/pending", `{"customerName":"x"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	e := decodeEnvelope(t, w)
	require.False(t, e.Success)
	require.Equal(t, "Missing required fields", e.Message)
	require.Contains(t, e.Error, "customerPhone")
}

func TestCreatePendingOrder_MalformedBody_400(t *testing.T) {
	w := serve(t, &svcStub{}, http.MethodPost, "/api/orders/pending", `{"items":`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "Invalid request body", decodeEnvelope(t, w).Message)
}

func TestCreatePendingOrder_StorageError_500(t *testing.T) {
	s := &svcStub{
		createPending: func(models.CreateOrderRequest) (models.Order, error) {
			return models.Order{}, fmt.Errorf("save pending order: disk full")
		},
	}

	w := serve(t, s, http.MethodPost, "/api/orders/pending", createBody)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	e := decodeEnvelope(t, w)
	require.Equal(t, "Failed to create order", e.Message)
	require.Contains(t, e.Error, "disk full")
}

func TestSubmitPaymentProof_OK(t *testing.T) {
	var gotID string
	var gotProof models.PaymentProof
	s := &svcStub{
		submitProof: func(id string, proof models.PaymentProof) (models.Order, error) {
			gotID, gotProof = id, proof
			return models.Order{OrderId: id, Status: models.StatusPaymentSubmitted, PaymentProofUploaded: true}, nil
		},
	}

	w := serve(t, s, http.MethodPost, "/api/orders/MK-ABC-12345/payment-proof",
		`{"paymentReference":"TRX-9","customerNote":"no onions"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Payment proof submitted successfully")
	require.Contains(t, w.Body.String(), `"status":"payment_submitted"`)

	require.Equal(t, "MK-ABC-12345", gotID)
	require.Equal(t, "TRX-9", gotProof.PaymentReference)
	require.Equal(t, "no onions", gotProof.CustomerNote)
}

func TestSubmitPaymentProof_EmptyBodyAccepted(t *testing.T) {
	s := &svcStub{
		submitProof: func(id string, proof models.PaymentProof) (models.Order, error) {
			require.Equal(t, models.PaymentProof{}, proof)
			return models.Order{OrderId: id}, nil
		},
	}

	w := serve(t, s, http.MethodPost, "/api/orders/MK-1/payment-proof", "")
	require.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitPaymentProof_ErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		code    int
		message string
	}{
		{"not found", fmt.Errorf("%w: pending order MK-1", service.ErrNotFound), http.StatusNotFound, "Order not found or expired"},
		{"expired", fmt.Errorf("%w: order MK-1", service.ErrExpired), http.StatusBadRequest, "Payment deadline has expired. Please place a new order."},
		{"transition", fmt.Errorf("%w: payment_submitted -> pending_payment", service.ErrInvalidTransition), http.StatusConflict, "Order can no longer be updated"},
		{"internal", fmt.Errorf("save order: read-only fs"), http.StatusInternalServerError, "Failed to submit payment proof"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &svcStub{
				submitProof: func(string, models.PaymentProof) (models.Order, error) {
					return models.Order{}, tc.err
				},
			}
			w := serve(t, s, http.MethodPost, "/api/orders/MK-1/payment-proof", `{}`)
			require.Equal(t, tc.code, w.Code)

			e := decodeEnvelope(t, w)
			require.False(t, e.Success)
			require.Equal(t, tc.message, e.Message)
		})
	}
}

func TestGetOrder_OK(t *testing.T) {
	s := &svcStub{
		getOrder: func(id string) (models.Order, error) {
			return models.Order{OrderId: id, Status: models.StatusPendingPayment}, nil
		},
	}

	w := serve(t, s, http.MethodGet, "/api/orders/MK-ABC-12345", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"success":true`)
	require.Contains(t, w.Body.String(), `"orderId":"MK-ABC-12345"`)
}

func TestGetOrder_NotFound_404(t *testing.T) {
	w := serve(t, &svcStub{}, http.MethodGet, "/api/orders/does-not-exist", "")

	require.Equal(t, http.StatusNotFound, w.Code)
	e := decodeEnvelope(t, w)
	require.False(t, e.Success)
	require.Equal(t, "Order not found", e.Message)
}

func TestListOrders_RegularError_500(t *testing.T) {
	s := &svcStub{
		listOrders: func() ([]models.Order, error) {
			return nil, fmt.Errorf("regular error")
		},
	}

	w := serve(t, s, http.MethodGet, "/api/admin/orders", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "regular error")
}

func TestListOrders_EmptyIsArray(t *testing.T) {
	w := serve(t, &svcStub{}, http.MethodGet, "/api/admin/orders", "")

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"orders":[]}`, w.Body.String())
}

func TestSendContactMessage(t *testing.T) {
	var got models.ContactMessage
	s := &svcStub{sendContact: func(m models.ContactMessage) error { got = m; return nil }}

	w := serve(t, s, http.MethodPost, "/api/contact",
		`{"name":"Bola","email":"b@example.com","phone":"080","message":"Do you cater?"}`)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"success":true,"message":"Message sent successfully"}`, w.Body.String())
	require.Equal(t, "Do you cater?", got.Message)

	s.sendContact = func(models.ContactMessage) error {
		return fmt.Errorf("%w: message is required", service.ErrValidation)
	}
	w = serve(t, s, http.MethodPost, "/api/contact", `{"name":"Bola"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	s.sendContact = func(models.ContactMessage) error { return fmt.Errorf("smtp: 535 auth failed") }
	w = serve(t, s, http.MethodPost, "/api/contact", `{"name":"Bola","email":"b@example.com","message":"hi"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)
	e := decodeEnvelope(t, w)
	require.Equal(t, "Failed to send message", e.Message)
	require.Contains(t, e.Error, "535")
}

func TestHandler_NoRoute(t *testing.T) {
	for _, path := range []string{"/api/unknown", "/nothing/here"} {
		w := serve(t, &svcStub{}, http.MethodGet, path, "")
		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"success":false,"message":"Route not found"}`, w.Body.String())
	}
}

func TestHandler_PanicRecovered(t *testing.T) {
	s := &svcStub{
		listOrders: func() ([]models.Order, error) { panic("boom") },
	}

	w := serve(t, s, http.MethodGet, "/api/admin/orders", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)

	e := decodeEnvelope(t, w)
	require.False(t, e.Success)
	require.Equal(t, "Internal server error", e.Message)
	require.Equal(t, "boom", e.Error)
}

func TestHandler_CORSPreflight(t *testing.T) {
	r := httpdelivery.NewHandler(&svcStub{},
		httpdelivery.WithCORSOrigins([]string{"https://shop.example.com"})).InitRoutes()

	req := httptest.NewRequest(http.MethodOptions, "/api/orders/pending", nil)
	req.Header.Set("Origin", "https://shop.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
}

func TestServer_Run_Shutdown(t *testing.T) {
	s := &httpdelivery.Server{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	errc := make(chan error, 1)
	go func() {
		errc <- s.Run("127.0.0.1:0", handler)
	}()

	time.Sleep(50 * time.Millisecond)

	require.NoError(t, s.Shutdown(context.Background()))
	require.ErrorIs(t, <-errc, http.ErrServerClosed)
}
