package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "restaurant-orders/docs"
	"restaurant-orders/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Service interface {
	service.Order
	service.Contact
}

type Handler struct {
	svc         Service
	corsOrigins []string
	name        string
}

type HandlerOption func(*Handler)

func WithCORSOrigins(origins []string) HandlerOption {
	return func(h *Handler) { h.corsOrigins = origins }
}

// WithServiceName sets the name reported by the health endpoint.
func WithServiceName(name string) HandlerOption {
	return func(h *Handler) { h.name = name }
}

func NewHandler(s Service, opts ...HandlerOption) *Handler {
	h := &Handler{
		svc:         s,
		corsOrigins: []string{"http://localhost:3000"},
		name:        "Restaurant orders",
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(requestLogger(), gin.CustomRecovery(recoverPanic))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     h.corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", h.Health)
		api.POST("/orders/pending", h.CreatePendingOrder)
		api.POST("/orders/:orderId/payment-proof", h.SubmitPaymentProof)
		api.GET("/orders/:orderId", h.GetOrder)
		api.GET("/admin/orders", h.ListOrders)
		api.POST("/contact", h.SendContactMessage)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Message: "Route not found"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health
// @Summary Health
// @Description Liveness probe
// @ID health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /api/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "OK", Message: h.name + " backend is running!"})
}
