package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"restaurant-orders/internal/service"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func newErrorResponse(c *gin.Context, statusCode int, message, detail string) {
	entry := logrus.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"status":     statusCode,
	})
	if detail != "" {
		entry = entry.WithField("error", detail)
	}
	if statusCode >= http.StatusInternalServerError {
		entry.Error(message)
	} else {
		entry.Warn(message)
	}
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message, Error: detail})
}

// messages maps service sentinels to client-facing text; a zero value keeps the default.
type messages struct {
	notFound string
	internal string
}

func respondServiceError(c *gin.Context, err error, m messages) {
	switch {
	case errors.Is(err, service.ErrValidation):
		newErrorResponse(c, http.StatusBadRequest, "Missing required fields", err.Error())
	case errors.Is(err, service.ErrNotFound):
		msg := m.notFound
		if msg == "" {
			msg = "Order not found"
		}
		newErrorResponse(c, http.StatusNotFound, msg, "")
	case errors.Is(err, service.ErrExpired):
		newErrorResponse(c, http.StatusBadRequest, "Payment deadline has expired. Please place a new order.", "")
	case errors.Is(err, service.ErrInvalidTransition):
		newErrorResponse(c, http.StatusConflict, "Order can no longer be updated", err.Error())
	default:
		newErrorResponse(c, http.StatusInternalServerError, m.internal, err.Error())
	}
}

func recoverPanic(c *gin.Context, recovered any) {
	newErrorResponse(c, http.StatusInternalServerError, "Internal server error", fmt.Sprint(recovered))
}
