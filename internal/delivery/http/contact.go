package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-orders/internal/models"
)

type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SendContactMessage
// @Summary SendContactMessage
// @Description Forwards a contact-form message to the restaurant inbox
// @ID send-contact-message
// @Accept json
// @Produce json
// @Param input body models.ContactMessage true "contact form"
// @Success 200 {object} messageResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /api/contact [post]
func (h *Handler) SendContactMessage(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.svc.SendContactMessage(c.Request.Context(), msg); err != nil {
		respondServiceError(c, err, messages{internal: "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, messageResponse{Success: true, Message: "Message sent successfully"})
}
