package api

import (
	"errors"
	"log/slog"
	"net/http"

	reqdto "github.com/GRAMAPHENIA/resio-sub000/internal/handler/dto/request"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	bookingUseCase usecase.BookingUseCase
}

func NewWebhookHandler(bookingUseCase usecase.BookingUseCase) *WebhookHandler {
	return &WebhookHandler{
		bookingUseCase: bookingUseCase,
	}
}

// @Summary Payment notification
// @Description Receive payment status notifications from the gateway
// @Tags webhooks
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /webhooks/payment [post]
func (h *WebhookHandler) PaymentNotification(c *gin.Context) {
	var req reqdto.PaymentWebhookRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	// The gateway notifies about several event types; only payment events
	// carry a payment reference worth resolving.
	if req.Type != "payment" || req.Data.ID == "" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	_, err := h.bookingUseCase.ProcessPaymentNotification(c.Request.Context(), req.Data.ID)
	if err != nil {
		// Always acknowledge: the gateway retries on non-2xx, and a payment
		// that is not approved yet is not a delivery failure.
		if errors.Is(err, usecase.ErrPaymentNotApproved) {
			c.JSON(http.StatusOK, gin.H{"status": "pending"})
			return
		}
		slog.Warn("payment notification not applied", "payment_id", req.Data.ID, "error", err)
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "processed"})
}
