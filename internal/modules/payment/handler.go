package payment

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tablebook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects to be mounted behind the internal-token guard;
// the payment gateway is the only caller.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/completed", h.PaymentCompleted)
}

type paymentCompletedRequest struct {
	ReservationID int64 `json:"reservation_id" binding:"required"`
}

func (h *Handler) PaymentCompleted(c *gin.Context) {
	var req paymentCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "reservation_id is required")
		return
	}

	r, err := h.service.HandlePaymentCompleted(c.Request.Context(), req.ReservationID)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrNotPayable):
			response.Error(c, http.StatusConflict, "NOT_PAYABLE", "Reservation is cancelled or completed")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to record payment")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}
