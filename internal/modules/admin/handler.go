package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tablebook/internal/domain"
	"tablebook/internal/modules/booking"
	"tablebook/internal/pkg/response"
)

type Handler struct {
	service  *Service
	bookings *booking.Service
}

func NewHandler(service *Service, bookings *booking.Service) *Handler {
	return &Handler{service: service, bookings: bookings}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/commissions", h.GetCommissions)
	rg.PATCH("/reservations/:id/status", h.OverrideReservationStatus)
}

func (h *Handler) GetCommissions(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	page, err := h.service.ListCommissions(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
		return
	}

	response.Success(c, http.StatusOK, page)
}

// OverrideReservationStatus lets operators move any reservation along the
// lifecycle regardless of who owns the restaurant. Transition rules still
// apply; a terminal reservation stays terminal.
func (h *Handler) OverrideReservationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req booking.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, svcErr := h.bookings.TransitionStatus(
		c.Request.Context(),
		id,
		c.GetInt64("user_id"),
		domain.RoleAdmin,
		domain.ReservationStatus(req.Status),
		req.Reason,
	)
	if svcErr != nil {
		h.respondBookingError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation is not in a state that allows this change")
	case errors.Is(err, booking.ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
