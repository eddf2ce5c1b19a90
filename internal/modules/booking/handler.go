package booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tablebook/internal/domain"
	"tablebook/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the advisory availability read.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/restaurants/:id/availability", h.GetAvailability)
}

// RegisterCustomerRoutes exposes the booking write path.
func (h *Handler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	rg.POST("/reservations", h.CreateReservation)
	rg.GET("/reservations/:id", h.GetReservation)
	rg.GET("/users/me/reservations", h.GetMyReservations)
	rg.PATCH("/reservations/:id/cancel", h.CancelReservation)
}

// RegisterVendorRoutes exposes vendor lifecycle management.
func (h *Handler) RegisterVendorRoutes(rg *gin.RouterGroup) {
	rg.PATCH("/reservations/:id/status", h.UpdateReservationStatus)
	rg.GET("/restaurants/:id/reservations", h.GetRestaurantReservations)
}

func (h *Handler) GetAvailability(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	date := c.Query("date")
	partySize, err := strconv.Atoi(c.Query("party_size"))
	if date == "" || err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date and party_size are required")
		return
	}

	slots, svcErr := h.service.Availability(c.Request.Context(), restaurantID, date, partySize)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"restaurant_id": restaurantID,
		"date":          date,
		"party_size":    partySize,
		"slots":         slots,
	})
}

func (h *Handler) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	req.CustomerID = c.GetInt64("user_id")

	r, err := h.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"reservation": r})
}

func (h *Handler) GetReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	r, svcErr := h.service.GetReservation(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}
	if r.CustomerID != c.GetInt64("user_id") {
		respondError(c, ErrForbidden)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) GetMyReservations(c *gin.Context) {
	customerID := c.GetInt64("user_id")

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, err := h.service.ListCustomerReservations(c.Request.Context(), customerID, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": list})
}

func (h *Handler) CancelReservation(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req CancelReservationRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	r, svcErr := h.service.CancelByCustomer(c.Request.Context(), id, c.GetInt64("user_id"), req.Reason)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) UpdateReservationStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid reservation ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, svcErr := h.service.TransitionStatus(
		c.Request.Context(),
		id,
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
		domain.ReservationStatus(req.Status),
		req.Reason,
	)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservation": r})
}

func (h *Handler) GetRestaurantReservations(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	list, svcErr := h.service.ListRestaurantReservations(
		c.Request.Context(),
		restaurantID,
		c.GetInt64("user_id"),
		domain.UserRole(c.GetString("role")),
		c.Query("date"),
	)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reservations": list})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid reservation parameters")
	case errors.Is(err, ErrRestaurantNotFound), errors.Is(err, ErrReservationNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, ErrRestaurantInactive):
		response.Error(c, http.StatusUnprocessableEntity, "RESTAURANT_INACTIVE", "Restaurant is not accepting reservations")
	case errors.Is(err, ErrOutOfHours):
		response.Error(c, http.StatusUnprocessableEntity, "OUT_OF_HOURS", "Requested time is outside operating hours")
	case errors.Is(err, ErrNoCapacity):
		response.Error(c, http.StatusConflict, "NO_CAPACITY", "No table is available for the selected slot")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not allowed to perform this action")
	case errors.Is(err, ErrInvalidTransition):
		response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Reservation is not in a state that allows this change")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
