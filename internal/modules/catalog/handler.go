package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"tablebook/internal/pkg/response"
	"tablebook/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterPublicRoutes exposes the customer-facing directory.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/restaurants", h.ListRestaurants)
	rg.GET("/restaurants/:id", h.GetRestaurant)
	rg.GET("/restaurants/:id/tables", h.ListTables)
}

// RegisterVendorRoutes exposes restaurant and table management.
func (h *Handler) RegisterVendorRoutes(rg *gin.RouterGroup) {
	rg.POST("/restaurants", h.CreateRestaurant)
	rg.PATCH("/restaurants/:id", h.UpdateRestaurant)
	rg.PATCH("/restaurants/:id/deactivate", h.DeactivateRestaurant)
	rg.PATCH("/restaurants/:id/activate", h.ActivateRestaurant)
	rg.POST("/restaurants/:id/tables", h.AddTable)
	rg.PATCH("/restaurants/:id/tables/:tableId", h.SetTableAvailability)
}

func (h *Handler) ListRestaurants(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	list, total, err := h.service.ListRestaurants(c.Request.Context(), repository.RestaurantFilters{
		City:   c.Query("city"),
		Active: c.Query("include_inactive") != "true",
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"restaurants": list,
		"total":       total,
	})
}

func (h *Handler) GetRestaurant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	r, svcErr := h.service.GetRestaurant(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurant": r})
}

func (h *Handler) ListTables(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	tables, svcErr := h.service.ListTables(c.Request.Context(), id)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"tables": tables})
}

func (h *Handler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, err := h.service.CreateRestaurant(c.Request.Context(), c.GetInt64("user_id"), req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"restaurant": r})
}

func (h *Handler) UpdateRestaurant(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	r, svcErr := h.service.UpdateRestaurant(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"restaurant": r})
}

func (h *Handler) DeactivateRestaurant(c *gin.Context) {
	h.setActive(c, false)
}

func (h *Handler) ActivateRestaurant(c *gin.Context) {
	h.setActive(c, true)
}

func (h *Handler) setActive(c *gin.Context, active bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	var svcErr error
	if active {
		svcErr = h.service.ActivateRestaurant(c.Request.Context(), c.GetInt64("user_id"), id)
	} else {
		svcErr = h.service.DeactivateRestaurant(c.Request.Context(), c.GetInt64("user_id"), id)
	}
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"is_active": active})
}

func (h *Handler) AddTable(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}

	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	t, svcErr := h.service.AddTable(c.Request.Context(), c.GetInt64("user_id"), id, req)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"table": t})
}

func (h *Handler) SetTableAvailability(c *gin.Context) {
	restaurantID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || restaurantID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid restaurant ID")
		return
	}
	tableID, err := strconv.ParseInt(c.Param("tableId"), 10, 64)
	if err != nil || tableID <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid table ID")
		return
	}

	var req SetTableAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsAvailable == nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "is_available is required")
		return
	}

	t, svcErr := h.service.SetTableAvailability(c.Request.Context(), c.GetInt64("user_id"), restaurantID, tableID, *req.IsAvailable)
	if svcErr != nil {
		respondError(c, svcErr)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"table": t})
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid restaurant parameters")
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not own this restaurant")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}
