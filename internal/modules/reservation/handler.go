package reservation

import (
	"errors"
	"net/http"
	"strconv"

	"concierge/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/reservations", h.ListMine)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	res := admin.Group("/reservations")
	{
		res.GET("", h.ListAll)
		res.POST("", h.CreateManual)
		res.PUT("/:id/provider", h.AssignProvider)
		res.PUT("/:id/status", h.UpdateStatus)
	}
}

func (h *Handler) ListMine(c *gin.Context) {
	reservations, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RESERVATION_LIST_FAILED", "Failed to list reservations")
		return
	}
	response.Success(c, http.StatusOK, reservations)
}

func (h *Handler) ListAll(c *gin.Context) {
	reservations, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "RESERVATION_LIST_FAILED", "Failed to list reservations")
		return
	}
	response.Success(c, http.StatusOK, reservations)
}

func (h *Handler) CreateManual(c *gin.Context) {
	var dto CreateReservationDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "user_id and date are required")
		return
	}

	res, err := h.service.CreateManual(c.Request.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrClientNotFound) {
			response.Error(c, http.StatusBadRequest, "CLIENT_NOT_FOUND", "Client account does not exist")
			return
		}
		response.Error(c, http.StatusBadRequest, "RESERVATION_FAILED", "Failed to create reservation")
		return
	}

	response.Success(c, http.StatusCreated, res)
}

func (h *Handler) AssignProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var dto AssignProviderDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "provider_id is required")
		return
	}

	res, err := h.service.AssignProvider(c.Request.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrProviderNotFound):
			response.Error(c, http.StatusNotFound, "PROVIDER_NOT_FOUND", "Provider not found")
		case errors.Is(err, ErrNotAssignable):
			response.Error(c, http.StatusConflict, "NOT_ASSIGNABLE", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "RESERVATION_FAILED", "Failed to assign provider")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var dto UpdateStatusDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "status is required")
		return
	}

	res, err := h.service.UpdateStatus(c.Request.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Reservation not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status")
		default:
			response.Error(c, http.StatusInternalServerError, "RESERVATION_FAILED", "Failed to update status")
		}
		return
	}

	response.Success(c, http.StatusOK, res)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
