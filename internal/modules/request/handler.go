package request

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
	reqs := protected.Group("/requests")
	{
		reqs.POST("", h.Create)
		reqs.GET("", h.ListMine)
		reqs.PUT("/:id/cancel", h.Cancel)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/requests", h.ListAll)
	admin.PUT("/requests/:id/status", h.UpdateStatus)
}

func (h *Handler) Create(c *gin.Context) {
	var dto CreateRequestDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "service_id and scheduled_date are required")
		return
	}

	req, err := h.service.Create(c.Request.Context(), c.GetInt64("user_id"), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrServiceUnavailable):
			response.Error(c, http.StatusBadRequest, "SERVICE_UNAVAILABLE", "Service is not available")
		case errors.Is(err, ErrPropertyNotOwned):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Property not found")
		default:
			response.Error(c, http.StatusBadRequest, "REQUEST_FAILED", "Failed to submit request")
		}
		return
	}

	response.Success(c, http.StatusCreated, req)
}

func (h *Handler) ListMine(c *gin.Context) {
	requests, err := h.service.ListMine(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REQUEST_LIST_FAILED", "Failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, requests)
}

func (h *Handler) ListAll(c *gin.Context) {
	requests, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REQUEST_LIST_FAILED", "Failed to list requests")
		return
	}
	response.Success(c, http.StatusOK, requests)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	req, err := h.service.Cancel(c.Request.Context(), c.GetInt64("user_id"), id)
	if err != nil {
		switch {
		// missing, foreign and non-pending all answer the same way so the
		// response leaks nothing; the service logs which case it was
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrNotOwned), errors.Is(err, ErrNotPending):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
		default:
			response.Error(c, http.StatusInternalServerError, "REQUEST_FAILED", "Failed to cancel request")
		}
		return
	}

	response.Success(c, http.StatusOK, req)
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

	result, err := h.service.UpdateStatus(c.Request.Context(), id, dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Request not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Unknown status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "REQUEST_FAILED", "Failed to update status")
		}
		return
	}

	if result.Warning != "" {
		response.SuccessWithWarning(c, http.StatusOK, result, result.Warning)
		return
	}
	response.Success(c, http.StatusOK, result)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
