package lead

import (
	"net/http"

	"concierge/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(api *gin.RouterGroup) {
	api.POST("/leads", h.Create)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/leads", h.List)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "A valid email is required")
		return
	}

	l, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LEAD_FAILED", "Failed to record your inquiry")
		return
	}

	response.Success(c, http.StatusCreated, l)
}

func (h *Handler) List(c *gin.Context) {
	leads, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LEAD_LIST_FAILED", "Failed to list leads")
		return
	}

	response.Success(c, http.StatusOK, leads)
}
