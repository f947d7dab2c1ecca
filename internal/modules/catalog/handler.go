package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"concierge/internal/domain"
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
	api.GET("/services", h.ListServices)
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	props := protected.Group("/properties")
	{
		props.POST("", h.CreateProperty)
		props.GET("", h.ListMyProperties)
		props.PUT("/:id", h.UpdateProperty)
		props.DELETE("/:id", h.DeactivateProperty)
	}
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.GET("/services", h.ListAllServices)
	admin.POST("/services", h.CreateService)
	admin.PUT("/services/:id", h.UpdateService)
	admin.DELETE("/services/:id", h.DeactivateService)

	admin.GET("/properties", h.ListAllProperties)

	admin.GET("/providers", h.ListProviders)
	admin.POST("/providers", h.CreateProvider)
	admin.PUT("/providers/:id", h.UpdateProvider)
	admin.DELETE("/providers/:id", h.DeactivateProvider)
}

func (h *Handler) ListServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context(), false)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) ListAllServices(c *gin.Context) {
	services, err := h.service.ListServices(c.Request.Context(), true)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to list services")
		return
	}
	response.Success(c, http.StatusOK, services)
}

func (h *Handler) CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name and a positive price are required")
		return
	}

	svc, err := h.service.CreateService(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to create service")
		return
	}
	response.Success(c, http.StatusCreated, svc)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	svc, err := h.service.UpdateService(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err, "Failed to update service")
		return
	}
	response.Success(c, http.StatusOK, svc)
}

func (h *Handler) DeactivateService(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateService(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err, "Failed to deactivate service")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Address is required")
		return
	}

	p, err := h.service.CreateProperty(c.Request.Context(), c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), req)
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			response.Error(c, http.StatusBadRequest, "OWNER_NOT_FOUND", "Owner account does not exist")
			return
		}
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to create property")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) ListMyProperties(c *gin.Context) {
	properties, err := h.service.ListMyProperties(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to list properties")
		return
	}
	response.Success(c, http.StatusOK, properties)
}

func (h *Handler) ListAllProperties(c *gin.Context) {
	properties, err := h.service.ListAllProperties(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to list properties")
		return
	}
	response.Success(c, http.StatusOK, properties)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProperty(c.Request.Context(), c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), id, req)
	if err != nil {
		h.writeCatalogError(c, err, "Failed to update property")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeactivateProperty(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateProperty(c.Request.Context(), c.GetInt64("user_id"), domain.UserRole(c.GetString("role")), id); err != nil {
		h.writeCatalogError(c, err, "Failed to deactivate property")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) CreateProvider(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name is required")
		return
	}

	p, err := h.service.CreateProvider(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to create provider")
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) ListProviders(c *gin.Context) {
	includeInactive := c.Query("include_inactive") == "true"
	providers, err := h.service.ListProviders(c.Request.Context(), includeInactive)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", "Failed to list providers")
		return
	}
	response.Success(c, http.StatusOK, providers)
}

func (h *Handler) UpdateProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	p, err := h.service.UpdateProvider(c.Request.Context(), id, req)
	if err != nil {
		h.writeCatalogError(c, err, "Failed to update provider")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) DeactivateProvider(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.service.DeactivateProvider(c.Request.Context(), id); err != nil {
		h.writeCatalogError(c, err, "Failed to deactivate provider")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deactivated": true})
}

func (h *Handler) writeCatalogError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrNotOwned) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
		return
	}
	response.Error(c, http.StatusInternalServerError, "CATALOG_FAILED", fallback)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}
