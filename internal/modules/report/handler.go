package report

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

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	protected.GET("/financials/net-revenue", h.NetRevenue)
}

func (h *Handler) RegisterAdminRoutes(admin *gin.RouterGroup) {
	admin.POST("/expenses", h.RecordExpense)
	admin.GET("/expenses", h.ListExpenses)
}

// NetRevenue answers for the caller's own books. Admins may ask about any
// owner with ?owner_id=.
func (h *Handler) NetRevenue(c *gin.Context) {
	ownerID := c.GetInt64("user_id")
	if raw := c.Query("owner_id"); raw != "" {
		if domain.UserRole(c.GetString("role")) != domain.RoleAdmin {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			return
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid owner_id")
			return
		}
		ownerID = id
	}

	report, err := h.service.NetRevenue(c.Request.Context(), ownerID)
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Owner not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to compute net revenue")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) RecordExpense(c *gin.Context) {
	var dto CreateExpenseDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_id, label and a positive amount are required")
		return
	}

	e, err := h.service.RecordExpense(c.Request.Context(), dto)
	if err != nil {
		if errors.Is(err, ErrOwnerNotFound) {
			response.Error(c, http.StatusBadRequest, "OWNER_NOT_FOUND", "Owner account does not exist")
			return
		}
		response.Error(c, http.StatusBadRequest, "EXPENSE_FAILED", "Failed to record expense")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) ListExpenses(c *gin.Context) {
	raw := c.Query("owner_id")
	ownerID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || ownerID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "owner_id is required")
		return
	}

	expenses, err := h.service.ListExpenses(c.Request.Context(), ownerID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "REPORT_FAILED", "Failed to list expenses")
		return
	}
	response.Success(c, http.StatusOK, expenses)
}
