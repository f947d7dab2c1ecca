package notification

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	jwtsvc "concierge/internal/pkg/jwt"
	"concierge/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type tokenValidator interface {
	ValidateToken(tokenStr string) (*jwtsvc.Claims, error)
}

type Handler struct {
	service *Service
	hub     *Hub
	jwt     tokenValidator
}

func NewHandler(service *Service, hub *Hub, jwt tokenValidator) *Handler {
	return &Handler{service: service, hub: hub, jwt: jwt}
}

func (h *Handler) RegisterProtectedRoutes(protected *gin.RouterGroup) {
	group := protected.Group("/notifications")
	{
		group.GET("", h.List)
		group.GET("/unread-count", h.UnreadCount)
		group.PUT("/read-all", h.MarkAllRead)
		group.PUT("/:id/read", h.MarkRead)
		group.DELETE("/:id", h.Delete)
	}
}

// RegisterWSRoute mounts the realtime stream. Browsers cannot set an
// Authorization header on a websocket handshake, so the token rides a
// query parameter instead.
func (h *Handler) RegisterWSRoute(r *gin.Engine) {
	r.GET("/ws/notifications", h.ServeWS)
}

func (h *Handler) ServeWS(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing token")
		return
	}
	claims, err := h.jwt.ValidateToken(token)
	if err != nil {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid token")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed user_id=%d err=%v", claims.UserID, err)
		return
	}

	h.hub.ServeWS(conn, claims.UserID)
}

func (h *Handler) List(c *gin.Context) {
	notifications, err := h.service.List(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "NOTIFICATION_FAILED", "Failed to list notifications")
		return
	}
	response.Success(c, http.StatusOK, notifications)
}

func (h *Handler) UnreadCount(c *gin.Context) {
	count, err := h.service.CountUnread(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "NOTIFICATION_FAILED", "Failed to count notifications")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"unread": count})
}

func (h *Handler) MarkRead(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	updated, err := h.service.MarkRead(c.Request.Context(), id, c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "NOTIFICATION_FAILED", "Failed to mark as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) MarkAllRead(c *gin.Context) {
	updated, err := h.service.MarkAllRead(c.Request.Context(), c.GetInt64("user_id"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "NOTIFICATION_FAILED", "Failed to mark all as read")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, c.GetInt64("user_id")); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Notification not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "NOTIFICATION_FAILED", "Failed to delete notification")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
