package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listNotifications(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	notifications, err := h.notifications.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	unread, err := h.notifications.UnreadCount(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"notifications": toNotificationResponses(notifications),
		"unreadCount":   unread,
	})
}

func (h *Handler) markNotificationRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.notifications.MarkRead(c.Request.Context(), id, principal); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
}

func (h *Handler) markAllNotificationsRead(c *gin.Context) {
	principal, ok := requirePrincipal(c)
	if !ok {
		return
	}

	updated, err := h.notifications.MarkAllRead(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
