package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) listNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "notifications": h.notifications.List()})
}

func (h *Handler) unreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "unread": h.notifications.UnreadCount()})
}

func (h *Handler) markRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) markAllRead(c *gin.Context) {
	h.notifications.MarkAllRead()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) clearNotifications(c *gin.Context) {
	h.notifications.Clear()
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
