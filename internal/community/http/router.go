package http

import (
	"github.com/devsync-community/devsync-backend/internal/community/service"
	"github.com/gin-gonic/gin"
)

// Handler exposes the community intents over HTTP.
type Handler struct {
	projects      *service.ProjectService
	notifications *service.NotificationService
	analysis      *service.AnalysisService
}

// New creates a handler over the community services.
func New(projects *service.ProjectService, notifications *service.NotificationService, analysis *service.AnalysisService) *Handler {
	return &Handler{
		projects:      projects,
		notifications: notifications,
		analysis:      analysis,
	}
}

// Register mounts all community routes on the given group.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/challenges", h.listChallenges)
	r.GET("/challenges/:id/leaderboard", h.leaderboard)
	r.POST("/challenges/:id/ranking", h.startRanking)

	r.POST("/projects", h.createProject)
	r.GET("/projects", h.listProjects)
	r.GET("/projects/:id", h.getProject)
	r.POST("/projects/:id/feedback", h.addFeedback)
	r.POST("/projects/:id/vote", h.castVote)
	r.PATCH("/projects/:id/status", h.setStatus)
	r.POST("/projects/:id/analysis", h.startAnalysis)
	r.POST("/projects/:id/feedback-summary", h.startSummary)

	r.GET("/notifications", h.listNotifications)
	r.GET("/notifications/unread-count", h.unreadCount)
	r.POST("/notifications/:id/read", h.markRead)
	r.POST("/notifications/read-all", h.markAllRead)
	r.DELETE("/notifications", h.clearNotifications)

	r.GET("/analysis/:jobID", h.getJob)
	r.DELETE("/analysis/:jobID", h.cancelJob)
}
