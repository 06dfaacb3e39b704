package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/devsync-community/devsync-backend/internal/community/domain"
	"github.com/gin-gonic/gin"
)

func (h *Handler) listChallenges(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "challenges": h.projects.ListChallenges()})
}

func (h *Handler) leaderboard(c *gin.Context) {
	board, err := h.projects.Leaderboard(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "leaderboard": board})
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.projects.CreateProject(domain.CreateProjectRequest{
		ChallengeID: req.ChallengeID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Owner:       strings.TrimSpace(req.Owner),
		CodeSnippet: req.CodeSnippet,
		Thumbnail:   req.Thumbnail,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) listProjects(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": h.projects.ListProjects()})
}

func (h *Handler) getProject(c *gin.Context) {
	p, err := h.projects.GetProject(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) addFeedback(c *gin.Context) {
	var req addFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	var meta *domain.FeedbackMetadata
	if req.Metadata != nil {
		meta = &domain.FeedbackMetadata{
			CodeDiff: req.Metadata.CodeDiff,
			Caption:  req.Metadata.Caption,
		}
	}

	f, err := h.projects.AddFeedback(c.Param("id"), domain.AddFeedbackRequest{
		Author:   req.Author,
		Type:     req.Type,
		Content:  req.Content,
		Metadata: meta,
	})
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "feedback": f})
}

func (h *Handler) castVote(c *gin.Context) {
	var req voteReq
	// body is optional; anonymous voters fall back to the client address
	_ = c.ShouldBindJSON(&req)
	voterID := strings.TrimSpace(req.VoterID)
	if voterID == "" {
		voterID = c.ClientIP()
	}

	p, err := h.projects.CastVote(c.Param("id"), voterID)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) setStatus(c *gin.Context) {
	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.projects.SetProjectStatus(c.Param("id"), req.Status)
	if err != nil {
		respondErr(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrChallengeNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": err.Error()})
	case errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, domain.ErrInvalidFeedbackType):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
