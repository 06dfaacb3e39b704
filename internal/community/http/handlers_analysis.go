package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *Handler) startAnalysis(c *gin.Context) {
	job, err := h.analysis.StartAnalysis(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"ok": true, "job": job})
}

func (h *Handler) startSummary(c *gin.Context) {
	job, err := h.analysis.StartSummary(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"ok": true, "job": job})
}

func (h *Handler) startRanking(c *gin.Context) {
	job, err := h.analysis.StartRanking(c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"ok": true, "job": job})
}

func (h *Handler) getJob(c *gin.Context) {
	job, ok := h.analysis.GetJob(c.Param("jobID"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "job not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "job": job})
}

func (h *Handler) cancelJob(c *gin.Context) {
	if !h.analysis.Cancel(c.Param("jobID")) {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": "job not pending"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
