package main

import (
	"context"
	"net/http"
	"strconv"

	"go-internship-agent/internal/models"
	"go-internship-agent/internal/scoring"

	"github.com/gin-gonic/gin"
)

const maxScoreBatch = 500

type jobLister interface {
	TopJobs(ctx context.Context, limit int) ([]models.StoredJob, error)
}

type handler struct {
	scoring *scoring.Context
	jobs    jobLister
}

func newRouter(sc *scoring.Context, jobs jobLister) *gin.Engine {
	h := &handler{scoring: sc, jobs: jobs}

	r := gin.Default()
	r.GET("/", h.health)

	api := r.Group("/api")
	api.GET("/company", h.company)
	api.POST("/score", h.score)
	api.GET("/jobs", h.topJobs)
	return r
}

func (h *handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":    "Internship Agent API is running!",
		"status":     "healthy",
		"tier_table": h.scoring.Tiers.Version,
		"semantic":   h.scoring.Semantic.Name(),
	})
}

// GET /api/company?name=Google
func (h *handler) company(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}
	c.JSON(http.StatusOK, h.scoring.Tiers.Info(name))
}

// POST /api/score with a JSON array of raw postings.
func (h *handler) score(c *gin.Context) {
	var raws []models.RawJob
	if err := c.ShouldBindJSON(&raws); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must be a JSON array of postings"})
		return
	}
	if len(raws) > maxScoreBatch {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "too many postings"})
		return
	}

	jobs := make([]models.Job, len(raws))
	for i, r := range raws {
		jobs[i] = models.FromRaw(r)
	}
	ranked := h.scoring.ScoreBatch(c.Request.Context(), jobs)
	scoring.Rank(ranked)

	c.JSON(http.StatusOK, gin.H{
		"count":  len(ranked),
		"alerts": len(scoring.TopAlerts(ranked, 0)),
		"jobs":   ranked,
	})
}

// GET /api/jobs?limit=20
func (h *handler) topJobs(c *gin.Context) {
	if h.jobs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database not configured"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit <= 0 || limit > 100 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}

	jobs, err := h.jobs.TopJobs(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}
