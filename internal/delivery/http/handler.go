package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nutritrack/backend/internal/domain"
	"github.com/nutritrack/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	journal  *usecase.JournalService
	analysis *usecase.AnalysisService
	profiles domain.ProfileRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(journal *usecase.JournalService, analysis *usecase.AnalysisService, profiles domain.ProfileRepository) *Handler {
	return &Handler{
		journal:  journal,
		analysis: analysis,
		profiles: profiles,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "nutritrack-backend",
		"version": "1.0.0",
	})
}

// LogMeal handles POST /journal. The metabolic efficiency score is
// attached before the entry is stored and returned to the caller.
func (h *Handler) LogMeal(c *gin.Context) {
	var entry domain.JournalEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid journal entry payload"})
		return
	}

	if err := h.journal.LogMeal(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// EditMeal handles PUT /journal/:id as a full replace.
func (h *Handler) EditMeal(c *gin.Context) {
	var entry domain.JournalEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid journal entry payload"})
		return
	}
	entry.ID = c.Param("id")

	if err := h.journal.EditMeal(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteMeal handles DELETE /journal/:id.
func (h *Handler) DeleteMeal(c *gin.Context) {
	if err := h.journal.DeleteMeal(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListMeals handles GET /journal.
func (h *Handler) ListMeals(c *gin.Context) {
	entries, err := h.journal.ListMeals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetAnalysis handles GET /analysis?start&end&bucket. Defaults to the last
// 7 days bucketed by day.
func (h *Handler) GetAnalysis(c *gin.Context) {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -6)
	windowEnd := now

	if start := c.Query("start"); start != "" {
		parsed, err := time.ParseInLocation("2006-01-02", start, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be YYYY-MM-DD"})
			return
		}
		windowStart = parsed
	}
	if end := c.Query("end"); end != "" {
		parsed, err := time.ParseInLocation("2006-01-02", end, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be YYYY-MM-DD"})
			return
		}
		windowEnd = parsed
	}

	bucketing := usecase.Bucketing(c.DefaultQuery("bucket", "day"))
	switch bucketing {
	case usecase.BucketDay, usecase.BucketWeek, usecase.BucketMonth:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "bucket must be day, week, or month"})
		return
	}

	report, err := h.analysis.BuildReport(c.Request.Context(), windowStart, windowEnd, bucketing)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetRDA handles GET /rda, returning the personalized RDA table for the
// stored profile (or the base table when no profile exists).
func (h *Handler) GetRDA(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context())
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		respondError(c, err)
		return
	}

	var userProfile domain.UserProfile
	if profile != nil {
		userProfile = *profile
	}

	c.JSON(http.StatusOK, gin.H{
		"rda":          usecase.PersonalizeRDA(domain.BaseRDATable(), userProfile),
		"macroTargets": usecase.ComputeMacroTargets(userProfile),
	})
}

// GetProfile handles GET /profile.
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.profiles.Get(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PutProfile handles PUT /profile, replacing the stored record.
func (h *Handler) PutProfile(c *gin.Context) {
	var profile domain.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
		return
	}

	if err := h.profiles.Put(c.Request.Context(), &profile); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// respondError maps domain errors to HTTP status codes
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound), errors.Is(err, domain.ErrProfileNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrStoreUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
