package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/models"
	"zen-tracker-go/internal/stats"
)

// POST /api/meditations
func (s *Server) createMeditation(c *gin.Context) {
	var input struct {
		Date     string `json:"date"`
		Duration int    `json:"duration"`
		Notes    string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" {
		s.fail(c, 400, "Date (string) required", nil)
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		s.fail(c, 400, "Date (string) required", nil)
		return
	}

	user := username(c)
	session := &models.MeditationSession{
		Username: user,
		Date:     date,
		Duration: input.Duration,
		Notes:    input.Notes,
	}
	ctx := c.Request.Context()
	if err := s.store.CreateMeditation(ctx, session); err != nil {
		s.fail(c, 500, "Failed to save meditation", err)
		return
	}

	// Stats update happens after the insert; a failure here leaves the
	// session recorded with stale stats (no rollback).
	monk, err := s.store.GetUser(ctx, user)
	if err != nil {
		s.fail(c, 500, "Failed to update stats", err)
		return
	}
	updated := stats.ApplySession(monk.Stats, date, input.Duration, time.Now())
	if err := s.store.UpdateStats(ctx, user, updated); err != nil {
		s.fail(c, 500, "Failed to update stats", err)
		return
	}

	c.JSON(201, gin.H{"message": "Meditation saved", "meditation": session})
}

// GET /api/meditations
func (s *Server) listMeditations(c *gin.Context) {
	sessions, err := s.store.ListMeditations(c.Request.Context(), username(c), listRange(c))
	if err != nil {
		s.fail(c, 500, "Database error", err)
		return
	}
	if sessions == nil {
		sessions = []models.MeditationSession{}
	}
	c.JSON(200, gin.H{"meditations": sessions})
}
