package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/models"
	"zen-tracker-go/internal/stats"
)

// POST /api/gratitude
func (s *Server) createGratitude(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || input.Date == "" || strings.TrimSpace(input.Text) == "" {
		s.fail(c, 400, "Date and text required", nil)
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		s.fail(c, 400, "Date and text required", nil)
		return
	}

	entry := &models.GratitudeEntry{
		Username: username(c),
		Date:     stats.DayStart(date),
		Text:     strings.TrimSpace(input.Text),
	}
	if err := s.store.UpsertGratitude(c.Request.Context(), entry); err != nil {
		s.fail(c, 500, "Failed to save gratitude entry", err)
		return
	}
	c.JSON(201, gin.H{"message": "Gratitude entry saved", "entry": entry})
}

// GET /api/gratitude
func (s *Server) listGratitude(c *gin.Context) {
	entries, err := s.store.ListGratitude(c.Request.Context(), username(c), listRange(c))
	if err != nil {
		s.fail(c, 500, "Database error", err)
		return
	}
	if entries == nil {
		entries = []models.GratitudeEntry{}
	}
	c.JSON(200, gin.H{"entries": entries})
}
