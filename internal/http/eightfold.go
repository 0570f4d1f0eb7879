package http

import (
	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/models"
	"zen-tracker-go/internal/stats"
)

// POST /api/eightfold-path
func (s *Server) createPathLog(c *gin.Context) {
	var input struct {
		Date  string             `json:"date"`
		Paths []models.PathEntry `json:"paths"`
	}
	if err := validateBody(c, s.pathSchema, &input); err != nil {
		s.fail(c, 400, "Date and paths array required", nil)
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		s.fail(c, 400, "Date and paths array required", nil)
		return
	}

	log := &models.EightfoldPathLog{
		Username:           username(c),
		Date:               stats.DayStart(date),
		Paths:              input.Paths,
		CompletedCount:     len(input.Paths),
		ProgressPercentage: stats.PathProgress(len(input.Paths)),
	}
	if err := s.store.UpsertPathLog(c.Request.Context(), log); err != nil {
		s.fail(c, 500, "Failed to save Eightfold Path", err)
		return
	}
	c.JSON(201, gin.H{"message": "Eightfold Path saved", "pathLog": log})
}

// GET /api/eightfold-path
func (s *Server) listPathLogs(c *gin.Context) {
	logs, err := s.store.ListPathLogs(c.Request.Context(), username(c), listRange(c))
	if err != nil {
		s.fail(c, 500, "Database error", err)
		return
	}
	if logs == nil {
		logs = []models.EightfoldPathLog{}
	}
	c.JSON(200, gin.H{"pathLogs": logs})
}

// GET /api/eightfold-path/analytics
func (s *Server) pathAnalytics(c *gin.Context) {
	logs, err := s.store.ListPathLogs(c.Request.Context(), username(c), window(c, 30))
	if err != nil {
		s.fail(c, 500, "Failed to fetch analytics", err)
		return
	}
	c.JSON(200, stats.AnalyzePaths(logs))
}
