package http

import (
	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/models"
	"zen-tracker-go/internal/stats"
)

// POST /api/emotions
func (s *Server) createEmotionLog(c *gin.Context) {
	var input struct {
		Date     string           `json:"date"`
		Emotions []models.Emotion `json:"emotions"`
	}
	if err := validateBody(c, s.emotionSchema, &input); err != nil {
		s.fail(c, 400, "Date and emotions array required", nil)
		return
	}
	date, err := parseDate(input.Date)
	if err != nil {
		s.fail(c, 400, "Date and emotions array required", nil)
		return
	}

	positive, negative, ratio := stats.SummarizeEmotions(input.Emotions)
	log := &models.EmotionLog{
		Username:      username(c),
		Date:          stats.DayStart(date),
		Emotions:      input.Emotions,
		PositiveCount: positive,
		NegativeCount: negative,
		PNRatio:       ratio,
	}
	if err := s.store.UpsertEmotionLog(c.Request.Context(), log); err != nil {
		s.fail(c, 500, "Failed to save emotions", err)
		return
	}
	c.JSON(201, gin.H{"message": "Emotions saved", "emotionLog": log})
}

// GET /api/emotions
func (s *Server) listEmotionLogs(c *gin.Context) {
	logs, err := s.store.ListEmotionLogs(c.Request.Context(), username(c), listRange(c))
	if err != nil {
		s.fail(c, 500, "Database error", err)
		return
	}
	if logs == nil {
		logs = []models.EmotionLog{}
	}
	c.JSON(200, gin.H{"emotionLogs": logs})
}

// GET /api/emotions/analytics
func (s *Server) emotionAnalytics(c *gin.Context) {
	logs, err := s.store.ListEmotionLogs(c.Request.Context(), username(c), window(c, 30))
	if err != nil {
		s.fail(c, 500, "Analytics error", err)
		return
	}
	c.JSON(200, stats.AnalyzeEmotions(logs))
}
