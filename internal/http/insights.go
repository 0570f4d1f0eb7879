package http

import (
	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/stats"
)

// GET /api/insights/correlation
func (s *Server) correlationInsights(c *gin.Context) {
	ctx := c.Request.Context()
	user := username(c)
	r := window(c, 90)

	sessions, err := s.store.ListMeditations(ctx, user, r)
	if err != nil {
		s.fail(c, 500, "Failed to calculate insights", err)
		return
	}
	logs, err := s.store.ListEmotionLogs(ctx, user, r)
	if err != nil {
		s.fail(c, 500, "Failed to calculate insights", err)
		return
	}

	c.JSON(200, stats.Correlate(sessions, logs))
}
