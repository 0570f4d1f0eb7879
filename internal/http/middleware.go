package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// requireAPIKey gates the unauthenticated routes behind the shared secret.
func (s *Server) requireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" || key != s.cfg.APIKey {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid API key"})
			return
		}
		c.Next()
	}
}

// authRequired verifies the bearer token and stores the subject username
// in the request context.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(401, gin.H{"error": "No token"})
			return
		}
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}
		username, err := s.tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(401, gin.H{"error": "Invalid token"})
			return
		}
		c.Set("username", username)
		c.Next()
	}
}

// rateLimit throttles by client IP when a limiter is configured.
func (s *Server) rateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if s.limiter == nil {
			c.Next()
			return
		}
		if !s.limiter.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(429, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}

func username(c *gin.Context) string {
	return c.MustGet("username").(string)
}
