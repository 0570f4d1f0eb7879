package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/store"
)

var validThemes = map[string]bool{"blue": true, "white": true, "dark": true}

var validLanguages = map[string]bool{
	"en": true, "es": true, "it": true, "fr": true,
	"de": true, "pt": true, "zh": true, "ja": true,
}

// PATCH /api/theme
func (s *Server) updateTheme(c *gin.Context) {
	var input struct {
		Theme string `json:"theme"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !validThemes[input.Theme] {
		s.fail(c, 400, "Valid theme required (blue, white, dark)", nil)
		return
	}
	if err := s.store.UpdateTheme(c.Request.Context(), username(c), input.Theme); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, 404, "User not found", nil)
			return
		}
		s.fail(c, 500, "Database error", err)
		return
	}
	c.JSON(200, gin.H{"message": "Theme updated", "theme": input.Theme})
}

// PATCH /api/language
func (s *Server) updateLanguage(c *gin.Context) {
	var input struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || !validLanguages[input.Language] {
		s.fail(c, 400, "Valid language required (en, es, it, fr, de, pt, zh, ja)", nil)
		return
	}
	if err := s.store.UpdateLanguage(c.Request.Context(), username(c), input.Language); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, 404, "User not found", nil)
			return
		}
		s.fail(c, 500, "Database error", err)
		return
	}
	c.JSON(200, gin.H{"message": "Language updated", "language": input.Language})
}
