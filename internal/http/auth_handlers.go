package http

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/auth"
	"zen-tracker-go/internal/models"
	"zen-tracker-go/internal/store"
)

type userResponse struct {
	Username string `json:"username"`
	Theme    string `json:"theme"`
	Language string `json:"language"`
}

func userView(u *models.User) userResponse {
	theme := u.Theme
	if theme == "" {
		theme = "blue"
	}
	language := u.Language
	if language == "" {
		language = "en"
	}
	return userResponse{Username: u.Username, Theme: theme, Language: language}
}

// POST /api/register
func (s *Server) register(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		s.fail(c, 400, "Username and password required", nil)
		return
	}
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" || password == "" {
		s.fail(c, 400, "Username and password required", nil)
		return
	}
	if !validUsername(username) {
		s.fail(c, 400, "Username must be 3-32 alphanumeric characters", nil)
		return
	}
	if !validPassword(password) {
		s.fail(c, 400, "Password must be 6-128 characters", nil)
		return
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		s.fail(c, 500, "Failed to register user", err)
		return
	}
	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Theme:        "blue",
		Language:     "en",
	}
	if err := s.store.CreateUser(c.Request.Context(), user); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			s.fail(c, 409, "Username already exists", nil)
			return
		}
		s.fail(c, 500, "Failed to register user", err)
		return
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		s.fail(c, 500, "Failed to register user", err)
		return
	}
	c.JSON(201, gin.H{"message": "User registered", "user": userView(user), "token": token})
}

// POST /api/login
func (s *Server) login(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		s.fail(c, 400, "Username and password required", nil)
		return
	}
	username := strings.TrimSpace(input.Username)
	password := strings.TrimSpace(input.Password)
	if username == "" || password == "" {
		s.fail(c, 400, "Username and password required", nil)
		return
	}

	user, err := s.store.GetUser(c.Request.Context(), username)
	if err != nil || !auth.CheckPassword(password, user.PasswordHash) {
		s.fail(c, 401, "Invalid credentials", nil)
		return
	}

	token, err := s.tokens.Issue(username)
	if err != nil {
		s.fail(c, 500, "Failed to log in", err)
		return
	}
	c.JSON(200, gin.H{"message": "Login successful", "user": userView(user), "token": token})
}

// GET /api/me
func (s *Server) me(c *gin.Context) {
	user, err := s.store.GetUser(c.Request.Context(), username(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, 404, "User not found", nil)
			return
		}
		s.fail(c, 500, "Database error", err)
		return
	}
	c.JSON(200, gin.H{"user": userView(user)})
}
