package http

import (
	"errors"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"zen-tracker-go/internal/auth"
	"zen-tracker-go/internal/store"
)

// PATCH /api/user/username
func (s *Server) changeUsername(c *gin.Context) {
	oldUsername := username(c)
	var input struct {
		NewUsername string `json:"newUsername"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.NewUsername) == "" {
		s.fail(c, 400, "New username required", nil)
		return
	}
	newUsername := strings.TrimSpace(input.NewUsername)
	if !validUsername(newUsername) {
		s.fail(c, 400, "Username must be 3-32 alphanumeric characters", nil)
		return
	}
	if newUsername == oldUsername {
		s.fail(c, 400, "New username must be different from current username", nil)
		return
	}

	if err := s.store.RenameUser(c.Request.Context(), oldUsername, newUsername); err != nil {
		switch {
		case errors.Is(err, store.ErrDuplicate):
			s.fail(c, 409, "Username already exists", nil)
		case errors.Is(err, store.ErrNotFound):
			s.fail(c, 404, "User not found", nil)
		default:
			s.fail(c, 500, "Failed to update username", err)
		}
		return
	}

	token, err := s.tokens.Issue(newUsername)
	if err != nil {
		s.fail(c, 500, "Failed to update username", err)
		return
	}
	c.JSON(200, gin.H{"message": "Username updated successfully", "username": newUsername, "token": token})
}

// PATCH /api/user/password
func (s *Server) changePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		s.fail(c, 400, "Current password and new password required", nil)
		return
	}
	current := strings.TrimSpace(input.CurrentPassword)
	next := strings.TrimSpace(input.NewPassword)
	if current == "" || next == "" {
		s.fail(c, 400, "Current password and new password required", nil)
		return
	}
	if !validPassword(next) {
		s.fail(c, 400, "New password must be 6-128 characters", nil)
		return
	}

	ctx := c.Request.Context()
	user, err := s.store.GetUser(ctx, username(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, 404, "User not found", nil)
			return
		}
		s.fail(c, 500, "Failed to update password", err)
		return
	}
	if !auth.CheckPassword(current, user.PasswordHash) {
		s.fail(c, 401, "Current password is incorrect", nil)
		return
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		s.fail(c, 500, "Failed to update password", err)
		return
	}
	if err := s.store.UpdatePassword(ctx, user.Username, hash); err != nil {
		s.fail(c, 500, "Failed to update password", err)
		return
	}
	c.JSON(200, gin.H{"message": "Password updated successfully"})
}

// DELETE /api/user/account
func (s *Server) deleteAccount(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Password) == "" {
		s.fail(c, 400, "Password required to delete account", nil)
		return
	}

	ctx := c.Request.Context()
	user, err := s.store.GetUser(ctx, username(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, 404, "User not found", nil)
			return
		}
		s.fail(c, 500, "Failed to delete account", err)
		return
	}
	if !auth.CheckPassword(strings.TrimSpace(input.Password), user.PasswordHash) {
		s.fail(c, 401, "Password is incorrect", nil)
		return
	}

	if err := s.store.DeleteUser(ctx, user.Username); err != nil {
		s.fail(c, 500, "Failed to delete account", err)
		return
	}
	c.JSON(200, gin.H{"message": "Account deleted successfully"})
}

// POST /api/user/recovery-codes
func (s *Server) generateRecoveryCodes(c *gin.Context) {
	var input struct {
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil || strings.TrimSpace(input.Password) == "" {
		s.fail(c, 400, "Password required to generate recovery codes", nil)
		return
	}

	ctx := c.Request.Context()
	user, err := s.store.GetUser(ctx, username(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, 404, "User not found", nil)
			return
		}
		s.fail(c, 500, "Failed to generate recovery codes", err)
		return
	}
	if !auth.CheckPassword(strings.TrimSpace(input.Password), user.PasswordHash) {
		s.fail(c, 401, "Password is incorrect", nil)
		return
	}

	plain, hashed, err := auth.GenerateRecoveryCodes(auth.RecoveryCodeCount)
	if err != nil {
		s.fail(c, 500, "Failed to generate recovery codes", err)
		return
	}
	if err := s.store.SaveRecoveryCodes(ctx, user.Username, hashed, time.Now()); err != nil {
		s.fail(c, 500, "Failed to generate recovery codes", err)
		return
	}

	c.JSON(200, gin.H{
		"message": "Recovery codes generated successfully",
		"codes":   plain,
		"warning": "Save these codes in a safe place. You will not be able to see them again.",
	})
}

// GET /api/user/recovery-codes/status
func (s *Server) recoveryCodesStatus(c *gin.Context) {
	user, err := s.store.GetUser(c.Request.Context(), username(c))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.fail(c, 404, "User not found", nil)
			return
		}
		s.fail(c, 500, "Failed to get recovery codes status", err)
		return
	}

	total := len(user.RecoveryCodes)
	used := 0
	for _, code := range user.RecoveryCodes {
		if code.Used {
			used++
		}
	}
	c.JSON(200, gin.H{
		"hasRecoveryCodes": total > 0,
		"totalCodes":       total,
		"usedCodes":        used,
		"remainingCodes":   total - used,
		"generatedAt":      user.RecoveryCodesGeneratedAt,
	})
}

// POST /api/user/recovery-reset
func (s *Server) recoveryReset(c *gin.Context) {
	var input struct {
		Username     string `json:"username"`
		RecoveryCode string `json:"recoveryCode"`
		NewPassword  string `json:"newPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		s.fail(c, 400, "Username, recovery code, and new password required", nil)
		return
	}
	name := strings.TrimSpace(input.Username)
	code := strings.ToUpper(strings.TrimSpace(input.RecoveryCode))
	next := strings.TrimSpace(input.NewPassword)
	if name == "" || code == "" || next == "" {
		s.fail(c, 400, "Username, recovery code, and new password required", nil)
		return
	}
	if !validPassword(next) {
		s.fail(c, 400, "New password must be 6-128 characters", nil)
		return
	}

	ctx := c.Request.Context()
	user, err := s.store.GetUser(ctx, name)
	if err != nil {
		s.fail(c, 401, "Invalid credentials", nil)
		return
	}
	if len(user.RecoveryCodes) == 0 {
		s.fail(c, 400, "No recovery codes available for this account", nil)
		return
	}

	idx := auth.MatchRecoveryCode(user.RecoveryCodes, code)
	if idx < 0 {
		s.fail(c, 401, "Invalid or already used recovery code", nil)
		return
	}
	codes := user.RecoveryCodes
	codes[idx].Used = true

	hash, err := auth.HashPassword(next)
	if err != nil {
		s.fail(c, 500, "Failed to reset password", err)
		return
	}
	if err := s.store.ResetPassword(ctx, user.Username, hash, codes); err != nil {
		s.fail(c, 500, "Failed to reset password", err)
		return
	}

	remaining := 0
	for _, rc := range codes {
		if !rc.Used {
			remaining++
		}
	}
	resp := gin.H{"message": "Password reset successfully", "remainingCodes": remaining}
	if remaining == 0 {
		resp["warning"] = "All recovery codes have been used. Please generate new codes after logging in."
	}
	c.JSON(200, resp)
}
