package handler

import (
	"errors"

	"github.com/aminebenfraj/novares-sub003/internal/workflow/repository"
	"github.com/aminebenfraj/novares-sub003/internal/workflow/service"
	"github.com/gin-gonic/gin"
)

// AuthHandler serves login, refresh and the current-user endpoint.
type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	user, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		BadRequest(c, err.Error())
		return
	}
	Created(c, user)
}

// Login POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		License  string `json:"license" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.License, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			Unauthorized(c, "Invalid license or password")
		case errors.Is(err, service.ErrUserDisabled):
			Forbidden(c, "User is disabled")
		default:
			InternalError(c, "Login failed", err)
		}
		return
	}
	Success(c, pair)
}

// Refresh POST /api/v1/auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pair, err := h.svc.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefresh):
			Unauthorized(c, "Invalid refresh token")
		case errors.Is(err, service.ErrUserDisabled):
			Forbidden(c, "User is disabled")
		default:
			InternalError(c, "Refresh failed", err)
		}
		return
	}
	Success(c, pair)
}

// Logout POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.svc.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			Unauthorized(c, "Invalid refresh token")
			return
		}
		InternalError(c, "Logout failed", err)
		return
	}
	Success(c, gin.H{"logged_out": true})
}

// Me GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.svc.Me(c.Request.Context(), GetUserID(c))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			NotFound(c, "User not found")
			return
		}
		InternalError(c, "Failed to get user", err)
		return
	}
	Success(c, user)
}
