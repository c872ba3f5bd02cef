package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gomatri/matrimony-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.AuthUseCase
}

func NewAuthHandler(authUseCase *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{authUseCase: authUseCase}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	user, err := h.authUseCase.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	resp, err := h.authUseCase.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID, exists := c.Get("token_id")
	if !exists {
		abortWithError(c, http.StatusUnauthorized, "unauthorized")
		return
	}
	if err := h.authUseCase.Logout(c.Request.Context(), tokenID.(string)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	uid, ok := userID(c)
	if !ok {
		return
	}
	user, err := h.authUseCase.Me(c.Request.Context(), uid)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /users (admin).
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.authUseCase.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// VerifyUser handles PUT /users/:userId/verify (admin).
func (h *AuthHandler) VerifyUser(c *gin.Context) {
	uid, ok := pathInt(c, "userId")
	if !ok {
		return
	}
	if err := h.authUseCase.VerifyUser(c.Request.Context(), uid); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
