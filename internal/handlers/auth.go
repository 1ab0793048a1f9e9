package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/hiring-platform-api/internal/constants"
	"github.com/yukikurage/hiring-platform-api/internal/dto"
	apierrors "github.com/yukikurage/hiring-platform-api/internal/errors"
	"github.com/yukikurage/hiring-platform-api/internal/middleware"
	"github.com/yukikurage/hiring-platform-api/internal/models"
	"github.com/yukikurage/hiring-platform-api/internal/services"
)

// AuthHandler coordinates authentication-related HTTP handlers.
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register creates a user and starts a session.
func (h *AuthHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Email     string      `json:"email" binding:"required,email,max=255"`
		Password  string      `json:"password" binding:"required"`
		FirstName *string     `json:"first_name" binding:"omitempty,max=100"`
		LastName  *string     `json:"last_name" binding:"omitempty,max=100"`
		Role      models.Role `json:"role"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	result, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if !h.startSession(c, result.Token) {
		return
	}
	c.JSON(http.StatusCreated, dto.AuthResponse{User: dto.ToUserDTO(*result.User), Token: result.Token})
}

// Login authenticates a user and initializes the session.
func (h *AuthHandler) Login(c *gin.Context) {
	type LoginRequest struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if !h.startSession(c, result.Token) {
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.ToUserDTO(*result.User), Token: result.Token})
}

// GoogleSignIn exchanges a Google ID token for a session.
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	type GoogleSignInRequest struct {
		Credential string `json:"credential" binding:"required"`
	}

	var req GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c, err)
		return
	}

	result, err := h.authService.GoogleSignIn(c.Request.Context(), req.Credential)
	if err != nil {
		respondError(c, err)
		return
	}

	if !h.startSession(c, result.Token) {
		return
	}
	c.JSON(http.StatusOK, dto.AuthResponse{User: dto.ToUserDTO(*result.User), Token: result.Token})
}

// startSession stores the token in the session cookie for browser clients.
func (h *AuthHandler) startSession(c *gin.Context, token string) bool {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyToken, token)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to save session")
		return false
	}
	return true
}

// Logout revokes the current token and clears the session.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token := middleware.GetToken(c); token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil {
			respondError(c, err)
			return
		}
	}

	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "Failed to logout")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Logged out successfully",
	})
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
