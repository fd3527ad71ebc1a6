package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/middleware"
)

// AuthHandler handles account HTTP requests
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authUseCase usecase.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register handles the POST /api/auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid register request", err)
		return
	}

	session, err := h.authUseCase.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "Registration failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(session))
}

// Login handles the POST /api/auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.CredentialsRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid login request", err)
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, h.logger, "Login failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewAuthResponse(session))
}

// Me handles the GET /api/auth/me endpoint
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authUseCase.Profile(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		respondError(c, h.logger, "Profile lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(*user))
}
