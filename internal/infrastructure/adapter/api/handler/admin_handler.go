package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler handles maintenance HTTP requests
type AdminHandler struct {
	predictionUseCase usecase.PredictionUseCase
	logger            coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(predictionUseCase usecase.PredictionUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		predictionUseCase: predictionUseCase,
		logger:            logger,
	}
}

// SeedPredictions handles the POST /api/admin/seed-predictions endpoint
func (h *AdminHandler) SeedPredictions(c *gin.Context) {
	if err := h.predictionUseCase.ReseedAdmin(c.Request.Context()); err != nil {
		respondError(c, h.logger, "Reseeding predictions failed", err)
		return
	}

	h.logger.Info("Predictions reseeded", map[string]any{
		"user_id":    middleware.UserID(c),
		"request_id": c.GetString(middleware.RequestIDKey),
	})
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Predictions seeded"})
}
