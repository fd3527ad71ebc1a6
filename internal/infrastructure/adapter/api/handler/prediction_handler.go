package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/nerdytips/internal/domain/port/core"
	"github.com/amirhossein-jamali/nerdytips/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/nerdytips/internal/infrastructure/adapter/api/dto"
)

// PredictionHandler handles prediction HTTP requests
type PredictionHandler struct {
	predictionUseCase usecase.PredictionUseCase
	logger            coreport.Logger
}

// NewPredictionHandler creates a new prediction handler instance
func NewPredictionHandler(predictionUseCase usecase.PredictionUseCase, logger coreport.Logger) *PredictionHandler {
	return &PredictionHandler{
		predictionUseCase: predictionUseCase,
		logger:            logger,
	}
}

// List handles the GET /api/predictions endpoint
func (h *PredictionHandler) List(c *gin.Context) {
	predictions, err := h.predictionUseCase.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Listing predictions failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionList(predictions))
}

// ListElite handles the GET /api/predictions/elites endpoint
func (h *PredictionHandler) ListElite(c *gin.Context) {
	predictions, err := h.predictionUseCase.ListElite(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Listing elite predictions failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionList(predictions))
}

// EliteSlip handles the GET /api/predictions/elites/slip endpoint
func (h *PredictionHandler) EliteSlip(c *gin.Context) {
	slip, err := h.predictionUseCase.EliteSlip(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Building elite slip failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBetSlipResponse(slip))
}

// Generate handles the POST /api/predictions/generate endpoint
func (h *PredictionHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, "Invalid generate request", err)
		return
	}

	prediction, err := h.predictionUseCase.Generate(c.Request.Context(), req.Fixture())
	if err != nil {
		respondError(c, h.logger, "Prediction generation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPredictionResponse(prediction))
}

// DailySlip handles the POST /api/predictions/daily-slip endpoint
func (h *PredictionHandler) DailySlip(c *gin.Context) {
	slip, err := h.predictionUseCase.GenerateDailySlip(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "Daily slip generation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBetSlipResponse(slip))
}
