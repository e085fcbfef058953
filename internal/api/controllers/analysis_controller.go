package controllers

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/utils"
)

type AnalysisController struct {
	analysisService services.AnalysisServiceInterface
}

func NewAnalysisController(analysisService services.AnalysisServiceInterface) *AnalysisController {
	return &AnalysisController{analysisService: analysisService}
}

// AnalyzeFoodImage godoc
// @Summary Estimate nutrition from a meal photo
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeFoodImageRequest true "Base64 image or data URL"
// @Success 200 {object} response_models.NutritionAnalysis
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/analyze-food-image [post]
func (a *AnalysisController) AnalyzeFoodImage(c *gin.Context) {
	var req request_models.AnalyzeFoodImageRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondBindError(c, err)
		return
	}

	analysis, err := a.analysisService.AnalyzeFoodImage(c.Request.Context(), req.Base64Image)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to analyze food image")
		return
	}
	utils.RespondSuccess(c, analysis)
}

// AnalyzeFoodText godoc
// @Summary Estimate nutrition from a meal description
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeFoodTextRequest true "Meal description"
// @Success 200 {object} response_models.NutritionAnalysis
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/analyze-food-text [post]
func (a *AnalysisController) AnalyzeFoodText(c *gin.Context) {
	var req request_models.AnalyzeFoodTextRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		utils.RespondBindError(c, err)
		return
	}

	analysis, err := a.analysisService.AnalyzeFoodText(c.Request.Context(), req.Description)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to analyze food description")
		return
	}
	utils.RespondSuccess(c, analysis)
}
