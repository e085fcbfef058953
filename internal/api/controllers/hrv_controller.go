package controllers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

type HRVController struct {
	hrvService services.HRVServiceInterface
}

func NewHRVController(hrvService services.HRVServiceInterface) *HRVController {
	return &HRVController{hrvService: hrvService}
}

// ListSamples godoc
// @Summary List heart-rate-variability samples
// @Description Newest first. Defaults to 100 samples.
// @Tags HRV
// @Produce json
// @Param limit query int false "Maximum number of samples"
// @Success 200 {array} db_models.HRVData
// @Router /api/hrv-data [get]
func (h *HRVController) ListSamples(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch HRV data")
		return
	}

	samples, err := h.hrvService.ListSamples(c.Request.Context(), middleware.MustUserID(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch HRV data")
		return
	}
	utils.RespondSuccess(c, samples)
}

func (h *HRVController) CreateSample(c *gin.Context) {
	var req request_models.CreateHRVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	sample, err := h.hrvService.CreateSample(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to create HRV data")
		return
	}
	utils.RespondSuccess(c, sample)
}
