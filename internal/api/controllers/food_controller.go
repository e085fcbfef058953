package controllers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

type FoodController struct {
	foodService services.FoodServiceInterface
}

func NewFoodController(foodService services.FoodServiceInterface) *FoodController {
	return &FoodController{foodService: foodService}
}

// ListEntries godoc
// @Summary List food entries
// @Description Newest first. Defaults to 50 entries.
// @Tags Food
// @Produce json
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} db_models.FoodEntry
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/food-entries [get]
func (f *FoodController) ListEntries(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch food entries")
		return
	}

	entries, err := f.foodService.ListEntries(c.Request.Context(), middleware.MustUserID(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch food entries")
		return
	}
	utils.RespondSuccess(c, entries)
}

// ListEntriesInRange godoc
// @Summary List food entries in a date range
// @Description Both bounds are inclusive. A date-only endDate covers the whole day.
// @Tags Food
// @Produce json
// @Param startDate query string true "Start (YYYY-MM-DD or RFC3339)"
// @Param endDate query string true "End (YYYY-MM-DD or RFC3339)"
// @Success 200 {array} db_models.FoodEntry
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/food-entries/range [get]
func (f *FoodController) ListEntriesInRange(c *gin.Context) {
	entries, err := f.foodService.ListEntriesInRange(
		c.Request.Context(),
		middleware.MustUserID(c),
		c.Query("startDate"),
		c.Query("endDate"),
	)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch food entries")
		return
	}
	utils.RespondSuccess(c, entries)
}

// CreateEntry godoc
// @Summary Log a food entry
// @Tags Food
// @Accept json
// @Produce json
// @Param request body request_models.CreateFoodEntryRequest true "Food entry"
// @Success 200 {object} db_models.FoodEntry
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/food-entries [post]
func (f *FoodController) CreateEntry(c *gin.Context) {
	var req request_models.CreateFoodEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	entry, err := f.foodService.CreateEntry(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to create food entry")
		return
	}
	utils.RespondSuccess(c, entry)
}

func (f *FoodController) ListReactions(c *gin.Context) {
	limit, err := parseLimit(c)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch food reactions")
		return
	}

	reactions, err := f.foodService.ListReactions(c.Request.Context(), middleware.MustUserID(c), limit)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch food reactions")
		return
	}
	utils.RespondSuccess(c, reactions)
}

func (f *FoodController) CreateReaction(c *gin.Context) {
	var req request_models.CreateFoodReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	reaction, err := f.foodService.CreateReaction(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to create food reaction")
		return
	}
	utils.RespondSuccess(c, reaction)
}
