package controllers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

type ProfileController struct {
	profileService services.ProfileServiceInterface
}

func NewProfileController(profileService services.ProfileServiceInterface) *ProfileController {
	return &ProfileController{profileService: profileService}
}

// GetProfile godoc
// @Summary Get the caller's health profile
// @Description Returns null when no profile has been saved yet
// @Tags Profile
// @Produce json
// @Success 200 {object} db_models.UserProfile
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/profile [get]
func (p *ProfileController) GetProfile(c *gin.Context) {
	profile, err := p.profileService.GetProfile(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch profile")
		return
	}
	utils.RespondSuccess(c, profile)
}

// UpsertProfile godoc
// @Summary Create or replace the caller's health profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body request_models.UpsertProfileRequest true "Profile"
// @Success 200 {object} db_models.UserProfile
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/profile [post]
func (p *ProfileController) UpsertProfile(c *gin.Context) {
	var req request_models.UpsertProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	profile, err := p.profileService.UpsertProfile(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to save profile")
		return
	}
	utils.RespondSuccess(c, profile)
}

func (p *ProfileController) GetDoctorProfile(c *gin.Context) {
	profile, err := p.profileService.GetDoctorProfile(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch doctor profile")
		return
	}
	utils.RespondSuccess(c, profile)
}

func (p *ProfileController) UpsertDoctorProfile(c *gin.Context) {
	var req request_models.UpsertDoctorProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	profile, err := p.profileService.UpsertDoctorProfile(c.Request.Context(), middleware.MustUserID(c), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to save doctor profile")
		return
	}
	utils.RespondSuccess(c, profile)
}
