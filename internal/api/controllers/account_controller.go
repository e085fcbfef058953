package controllers

import (
	"github.com/gin-gonic/gin"

	"healthtrack/internal/models/request_models"
	"healthtrack/internal/services"
	"healthtrack/pkg/middleware"
	"healthtrack/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Register godoc
// @Summary Register a new account
// @Description Create a user with email and password. A pre-existing user without credentials is claimed.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.SignUpRequest true "Account registration payload"
// @Success 200 {object} db_models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/auth/register [post]
func (a *AccountController) Register(c *gin.Context) {
	var req request_models.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	user, err := a.accountService.Register(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to register account")
		return
	}

	utils.RespondSuccess(c, user)
}

// Login godoc
// @Summary Login to an account
// @Description Authenticate a user and return a bearer token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body request_models.LoginRequest true "Login payload"
// @Success 200 {object} response_models.AccountLoginResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/auth/login [post]
func (a *AccountController) Login(c *gin.Context) {
	var req request_models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondBindError(c, err)
		return
	}

	token, err := a.accountService.Login(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to login")
		return
	}

	utils.RespondSuccess(c, token)
}

// Logout revokes the token used for this request.
func (a *AccountController) Logout(c *gin.Context) {
	tokenID, expiresAt := middleware.TokenInfo(c)
	a.accountService.Logout(tokenID, expiresAt)
	utils.RespondSuccess(c, gin.H{"message": "Logged out"})
}

func (a *AccountController) Me(c *gin.Context) {
	user, err := a.accountService.GetCurrentUser(c.Request.Context(), middleware.MustUserID(c))
	if err != nil {
		utils.HandleServiceError(c, err, "Failed to fetch user")
		return
	}
	utils.RespondSuccess(c, user)
}
