package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/config"
	"learnhub/backend/services"
	"learnhub/backend/utils"
)

type UserController struct {
	API *services.API
	Cfg *config.Config
}

func NewUserController(api *services.API, cfg *config.Config) *UserController {
	return &UserController{API: api, Cfg: cfg}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the authenticated user's profile data
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /user/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, _, err := utils.ExtractUserFromToken(c, uc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user, err := uc.API.UserByID(userID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}
