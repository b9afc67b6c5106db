package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/config"
	"learnhub/backend/models"
	"learnhub/backend/services"
	"learnhub/backend/utils"
)

type AuthController struct {
	API *services.API
	Cfg *config.Config
}

func NewAuthController(api *services.API, cfg *config.Config) *AuthController {
	return &AuthController{API: api, Cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new student or teacher account
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		FullName string          `json:"fullName"`
		Email    string          `json:"email"`
		Password string          `json:"password"`
		Role     models.UserRole `json:"role"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Email == "" || input.Password == "" {
		return utils.BadRequest(c, "Email and password are required")
	}
	if !input.Role.Valid() {
		return utils.BadRequest(c, "Role must be Student or Teacher")
	}

	user, err := ac.API.Register(services.RegisterInput{
		FullName: input.FullName,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
	})
	if err != nil {
		return utils.DomainError(c, err)
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Role, ac.Cfg)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary User login
// @Description Authenticate by email and password, returns a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	user, err := ac.API.Login(input.Email, input.Password)
	if err != nil {
		return utils.DomainError(c, err)
	}

	token, err := utils.GenerateJWTToken(user.ID, user.Role, ac.Cfg)
	if err != nil {
		return utils.DomainError(c, err)
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	if err := ac.API.Logout(); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.NoContent(c)
}

// Session returns the user occupying the session slot.
func (ac *AuthController) Session(c *fiber.Ctx) error {
	user, err := ac.API.CurrentUser()
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, user)
}
