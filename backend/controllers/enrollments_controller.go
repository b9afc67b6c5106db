package controllers

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/config"
	"learnhub/backend/services"
	"learnhub/backend/utils"
)

type EnrollmentsController struct {
	API *services.API
	Cfg *config.Config
}

func NewEnrollmentsController(api *services.API, cfg *config.Config) *EnrollmentsController {
	return &EnrollmentsController{API: api, Cfg: cfg}
}

func (ec *EnrollmentsController) Enroll(c *fiber.Ctx) error {
	userID, _, err := utils.ExtractUserFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := ec.API.EnrollInCourse(userID, c.Params("id")); err != nil {
		return utils.DomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Enrolled",
	})
}

// GetEnrolledCourses returns the requesting student's enrolled courses with
// their progress mappings and completion rates.
func (ec *EnrollmentsController) GetEnrolledCourses(c *fiber.Ctx) error {
	userID, _, err := utils.ExtractUserFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courses, err := ec.API.StudentEnrolledCourses(userID)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return c.JSON(courses)
}

func (ec *EnrollmentsController) UpdateSectionProgress(c *fiber.Ctx) error {
	userID, _, err := utils.ExtractUserFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Completed bool `json:"completed"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	err = ec.API.UpdateSectionProgress(userID, c.Params("courseId"), c.Params("sectionId"), input.Completed)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return c.JSON(fiber.Map{
		"message": "Progress updated",
	})
}

func (ec *EnrollmentsController) GetCertificate(c *fiber.Ctx) error {
	userID, _, err := utils.ExtractUserFromToken(c, ec.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	certificate, err := ec.API.Certificate(userID, c.Params("courseId"))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.StatusOK, certificate)
}
