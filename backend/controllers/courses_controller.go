package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"learnhub/backend/config"
	"learnhub/backend/models"
	"learnhub/backend/services"
	"learnhub/backend/utils"
)

type CoursesController struct {
	API *services.API
	Cfg *config.Config
}

func NewCoursesController(api *services.API, cfg *config.Config) *CoursesController {
	return &CoursesController{API: api, Cfg: cfg}
}

func (cc *CoursesController) GetCourses(c *fiber.Ctx) error {
	courses, err := cc.API.Courses()
	if err != nil {
		return utils.DomainError(c, err)
	}
	return c.JSON(courses)
}

func (cc *CoursesController) GetCourse(c *fiber.Ctx) error {
	course, err := cc.API.CourseByID(c.Params("id"))
	if err != nil {
		return utils.DomainError(c, err)
	}
	return c.JSON(course)
}

// CreateCourse godoc
// @Summary Create a course
// @Description Creates a course with its sections, owned by the requesting teacher
// @Tags courses
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	userID, _, err := utils.ExtractUserFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input struct {
		Title       string                `json:"title"`
		Description string                `json:"description"`
		Educator    string                `json:"educator"`
		Price       float64               `json:"price"`
		Category    models.CourseCategory `json:"category"`
		Sections    []models.Section      `json:"sections"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Title == "" {
		return utils.BadRequest(c, "Title is required")
	}
	if input.Price < 0 {
		return utils.BadRequest(c, "Price must not be negative")
	}
	if !input.Category.Valid() {
		return utils.BadRequest(c, "Unknown course category")
	}

	course, err := cc.API.AddCourse(services.AddCourseInput{
		Title:       input.Title,
		Description: input.Description,
		Educator:    input.Educator,
		Price:       input.Price,
		Category:    input.Category,
		Sections:    input.Sections,
		TeacherID:   userID,
	})
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Created(c, course)
}

// DeleteCourse removes a course owned by the requesting teacher. Deleting an
// id that no longer exists succeeds, matching the idempotent service call.
func (cc *CoursesController) DeleteCourse(c *fiber.Ctx) error {
	userID, _, err := utils.ExtractUserFromToken(c, cc.Cfg)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	courseID := c.Params("id")
	course, err := cc.API.CourseByID(courseID)
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return utils.NoContent(c)
		}
		return utils.DomainError(c, err)
	}
	if course.TeacherID != userID {
		return utils.Forbidden(c, "You don't have permission to delete this course")
	}

	if err := cc.API.DeleteCourse(courseID); err != nil {
		return utils.DomainError(c, err)
	}
	return utils.NoContent(c)
}
