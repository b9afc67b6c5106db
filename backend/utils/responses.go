package utils

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"learnhub/backend/services"
)

// SuccessResponse is the envelope for successful JSON replies.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the envelope for error JSON replies.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Success builds a successful JSON reply.
func Success(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(SuccessResponse{
		Success: true,
		Data:    data,
	})
}

// Error builds a JSON error reply.
func Error(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorResponse{
		Success: false,
		Error:   http.StatusText(status),
		Message: err.Error(),
	})
}

// DomainError maps service errors to HTTP statuses.
func DomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrCourseNotCompleted):
		return Error(c, fiber.StatusConflict, err)
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrNotLoggedIn):
		return Error(c, fiber.StatusUnauthorized, err)
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCourseNotFound),
		errors.Is(err, services.ErrEnrollmentNotFound),
		errors.Is(err, services.ErrSectionNotFound):
		return Error(c, fiber.StatusNotFound, err)
	default:
		return Error(c, fiber.StatusInternalServerError, errors.New("internal server error"))
	}
}

func Created(c *fiber.Ctx, data interface{}) error {
	return Success(c, fiber.StatusCreated, data)
}

func NoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, fiber.NewError(fiber.StatusBadRequest, message))
}

func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, fiber.NewError(fiber.StatusUnauthorized, message))
}

func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, fiber.NewError(fiber.StatusForbidden, message))
}
