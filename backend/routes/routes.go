package routes

import (
	"github.com/gofiber/fiber/v2"

	"learnhub/backend/config"
	"learnhub/backend/controllers"
	"learnhub/backend/middleware"
	"learnhub/backend/services"
)

func SetupRoutes(app *fiber.App, api *services.API, cfg *config.Config) {
	// Auth routes
	authController := controllers.NewAuthController(api, cfg)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Post("/api/auth/logout", authController.Logout)
	app.Get("/api/auth/session", authController.Session)

	// Middleware
	authMiddleware := middleware.AuthMiddleware(cfg)
	teacherMiddleware := middleware.TeacherMiddleware(cfg)

	// User routes
	userController := controllers.NewUserController(api, cfg)
	app.Get("/api/user/profile", authMiddleware, userController.GetProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(api, cfg)
	enrollmentsController := controllers.NewEnrollmentsController(api, cfg)
	courses := app.Group("/api/courses")
	courses.Get("/", coursesController.GetCourses)
	courses.Get("/:id", coursesController.GetCourse)
	courses.Post("/", authMiddleware, teacherMiddleware, coursesController.CreateCourse)
	courses.Delete("/:id", authMiddleware, teacherMiddleware, coursesController.DeleteCourse)
	courses.Post("/:id/enroll", authMiddleware, enrollmentsController.Enroll)

	// Enrollment routes
	enrollments := app.Group("/api/enrollments", authMiddleware)
	enrollments.Get("/", enrollmentsController.GetEnrolledCourses)
	enrollments.Put("/:courseId/sections/:sectionId", enrollmentsController.UpdateSectionProgress)
	enrollments.Get("/:courseId/certificate", enrollmentsController.GetCertificate)
}
