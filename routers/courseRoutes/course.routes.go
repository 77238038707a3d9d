package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "kursdunyasi/controllers/course"
	"kursdunyasi/middleware"
	validators "kursdunyasi/validators/course"
)

// SetupCourseRoutes sets up the catalog and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/categories", middleware.JWTMiddleware, controllers.GetCategories)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Free (package credit) enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.EnrollCourse(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/enrollment-status", middleware.JWTMiddleware, validators.CourseID(), controllers.CheckEnrollmentStatus)

	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetEnrollments)
}
