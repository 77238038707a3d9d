package adminRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "kursdunyasi/controllers/admin"
	"kursdunyasi/middleware"
	validators "kursdunyasi/validators/admin"
)

// SetupAdminRoutes sets up the back-office routes. Everything here requires
// a valid token AND the ADMIN role; AdminOnly fails closed.
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.AdminOnly)

	// Courses
	adminGroup.Get("/courses", controllers.GetAdminCourses)
	adminGroup.Get("/courses/:id", validators.CourseID(), controllers.GetAdminCourse)
	adminGroup.Post("/courses", validators.Course(), controllers.CreateCourse)
	adminGroup.Put("/courses/:id", validators.CourseID(), validators.Course(), controllers.UpdateCourse)
	adminGroup.Delete("/courses/:id", validators.CourseID(), controllers.DeleteCourse)

	// Lessons, outcomes, materials
	adminGroup.Post("/courses/:id/lessons", validators.CourseID(), controllers.CreateLesson)
	adminGroup.Put("/lessons/:id", validators.LessonID(), controllers.UpdateLesson)
	adminGroup.Delete("/lessons/:id", validators.LessonID(), controllers.DeleteLesson)
	adminGroup.Post("/courses/:id/outcomes", validators.CourseID(), controllers.CreateLearningOutcome)
	adminGroup.Delete("/outcomes/:id", validators.OutcomeID(), controllers.DeleteLearningOutcome)
	adminGroup.Post("/courses/:id/materials", validators.CourseID(), controllers.CreateMaterial)
	adminGroup.Delete("/materials/:id", validators.MaterialID(), controllers.DeleteMaterial)

	// Packages
	adminGroup.Get("/packages", controllers.GetAdminPackages)
	adminGroup.Post("/packages", validators.Package(), controllers.CreatePackage)
	adminGroup.Put("/packages/:id", validators.PackageID(), validators.Package(), controllers.UpdatePackage)
	adminGroup.Delete("/packages/:id", validators.PackageID(), controllers.DeletePackage)

	// Users
	adminGroup.Get("/users", controllers.GetAdminUsers)
	adminGroup.Post("/users/upload", controllers.UploadUsersFromCSV)
	adminGroup.Patch("/users/:id/role", validators.UserID(), controllers.UpdateUserRole)
	adminGroup.Delete("/users/:id", validators.UserID(), controllers.DeleteUser)

	// Enrollments
	adminGroup.Get("/courses/:id/enrollments", validators.CourseID(), controllers.GetCourseEnrollments)
	adminGroup.Delete("/courses/:id/enrollments/:userId", validators.CourseEnrollmentIDs(), controllers.RemoveEnrollment)

	// Exams
	adminGroup.Get("/exams", controllers.GetAdminExams)
	adminGroup.Get("/exams/:id", validators.ExamID(), controllers.GetAdminExam)
	adminGroup.Post("/exams", controllers.CreateExam)
	adminGroup.Delete("/exams/:id", validators.ExamID(), controllers.DeleteExam)
	adminGroup.Post("/exams/:id/questions", validators.ExamID(), controllers.AddQuestion)
	adminGroup.Delete("/questions/:id", validators.QuestionID(), controllers.DeleteQuestion)
	adminGroup.Post("/exams/questions/parse", controllers.ParseBulkQuestions)
	adminGroup.Post("/exams/:id/questions/bulk", validators.ExamID(), controllers.BulkAddQuestions)
}
