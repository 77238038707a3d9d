package examRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "kursdunyasi/controllers/exam"
	"kursdunyasi/middleware"
	validators "kursdunyasi/validators/exam"
)

func SetupExamRoutes(app *fiber.App) {
	examGroup := app.Group("/exam")

	examGroup.Get("/list", middleware.JWTMiddleware, controllers.GetExams)
	examGroup.Get("/:id", middleware.JWTMiddleware, validators.ExamID(), controllers.GetExam)
	examGroup.Post("/:id/submit", middleware.JWTMiddleware, validators.ExamID(), validators.SubmitExam(), controllers.SubmitExam)
}
