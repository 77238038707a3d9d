package examValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kursdunyasi/middleware"
)

func ExamID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params("id"))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Exam ID is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Exam ID!", nil)
		}

		c.Locals("examID", id)
		return c.Next()
	}
}

// SubmitExam validates the answer set body: question id -> chosen option text
func SubmitExam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Answers map[string]string `json:"answers"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if len(reqData.Answers) == 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lütfen en az bir soruyu cevaplayın", nil)
		}

		c.Locals("validatedExamSubmission", reqData)
		return c.Next()
	}
}
