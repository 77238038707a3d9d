package courseValidator

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"kursdunyasi/middleware"
)

// idParam validates a positive integer route parameter and stashes it
func idParam(param, local, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := strings.TrimSpace(c.Params(param))
		if raw == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, message+" is required!", nil)
		}

		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+message+"!", nil)
		}

		c.Locals(local, id)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return idParam("id", "courseID", "Course ID")
}

func EnrollCourse() fiber.Handler {
	return idParam("id", "courseID", "Course ID")
}
