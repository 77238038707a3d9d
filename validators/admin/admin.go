package adminValidator

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"kursdunyasi/middleware"
)

var validate = validator.New()

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

func CourseID() fiber.Handler   { return idParam("id", "courseID", "Course ID") }
func PackageID() fiber.Handler  { return idParam("id", "packageID", "Package ID") }
func ExamID() fiber.Handler     { return idParam("id", "examID", "Exam ID") }
func QuestionID() fiber.Handler { return idParam("id", "questionID", "Question ID") }
func LessonID() fiber.Handler   { return idParam("id", "lessonID", "Lesson ID") }
func OutcomeID() fiber.Handler  { return idParam("id", "outcomeID", "Outcome ID") }
func MaterialID() fiber.Handler { return idParam("id", "materialID", "Material ID") }
func UserID() fiber.Handler     { return idParam("id", "targetUserID", "User ID") }

// CourseEnrollmentIDs validates the course/user pair on enrollment removal
func CourseEnrollmentIDs() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseID, err := strconv.Atoi(strings.TrimSpace(c.Params("id")))
		if err != nil || courseID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid Course ID!", nil)
		}

		userID, err := strconv.Atoi(strings.TrimSpace(c.Params("userId")))
		if err != nil || userID <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid User ID!", nil)
		}

		c.Locals("courseID", courseID)
		c.Locals("targetUserID", userID)
		return c.Next()
	}
}

// Course validates the create/update course body
func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string  `json:"title" validate:"required"`
			Description string  `json:"description"`
			Price       float64 `json:"price"`
			Instructor  string  `json:"instructor"`
			ImageUrl    string  `json:"image_url"`
			CategoryID  *uint   `json:"category_id"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"title": "Title is required!",
			})
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

// Package validates the create/update package body
func Package() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name                 string  `json:"name" validate:"required"`
			Description          string  `json:"description"`
			Price                float64 `json:"price" validate:"gte=0"`
			Features             string  `json:"features"`
			CourseLimit          *int    `json:"course_limit" validate:"omitempty,gte=0"`
			EnableUserChat       bool    `json:"enable_user_chat"`
			EnableInstructorChat bool    `json:"enable_instructor_chat"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Name is required!"
				case "Price":
					errors["price"] = "Price must not be negative!"
				case "CourseLimit":
					errors["course_limit"] = "Course limit must not be negative!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedPackage", reqData)
		return c.Next()
	}
}
