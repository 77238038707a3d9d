package adminController

import (
	"github.com/gofiber/fiber/v2"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
)

// GetCourseEnrollments lists who is enrolled in a course
func GetCourseEnrollments(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("course_id = ? AND is_deleted = false", courseID).
		Preload("User").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrollmentWithUser struct {
		models.Enrollment
		UserName  string `json:"user_name"`
		UserEmail string `json:"user_email"`
	}

	response := make([]EnrollmentWithUser, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var user models.User
		database.Database.Db.Select("name, email").Where("id = ?", enrollment.UserID).First(&user)
		response = append(response, EnrollmentWithUser{
			Enrollment: enrollment,
			UserName:   user.Name,
			UserEmail:  user.Email,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", response)
}

// RemoveEnrollment revokes a user's access to a course
func RemoveEnrollment(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)
	userID := c.Locals("targetUserID").(int)

	// Hard delete: a soft-deleted row would keep occupying the unique
	// (user, course) index and block any later re-enrollment.
	if err := database.Database.Db.
		Where("course_id = ? AND user_id = ?", courseID, userID).
		Unscoped().
		Delete(&models.Enrollment{}).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to remove enrollment!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment removed!", nil)
}
