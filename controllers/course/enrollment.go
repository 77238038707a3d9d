package courseController

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
	courseModels "kursdunyasi/models/course"
	"kursdunyasi/utils"
)

// EnrollInCourse spends a package course-credit on a free enrollment.
// Eligibility comes from the latest active package membership: no package
// means no free enrollments, a nil course limit means unlimited, otherwise
// the user's total enrollment count must stay strictly below the limit.
func EnrollInCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Giriş yapmalısınız", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Kullanıcı bulunamadı", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Kurs bulunamadı.", nil)
	}

	activePurchase, err := utils.ActivePackagePurchase(userID)
	if err != nil || activePurchase.Package == nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Herhangi bir paketiniz yok veya aktif paket bulunamadı.", nil)
	}

	activePackage := activePurchase.Package

	if activePackage.CourseLimit != nil {
		var enrollmentCount int64
		database.Database.Db.Model(&models.Enrollment{}).
			Where("user_id = ? AND is_deleted = false", userID).
			Count(&enrollmentCount)

		if enrollmentCount >= int64(*activePackage.CourseLimit) {
			message := fmt.Sprintf("Paket limitinize ulaştınız (%d Kurs). Daha fazla kurs için paketinizi yükseltin.", *activePackage.CourseLimit)
			return middleware.JsonResponse(c, fiber.StatusForbidden, false, message, nil)
		}
	}

	// Duplicate guard; the unique (user, course) index backs this up under races
	var existing models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Zaten kayıtlısınız", nil)
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: uint(courseID),
	}
	if err := database.Database.Db.Create(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Kayıt işlemi başarısız", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Kursa başarıyla kayıt olundu!", enrollment)
}

// CheckEnrollmentStatus tells the course page whether to show an enroll
// button, a buy button or nothing
func CheckEnrollmentStatus(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var enrollment models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&enrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
			"isEnrolled": true,
			"canEnroll":  false,
		})
	}

	activePurchase, err := utils.ActivePackagePurchase(userID)
	if err != nil || activePurchase.Package == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
			"isEnrolled": false,
			"canEnroll":  false,
			"reason":     "No package",
		})
	}

	if activePurchase.Package.CourseLimit == nil {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
			"isEnrolled": false,
			"canEnroll":  true,
		})
	}

	var enrollmentCount int64
	database.Database.Db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_deleted = false", userID).
		Count(&enrollmentCount)

	if enrollmentCount < int64(*activePurchase.Package.CourseLimit) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
			"isEnrolled": false,
			"canEnroll":  true,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment status fetched!", fiber.Map{
		"isEnrolled": false,
		"canEnroll":  false,
		"reason":     "Limit reached",
	})
}

// GetEnrollments returns the authenticated user's enrollments
func GetEnrollments(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var enrollments []models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userID).
		Preload("Course").
		Order("created_at desc").
		Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", enrollments)
}
