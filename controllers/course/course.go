package courseController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	courseModels "kursdunyasi/models/course"
)

// GetAllCourses lists published courses for the catalog page
func GetAllCourses(c *fiber.Ctx) error {
	db := database.Database.Db

	query := db.Model(&courseModels.Course{}).
		Where("is_deleted = false AND is_published = true").
		Preload("Category")

	if categoryID := c.QueryInt("category", 0); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var courses []courseModels.Course
	if err := query.Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetCourseDetails returns one course with lessons, outcomes and materials
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", courseID).
		Preload("Category").
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = false").Order("lesson_order asc")
		}).
		Preload("Outcomes", "is_deleted = false").
		Preload("Material", "is_deleted = false").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Kurs bulunamadı.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

// GetCategories lists course categories
func GetCategories(c *fiber.Ctx) error {
	var categories []courseModels.Category
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("name asc").
		Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}
