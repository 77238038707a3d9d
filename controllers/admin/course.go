package adminController

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	courseModels "kursdunyasi/models/course"
)

// GetAdminCourses lists all courses for the back office, newest first
func GetAdminCourses(c *fiber.Ctx) error {
	var courses []courseModels.Course
	if err := database.Database.Db.
		Where("is_deleted = false").
		Preload("Category").
		Order("created_at desc").
		Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", courses)
}

// GetAdminCourse returns one course with its ordered lessons
func GetAdminCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", courseID).
		Preload("Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_deleted = false").Order("lesson_order asc")
		}).
		Preload("Outcomes", "is_deleted = false").
		Preload("Material", "is_deleted = false").
		First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", course)
}

func CreateCourse(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string  `json:"title" validate:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Instructor  string  `json:"instructor"`
		ImageUrl    string  `json:"image_url"`
		CategoryID  *uint   `json:"category_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	course := courseModels.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       reqData.Price,
		Instructor:  reqData.Instructor,
		ImageUrl:    reqData.ImageUrl,
		CategoryID:  reqData.CategoryID,
	}
	if err := database.Database.Db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData, ok := c.Locals("validatedCourse").(*struct {
		Title       string  `json:"title" validate:"required"`
		Description string  `json:"description"`
		Price       float64 `json:"price"`
		Instructor  string  `json:"instructor"`
		ImageUrl    string  `json:"image_url"`
		CategoryID  *uint   `json:"category_id"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	course.Title = reqData.Title
	course.Description = reqData.Description
	course.Price = reqData.Price
	course.Instructor = reqData.Instructor
	course.ImageUrl = reqData.ImageUrl
	course.CategoryID = reqData.CategoryID

	if err := database.Database.Db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	if err := database.Database.Db.Model(&courseModels.Course{}).
		Where("id = ?", courseID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted!", nil)
}

// Lesson management

func CreateLesson(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		Title    string `json:"title"`
		VideoUrl string `json:"video_url"`
		Order    int    `json:"order"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Title == "" || reqData.VideoUrl == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title and Video URL required!", nil)
	}
	if reqData.Order == 0 {
		reqData.Order = 99
	}

	lesson := courseModels.Lesson{
		CourseID: uint(courseID),
		Title:    reqData.Title,
		VideoUrl: reqData.VideoUrl,
		Order:    reqData.Order,
	}
	if err := database.Database.Db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created!", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	reqData := new(struct {
		Title    string `json:"title"`
		VideoUrl string `json:"video_url"`
		Order    int    `json:"order"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var lesson courseModels.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", lessonID).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Title != "" {
		lesson.Title = reqData.Title
	}
	if reqData.VideoUrl != "" {
		lesson.VideoUrl = reqData.VideoUrl
	}
	if reqData.Order != 0 {
		lesson.Order = reqData.Order
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	if err := database.Database.Db.Model(&courseModels.Lesson{}).
		Where("id = ?", lessonID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted!", nil)
}

// Learning outcome management

func CreateLearningOutcome(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		Text string `json:"text"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Text == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Text is required!", nil)
	}

	outcome := courseModels.LearningOutcome{
		CourseID: uint(courseID),
		Text:     reqData.Text,
	}
	if err := database.Database.Db.Create(&outcome).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create outcome!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Outcome created!", outcome)
}

func DeleteLearningOutcome(c *fiber.Ctx) error {
	outcomeID := c.Locals("outcomeID").(int)

	if err := database.Database.Db.Model(&courseModels.LearningOutcome{}).
		Where("id = ?", outcomeID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete outcome!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Outcome deleted!", nil)
}

// Material management

func CreateMaterial(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		Title   string `json:"title"`
		FileUrl string `json:"file_url"`
		Type    string `json:"type"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Title == "" || reqData.FileUrl == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title and URL required!", nil)
	}
	if reqData.Type == "" {
		reqData.Type = "LINK"
	}

	material := courseModels.Material{
		CourseID: uint(courseID),
		Title:    reqData.Title,
		FileUrl:  reqData.FileUrl,
		Type:     reqData.Type,
	}
	if err := database.Database.Db.Create(&material).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Material created!", material)
}

func DeleteMaterial(c *fiber.Ctx) error {
	materialID := c.Locals("materialID").(int)

	if err := database.Database.Db.Model(&courseModels.Material{}).
		Where("id = ?", materialID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete material!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Material deleted!", nil)
}
