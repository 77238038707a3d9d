package examController

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
	examModels "kursdunyasi/models/exam"
)

// GetExams lists exams belonging to courses the user is enrolled in,
// together with the user's latest score for each
func GetExams(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var courseIDs []uint
	db.Model(&models.Enrollment{}).
		Where("user_id = ? AND is_deleted = false", userID).
		Pluck("course_id", &courseIDs)

	if len(courseIDs) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully!", []examModels.Exam{})
	}

	var exams []examModels.Exam
	if err := db.
		Where("course_id IN ? AND is_deleted = false", courseIDs).
		Order("title asc").
		Find(&exams).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
	}

	type ExamWithScore struct {
		examModels.Exam
		LastScore *int `json:"last_score"`
	}

	response := make([]ExamWithScore, 0, len(exams))
	for _, exam := range exams {
		entry := ExamWithScore{Exam: exam}

		var result examModels.Result
		if err := db.
			Where("exam_id = ? AND user_id = ? AND is_deleted = false", exam.ID, userID).
			Order("created_at desc").
			First(&result).Error; err == nil {
			entry.LastScore = &result.Score
		}
		response = append(response, entry)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully!", response)
}

// GetExam returns one exam with its questions. Correct answers never leave
// the server; the Question model hides them from JSON.
func GetExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	examID := c.Locals("examID").(int)

	var exam examModels.Exam
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", examID).
		Preload("Questions", "is_deleted = false").
		First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sınav bulunamadı", nil)
	}

	// Exams are reachable only through an enrolled course
	var enrollment models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, exam.CourseID).
		First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Bu sınava erişiminiz yok", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam fetched successfully!", exam)
}

// passingScore is the fixed star threshold: score at or above it earns one star
const passingScore = 70

// SubmitExam grades a submitted answer set by exact option-text equality,
// persists an append-only Result row and bumps the star counter on a pass.
func SubmitExam(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	examID := c.Locals("examID").(int)

	reqData, ok := c.Locals("validatedExamSubmission").(*struct {
		Answers map[string]string `json:"answers"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var exam examModels.Exam
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", examID).
		Preload("Questions", "is_deleted = false").
		First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sınav bulunamadı", nil)
	}

	if len(exam.Questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Sınavda soru yok", nil)
	}

	correct := 0
	for _, question := range exam.Questions {
		answer, ok := reqData.Answers[strconv.Itoa(int(question.ID))]
		if ok && answer == question.CorrectAnswer {
			correct++
		}
	}

	finalScore := int(math.Round(float64(correct) / float64(len(exam.Questions)) * 100))

	result := examModels.Result{
		ExamID: exam.ID,
		UserID: userID,
		Score:  finalScore,
	}
	if err := database.Database.Db.Create(&result).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save result!", nil)
	}

	if finalScore >= passingScore {
		database.Database.Db.Model(&models.User{}).
			Where("id = ?", userID).
			Update("stars", gorm.Expr("stars + 1"))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sınav tamamlandı!", fiber.Map{
		"score":  finalScore,
		"passed": finalScore >= passingScore,
	})
}
