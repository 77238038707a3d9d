package adminController

import (
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"

	"kursdunyasi/database"
	"kursdunyasi/middleware"
	examModels "kursdunyasi/models/exam"
	"kursdunyasi/utils"
)

// GetAdminExams lists exams with their course and question counts
func GetAdminExams(c *fiber.Ctx) error {
	var exams []examModels.Exam
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("title asc").
		Find(&exams).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch exams!", nil)
	}

	type ExamWithCount struct {
		examModels.Exam
		QuestionCount int64 `json:"question_count"`
	}

	response := make([]ExamWithCount, 0, len(exams))
	for _, exam := range exams {
		var count int64
		database.Database.Db.Model(&examModels.Question{}).
			Where("exam_id = ? AND is_deleted = false", exam.ID).
			Count(&count)
		response = append(response, ExamWithCount{Exam: exam, QuestionCount: count})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exams fetched successfully!", response)
}

// GetAdminExam returns one exam with questions, correct answers included
func GetAdminExam(c *fiber.Ctx) error {
	examID := c.Locals("examID").(int)

	var exam examModels.Exam
	if err := database.Database.Db.
		Where("id = ? AND is_deleted = false", examID).
		Preload("Questions", "is_deleted = false").
		First(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Sınav bulunamadı", nil)
	}

	// The admin editor needs the correct answers, which the model hides
	type QuestionWithAnswer struct {
		examModels.Question
		CorrectAnswer string `json:"correct_answer"`
	}
	questions := make([]QuestionWithAnswer, 0, len(exam.Questions))
	for _, q := range exam.Questions {
		questions = append(questions, QuestionWithAnswer{Question: q, CorrectAnswer: q.CorrectAnswer})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Exam fetched successfully!", fiber.Map{
		"exam":      exam,
		"questions": questions,
	})
}

func CreateExam(c *fiber.Ctx) error {
	reqData := new(struct {
		Title    string `json:"title"`
		CourseID uint   `json:"course_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Title == "" || reqData.CourseID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Başlık ve Kurs seçimi zorunludur.", nil)
	}

	exam := examModels.Exam{
		Title:    reqData.Title,
		CourseID: reqData.CourseID,
	}
	if err := database.Database.Db.Create(&exam).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Sınav oluşturulamadı", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Sınav oluşturuldu", exam)
}

func DeleteExam(c *fiber.Ctx) error {
	examID := c.Locals("examID").(int)

	if err := database.Database.Db.Model(&examModels.Exam{}).
		Where("id = ?", examID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Sınav silinemedi", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sınav silindi", nil)
}

// Question management

func AddQuestion(c *fiber.Ctx) error {
	examID := c.Locals("examID").(int)

	reqData := new(struct {
		Text          string   `json:"text"`
		Options       []string `json:"options"`
		CorrectAnswer string   `json:"correct_answer"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}
	if reqData.Text == "" || len(reqData.Options) < 2 || reqData.CorrectAnswer == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Lütfen tüm alanları doldurun", nil)
	}

	question, err := buildQuestion(uint(examID), reqData.Text, reqData.Options, reqData.CorrectAnswer)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	}

	if err := database.Database.Db.Create(question).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Soru eklenemedi", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Soru eklendi", question)
}

func DeleteQuestion(c *fiber.Ctx) error {
	questionID := c.Locals("questionID").(int)

	if err := database.Database.Db.Model(&examModels.Question{}).
		Where("id = ?", questionID).
		Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Soru silinemedi", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Soru silindi", nil)
}

// ParseBulkQuestions previews what the text importer recognized in pasted
// exam text. Nothing is persisted; the admin reviews the preview and then
// posts the confirmed questions to BulkAddQuestions.
func ParseBulkQuestions(c *fiber.Ctx) error {
	reqData := new(struct {
		Text string `json:"text"`
	})
	if err := c.BodyParser(reqData); err != nil || reqData.Text == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Text is required!", nil)
	}

	parsed := utils.ParseBulkQuestions(reqData.Text)

	valid := 0
	for _, q := range parsed {
		if q.IsValid {
			valid++
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Questions parsed!", fiber.Map{
		"questions": parsed,
		"valid":     valid,
		"total":     len(parsed),
	})
}

// BulkAddQuestions saves a confirmed batch of questions to an exam
func BulkAddQuestions(c *fiber.Ctx) error {
	examID := c.Locals("examID").(int)

	reqData := new(struct {
		Questions []struct {
			Text          string   `json:"text"`
			Options       []string `json:"options"`
			CorrectAnswer string   `json:"correct_answer"`
		} `json:"questions"`
	})
	if err := c.BodyParser(reqData); err != nil || len(reqData.Questions) == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	count := 0
	for _, q := range reqData.Questions {
		if q.Text == "" || len(q.Options) < 2 || q.CorrectAnswer == "" {
			continue
		}

		question, err := buildQuestion(uint(examID), q.Text, q.Options, q.CorrectAnswer)
		if err != nil {
			continue
		}
		if err := database.Database.Db.Create(question).Error; err != nil {
			continue
		}
		count++
	}

	if count == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Bazı sorular eklenirken hata oluştu.", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, fmt.Sprintf("%d soru başarıyla eklendi.", count), fiber.Map{
		"added": count,
	})
}

// buildQuestion serializes the option list and checks the correct answer is
// actually one of the options; scoring relies on exact text equality.
func buildQuestion(examID uint, text string, options []string, correctAnswer string) (*examModels.Question, error) {
	found := false
	for _, opt := range options {
		if opt == correctAnswer {
			found = true
			break
		}
	}
	if !found {
		return nil, fmt.Errorf("doğru cevap seçeneklerden biri olmalı")
	}

	optionsJSON, err := json.Marshal(options)
	if err != nil {
		return nil, err
	}

	return &examModels.Question{
		ExamID:        examID,
		Text:          text,
		Options:       datatypes.JSON(optionsJSON),
		CorrectAnswer: correctAnswer,
	}, nil
}
