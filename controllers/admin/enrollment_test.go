package adminController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kursdunyasi/config"
	courseController "kursdunyasi/controllers/course"
	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
	courseModels "kursdunyasi/models/course"
	adminValidator "kursdunyasi/validators/admin"
	courseValidator "kursdunyasi/validators/course"
)

func setupEnrollmentAdminTest(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	app.Post("/course/:id/enroll", middleware.JWTMiddleware, courseValidator.EnrollCourse(), courseController.EnrollInCourse)
	app.Delete("/admin/courses/:id/enrollments/:userId", middleware.JWTMiddleware, middleware.AdminOnly,
		adminValidator.CourseEnrollmentIDs(), RemoveEnrollment)
	return app
}

func enrollmentAdminUser(t *testing.T, email, role string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "U", Email: email, Password: "x", Role: role}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

// A removed enrollment must not leave a tombstone behind: the unique
// (user, course) index would reject the re-enrollment insert.
func TestRemoveEnrollmentAllowsReenrollment(t *testing.T) {
	app := setupEnrollmentAdminTest(t)
	db := database.Database.Db

	student, studentToken := enrollmentAdminUser(t, "student@example.com", "STUDENT")
	_, adminToken := enrollmentAdminUser(t, "admin@example.com", "ADMIN")

	course := courseModels.Course{Title: "Go Temelleri", Price: 100}
	require.NoError(t, db.Create(&course).Error)

	pkg := models.Package{Name: "Paket", Price: 500}
	require.NoError(t, db.Create(&pkg).Error)
	require.NoError(t, db.Create(&models.Purchase{
		UserID:    student.ID,
		PackageID: &pkg.ID,
		Amount:    pkg.Price,
		Status:    models.PurchaseCompleted,
		OrderID:   "order-readd",
	}).Error)

	enrollPath := "/course/" + strconv.Itoa(int(course.ID)) + "/enroll"
	removePath := "/admin/courses/" + strconv.Itoa(int(course.ID)) + "/enrollments/" + strconv.Itoa(int(student.ID))

	req := httptest.NewRequest(http.MethodPost, enrollPath, nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(http.MethodDelete, removePath, nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The row is gone from the table, not just flagged
	var remaining int64
	db.Unscoped().Model(&models.Enrollment{}).
		Where("user_id = ? AND course_id = ?", student.ID, course.ID).
		Count(&remaining)
	assert.Equal(t, int64(0), remaining)

	req = httptest.NewRequest(http.MethodPost, enrollPath, nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)

	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Kursa başarıyla kayıt olundu!", body.Message)
}
