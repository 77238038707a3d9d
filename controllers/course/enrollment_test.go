package courseController

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
	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
	courseModels "kursdunyasi/models/course"
	courseValidator "kursdunyasi/validators/course"
)

func setupEnrollmentTest(t *testing.T) *fiber.App {
	t.Helper()

	config.LoadConfig()
	database.ConnectTestDb()

	app := fiber.New()
	app.Post("/course/:id/enroll", middleware.JWTMiddleware, courseValidator.EnrollCourse(), EnrollInCourse)
	return app
}

func createStudent(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Student", Email: email, Password: "x", Role: "STUDENT"}
	require.NoError(t, database.Database.Db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func createCourse(t *testing.T, title string) courseModels.Course {
	t.Helper()

	course := courseModels.Course{Title: title, Price: 100}
	require.NoError(t, database.Database.Db.Create(&course).Error)
	return course
}

// grantPackage gives the user a COMPLETED purchase of a package with the
// given course limit; nil means unlimited.
func grantPackage(t *testing.T, userID uint, courseLimit *int) {
	t.Helper()

	pkg := models.Package{Name: "Paket", Price: 500, CourseLimit: courseLimit}
	require.NoError(t, database.Database.Db.Create(&pkg).Error)

	purchase := models.Purchase{
		UserID:    userID,
		PackageID: &pkg.ID,
		Amount:    pkg.Price,
		Status:    models.PurchaseCompleted,
		OrderID:   "order-pkg-" + strconv.Itoa(int(userID)),
	}
	require.NoError(t, database.Database.Db.Create(&purchase).Error)
}

func enroll(t *testing.T, app *fiber.App, token string, courseID uint) (*http.Response, string) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/course/"+itoa(courseID)+"/enroll", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body.Message
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}

func TestEnrollWithoutPackage(t *testing.T) {
	app := setupEnrollmentTest(t)
	_, token := createStudent(t, "nopkg@example.com")
	course := createCourse(t, "Go Temelleri")

	resp, msg := enroll(t, app, token, course.ID)

	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Herhangi bir paketiniz yok veya aktif paket bulunamadı.", msg)
}

func TestEnrollRespectsCourseLimit(t *testing.T) {
	app := setupEnrollmentTest(t)
	user, token := createStudent(t, "limited@example.com")
	limit := 2
	grantPackage(t, user.ID, &limit)

	first := createCourse(t, "Kurs 1")
	second := createCourse(t, "Kurs 2")
	third := createCourse(t, "Kurs 3")

	resp, _ := enroll(t, app, token, first.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, _ = enroll(t, app, token, second.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, msg := enroll(t, app, token, third.ID)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Paket limitinize ulaştınız (2 Kurs). Daha fazla kurs için paketinizi yükseltin.", msg)

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(2), count)
}

func TestEnrollUnlimitedPackage(t *testing.T) {
	app := setupEnrollmentTest(t)
	user, token := createStudent(t, "unlimited@example.com")
	grantPackage(t, user.ID, nil)

	for _, title := range []string{"A", "B", "C", "D", "E"} {
		course := createCourse(t, title)
		resp, _ := enroll(t, app, token, course.ID)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var count int64
	database.Database.Db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(5), count)
}

func TestEnrollTwiceIsConflict(t *testing.T) {
	app := setupEnrollmentTest(t)
	user, token := createStudent(t, "twice@example.com")
	grantPackage(t, user.ID, nil)
	course := createCourse(t, "Tek Kurs")

	resp, _ := enroll(t, app, token, course.ID)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, msg := enroll(t, app, token, course.ID)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Zaten kayıtlısınız", msg)
}
