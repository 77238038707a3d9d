package paymentController

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kursdunyasi/config"
	"kursdunyasi/database"
	"kursdunyasi/models"
	courseModels "kursdunyasi/models/course"
	"kursdunyasi/utils"
)

// setupCallbackTest stands up an in-memory database and a fake provider that
// answers every retrieve call with the given result.
func setupCallbackTest(t *testing.T, result utils.CheckoutResult) *fiber.App {
	t.Helper()

	config.LoadConfig()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(result)
	}))
	t.Cleanup(srv.Close)

	config.AppConfig.IyzicoBaseURL = srv.URL
	config.AppConfig.BaseURL = "http://localhost:3000"
	config.AppConfig.SendgridApiKey = ""

	database.ConnectTestDb()

	app := fiber.New()
	app.Post("/api/payment/callback", PaymentCallback)
	return app
}

func postCallback(t *testing.T, app *fiber.App, token string) *http.Response {
	t.Helper()

	body := ""
	if token != "" {
		body = "token=" + token
	}
	req := httptest.NewRequest(http.MethodPost, "/api/payment/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCallbackMissingToken(t *testing.T) {
	app := setupCallbackTest(t, utils.CheckoutResult{})

	resp := postCallback(t, app, "")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000/dashboard?error=PaymentFailed", resp.Header.Get("Location"))
}

func TestCallbackCompletesCoursePurchase(t *testing.T) {
	app := setupCallbackTest(t, utils.CheckoutResult{
		Status:        "success",
		PaymentStatus: "SUCCESS",
		BasketID:      "order-course-1",
		PaymentID:     "pay-42",
	})
	db := database.Database.Db

	user := models.User{Name: "Ayşe", Email: "ayse@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	course := courseModels.Course{Title: "Go Temelleri", Price: 150}
	require.NoError(t, db.Create(&course).Error)
	purchase := models.Purchase{
		UserID:   user.ID,
		CourseID: &course.ID,
		Amount:   150,
		Status:   models.PurchasePending,
		OrderID:  "order-course-1",
	}
	require.NoError(t, db.Create(&purchase).Error)

	resp := postCallback(t, app, "tok-1")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "/dashboard/courses/")
	assert.Contains(t, resp.Header.Get("Location"), "payment=success")

	var reloaded models.Purchase
	require.NoError(t, db.First(&reloaded, purchase.ID).Error)
	assert.Equal(t, models.PurchaseCompleted, reloaded.Status)
	assert.Equal(t, "pay-42", reloaded.PaymentID)

	var enrollment models.Enrollment
	assert.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
}

func TestCallbackIsIdempotent(t *testing.T) {
	app := setupCallbackTest(t, utils.CheckoutResult{
		Status:        "success",
		PaymentStatus: "SUCCESS",
		BasketID:      "order-course-2",
		PaymentID:     "pay-43",
	})
	db := database.Database.Db

	user := models.User{Name: "Mehmet", Email: "mehmet@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	course := courseModels.Course{Title: "SQL", Price: 99}
	require.NoError(t, db.Create(&course).Error)
	purchase := models.Purchase{
		UserID:   user.ID,
		CourseID: &course.ID,
		Amount:   99,
		Status:   models.PurchasePending,
		OrderID:  "order-course-2",
	}
	require.NoError(t, db.Create(&purchase).Error)

	first := postCallback(t, app, "tok-2")
	assert.Equal(t, fiber.StatusSeeOther, first.StatusCode)

	// Replaying the callback must succeed without new side effects
	second := postCallback(t, app, "tok-2")
	assert.Equal(t, fiber.StatusSeeOther, second.StatusCode)
	assert.Equal(t, "http://localhost:3000/dashboard?success=AlreadyPaid", second.Header.Get("Location"))

	var enrollments int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollments)
	assert.Equal(t, int64(1), enrollments)
}

func TestCallbackPurchaseNotFound(t *testing.T) {
	app := setupCallbackTest(t, utils.CheckoutResult{
		Status:        "success",
		PaymentStatus: "SUCCESS",
		BasketID:      "no-such-order",
	})

	resp := postCallback(t, app, "tok-3")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "http://localhost:3000/dashboard?error=PurchaseNotFound", resp.Header.Get("Location"))
}

func TestCallbackProviderFailureKeepsPending(t *testing.T) {
	app := setupCallbackTest(t, utils.CheckoutResult{
		Status:       "failure",
		ErrorMessage: "Kart limiti yetersiz",
	})
	db := database.Database.Db

	user := models.User{Name: "Zeynep", Email: "zeynep@example.com", Password: "x"}
	require.NoError(t, db.Create(&user).Error)
	pkg := models.Package{Name: "Temel Paket", Price: 500}
	require.NoError(t, db.Create(&pkg).Error)
	purchase := models.Purchase{
		UserID:    user.ID,
		PackageID: &pkg.ID,
		Amount:    500,
		Status:    models.PurchasePending,
		OrderID:   "order-pkg-1",
	}
	require.NoError(t, db.Create(&purchase).Error)

	resp := postCallback(t, app, "tok-4")

	assert.Equal(t, fiber.StatusSeeOther, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "error=")

	var reloaded models.Purchase
	require.NoError(t, db.First(&reloaded, purchase.ID).Error)
	assert.Equal(t, models.PurchasePending, reloaded.Status)
}
