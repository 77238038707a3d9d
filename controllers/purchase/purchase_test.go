package purchaseController

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
	purchaseValidator "kursdunyasi/validators/purchase"
)

// setupPurchaseTest wires a fake provider that answers every initialize call
// with the given response.
func setupPurchaseTest(t *testing.T, initResponse interface{}) *fiber.App {
	t.Helper()

	config.LoadConfig()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(initResponse)
	}))
	t.Cleanup(srv.Close)
	config.AppConfig.IyzicoBaseURL = srv.URL

	database.ConnectTestDb()

	app := fiber.New()
	app.Post("/purchase/package/:id", middleware.JWTMiddleware, purchaseValidator.PackageID(), PurchasePackage)
	return app
}

func createBuyer(t *testing.T, email string) (models.User, string) {
	t.Helper()

	user := models.User{Name: "Buyer", Email: email, Password: "x", Role: "STUDENT"}
	require.NoError(t, database.Database.Db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Name, user.Role, user.Email)
	require.NoError(t, err)
	return user, token
}

func buyPackage(t *testing.T, app *fiber.App, token string, packageID uint) (*http.Response, string, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/purchase/package/"+strconv.Itoa(int(packageID)), nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body struct {
		Status  bool                   `json:"status"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body.Message, body.Data
}

func TestPurchasePackageOpensCheckout(t *testing.T) {
	app := setupPurchaseTest(t, fiber.Map{
		"status":         "success",
		"token":          "checkout-token",
		"paymentPageUrl": "https://sandbox.iyzipay.com/pay/abc",
	})
	user, token := createBuyer(t, "buyer@example.com")

	pkg := models.Package{Name: "Pro Paket", Price: 750}
	require.NoError(t, database.Database.Db.Create(&pkg).Error)

	resp, _, data := buyPackage(t, app, token, pkg.ID)

	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "https://sandbox.iyzipay.com/pay/abc", data["redirectUrl"])

	// The row is created PENDING; only the callback completes it
	var purchase models.Purchase
	require.NoError(t, database.Database.Db.
		Where("user_id = ? AND package_id = ?", user.ID, pkg.ID).
		First(&purchase).Error)
	assert.Equal(t, models.PurchasePending, purchase.Status)
	assert.Equal(t, "checkout-token", purchase.PaymentToken)
	assert.NotEmpty(t, purchase.OrderID)
}

func TestPurchasePackageAlreadyOwned(t *testing.T) {
	app := setupPurchaseTest(t, fiber.Map{"status": "success"})
	user, token := createBuyer(t, "owner@example.com")

	pkg := models.Package{Name: "Temel Paket", Price: 400}
	require.NoError(t, database.Database.Db.Create(&pkg).Error)
	require.NoError(t, database.Database.Db.Create(&models.Purchase{
		UserID:    user.ID,
		PackageID: &pkg.ID,
		Amount:    pkg.Price,
		Status:    models.PurchaseCompleted,
		OrderID:   "order-owned",
	}).Error)

	resp, msg, _ := buyPackage(t, app, token, pkg.ID)

	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Bu paketi zaten satın aldınız!", msg)

	var count int64
	database.Database.Db.Model(&models.Purchase{}).Where("user_id = ?", user.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestPurchasePackageProviderFailure(t *testing.T) {
	app := setupPurchaseTest(t, fiber.Map{
		"status":       "failure",
		"errorMessage": "Geçersiz imza",
	})
	user, token := createBuyer(t, "unlucky@example.com")

	pkg := models.Package{Name: "Paket", Price: 100}
	require.NoError(t, database.Database.Db.Create(&pkg).Error)

	resp, msg, _ := buyPackage(t, app, token, pkg.ID)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, msg, "Ödeme başlatılamadı")
	assert.Contains(t, msg, "Geçersiz imza")

	// The attempt is recorded and stays PENDING for the scheduler report
	var purchase models.Purchase
	require.NoError(t, database.Database.Db.
		Where("user_id = ?", user.ID).
		First(&purchase).Error)
	assert.Equal(t, models.PurchasePending, purchase.Status)
}

func TestPurchaseUnknownPackage(t *testing.T) {
	app := setupPurchaseTest(t, fiber.Map{"status": "success"})
	_, token := createBuyer(t, "ghost@example.com")

	resp, msg, _ := buyPackage(t, app, token, 9999)

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Paket bulunamadı", msg)
}
