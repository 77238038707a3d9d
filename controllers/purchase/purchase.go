package purchaseController

import (
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kursdunyasi/config"
	"kursdunyasi/database"
	"kursdunyasi/middleware"
	"kursdunyasi/models"
	courseModels "kursdunyasi/models/course"
	"kursdunyasi/utils"
)

// GetPackages lists purchasable packages, cheapest first
func GetPackages(c *fiber.Ctx) error {
	var packages []models.Package
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("price asc").
		Find(&packages).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch packages!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Packages fetched successfully!", packages)
}

// PurchasePackage creates a PENDING purchase for a package and opens a
// hosted checkout session. The browser is expected to navigate to the
// returned redirect URL; the purchase is reconciled by the payment callback.
func PurchasePackage(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	packageID := c.Locals("packageID").(int)

	var pkg models.Package
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", packageID).First(&pkg).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Paket bulunamadı", nil)
	}

	// Duplicate guard: a COMPLETED purchase of the same package blocks a new one
	var existing models.Purchase
	if err := database.Database.Db.
		Where("user_id = ? AND package_id = ? AND status = ?", userID, packageID, models.PurchaseCompleted).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Bu paketi zaten satın aldınız!", nil)
	}

	purchase := models.Purchase{
		UserID:    userID,
		PackageID: &pkg.ID,
		Amount:    pkg.Price,
		Status:    models.PurchasePending,
		OrderID:   uuid.NewString(),
	}
	if err := database.Database.Db.Create(&purchase).Error; err != nil {
		log.Printf("Error creating purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase!", nil)
	}

	result, err := initCheckout(&user, &purchase, pkg.Name, "Online Education Package", strconv.Itoa(int(pkg.ID)))
	if err != nil {
		// Purchase stays PENDING; the daily scheduler surfaces it later
		log.Printf("Checkout initialize error for purchase %d: %v", purchase.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Ödeme başlatılamadı: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ödeme sayfasına yönlendiriliyorsunuz.", fiber.Map{
		"redirectUrl": result.PaymentPageUrl,
	})
}

// BuyCourse creates a PENDING purchase for a single course and opens a
// hosted checkout session. The matching Enrollment is created by the
// callback reconciler once the provider confirms payment.
func BuyCourse(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Satın alma işlemi için giriş yapmalısınız.", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", userID).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	courseID := c.Locals("courseID").(int)

	var course courseModels.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", courseID).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Kurs bulunamadı.", nil)
	}

	// Already enrolled means already owned, paid or not
	var enrollment models.Enrollment
	if err := database.Database.Db.
		Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&enrollment).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Zaten bu kursa sahipsiniz.", nil)
	}

	purchase := models.Purchase{
		UserID:   userID,
		CourseID: &course.ID,
		Amount:   course.Price,
		Status:   models.PurchasePending,
		OrderID:  uuid.NewString(),
	}
	if err := database.Database.Db.Create(&purchase).Error; err != nil {
		log.Printf("Error creating purchase: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create purchase!", nil)
	}

	result, err := initCheckout(&user, &purchase, course.Title, "Online Course", strconv.Itoa(int(course.ID)))
	if err != nil {
		log.Printf("Checkout initialize error for purchase %d: %v", purchase.ID, err)
		return middleware.JsonResponse(c, fiber.StatusBadGateway, false, "Ödeme başlatılamadı: "+err.Error(), nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ödeme sayfasına yönlendiriliyorsunuz.", fiber.Map{
		"redirectUrl": result.PaymentPageUrl,
	})
}

// initCheckout calls the provider and persists the returned session token.
// A non-success provider answer is mapped to an error with the provider's
// own message embedded.
func initCheckout(user *models.User, purchase *models.Purchase, itemName, itemCategory, itemID string) (*utils.CheckoutInitResponse, error) {
	callbackUrl := config.AppConfig.BaseURL + "/api/payment/callback"

	buyer := utils.CheckoutBuyer{
		ID:             strconv.Itoa(int(user.ID)),
		Name:           user.Name,
		Surname:        "Kullanici",
		Email:          user.Email,
		IdentityNumber: "11111111111",
		Address:        "Online Course Platform",
		Ip:             "85.34.78.112",
		City:           "Istanbul",
		Country:        "Turkey",
	}
	items := []utils.CheckoutItem{{
		ID:       itemID,
		Name:     itemName,
		Category: itemCategory,
		Price:    purchase.Amount,
	}}

	result, err := utils.InitializeCheckout(purchase.Amount, purchase.OrderID, callbackUrl, buyer, items)
	if err != nil {
		return nil, err
	}

	if result.Status != "success" || result.PaymentPageUrl == "" {
		if result.ErrorMessage != "" {
			return nil, fmt.Errorf("%s", result.ErrorMessage)
		}
		return nil, fmt.Errorf("bilinmeyen hata")
	}

	purchase.PaymentToken = result.Token
	if err := database.Database.Db.Save(purchase).Error; err != nil {
		return nil, err
	}

	return result, nil
}

// GetUserPurchases returns the authenticated user's purchase history
func GetUserPurchases(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var purchases []models.Purchase
	if err := database.Database.Db.
		Where("user_id = ? AND is_deleted = false", userID).
		Preload("Package").
		Preload("Course").
		Order("created_at desc").
		Find(&purchases).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch purchases!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Purchases fetched successfully!", purchases)
}
