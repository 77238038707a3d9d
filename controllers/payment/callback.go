package paymentController

import (
	"fmt"
	"log"
	"net/url"

	"github.com/gofiber/fiber/v2"

	"kursdunyasi/config"
	"kursdunyasi/database"
	"kursdunyasi/models"
	"kursdunyasi/utils"
)

// PaymentCallback is the provider's redirect target after the user finishes
// or abandons the hosted checkout. The caller is a browser navigation, so
// every outcome answers with a 303 redirect onto the dashboard instead of a
// JSON body. The redirect parameters are never trusted: the authoritative
// payment status always comes from a direct RetrieveCheckout call.
//
// This is the only state machine in the system:
// PENDING -> COMPLETED on provider success, otherwise the row stays PENDING.
func PaymentCallback(c *fiber.Ctx) error {
	token := c.FormValue("token")
	if token == "" {
		return redirectDashboard(c, "error=PaymentFailed")
	}

	result, err := utils.RetrieveCheckout(token)
	if err != nil {
		log.Printf("Callback retrieve error: %v", err)
		return redirectDashboard(c, "error=SystemError")
	}

	if result.Status != "success" || result.PaymentStatus != "SUCCESS" {
		errorMessage := result.ErrorMessage
		if errorMessage == "" {
			errorMessage = "Ödeme başarısız"
		}
		// The purchase stays PENDING here; failed and abandoned attempts are
		// indistinguishable in storage and show up in the scheduler report.
		return redirectDashboard(c, "error="+url.QueryEscape(errorMessage))
	}

	db := database.Database.Db

	var purchase models.Purchase
	if err := db.
		Where("order_id = ?", result.BasketID).
		Preload("Package").
		Preload("Course").
		First(&purchase).Error; err != nil {
		log.Printf("Purchase not found for basketId %s", result.BasketID)
		return redirectDashboard(c, "error=PurchaseNotFound")
	}

	// Replayed callback for a settled purchase: succeed without side effects
	if purchase.Status == models.PurchaseCompleted {
		return redirectDashboard(c, "success=AlreadyPaid")
	}

	purchase.Status = models.PurchaseCompleted
	purchase.PaymentID = result.PaymentID
	purchase.PaymentToken = token
	if err := db.Save(&purchase).Error; err != nil {
		log.Printf("Error completing purchase %d: %v", purchase.ID, err)
		return redirectDashboard(c, "error=SystemError")
	}

	// A direct course purchase grants the enrollment right here. The insert
	// is guarded twice: by the lookup and by the unique (user, course) index.
	if purchase.CourseID != nil {
		var existing models.Enrollment
		if err := db.
			Where("user_id = ? AND course_id = ?", purchase.UserID, *purchase.CourseID).
			First(&existing).Error; err != nil {
			enrollment := models.Enrollment{
				UserID:   purchase.UserID,
				CourseID: *purchase.CourseID,
			}
			if err := db.Create(&enrollment).Error; err != nil {
				log.Printf("Error creating enrollment for purchase %d: %v", purchase.ID, err)
			}
		}
	}

	itemName := purchasedItemName(&purchase)
	go sendReceipt(purchase.UserID, itemName, purchase.Amount)

	if purchase.CourseID != nil {
		return redirect(c, fmt.Sprintf("/dashboard/courses/%d?payment=success&itemName=%s",
			*purchase.CourseID, url.QueryEscape(itemName)))
	}
	return redirectDashboard(c, "payment=success&itemName="+url.QueryEscape(itemName))
}

func purchasedItemName(purchase *models.Purchase) string {
	if purchase.CourseID != nil {
		if purchase.Course != nil {
			return purchase.Course.Title
		}
		return "Kurs"
	}
	if purchase.Package != nil {
		return purchase.Package.Name
	}
	return "Paket"
}

func sendReceipt(userID uint, itemName string, amount float64) {
	var user models.User
	if err := database.Database.Db.Where("id = ?", userID).First(&user).Error; err != nil {
		log.Printf("Receipt email skipped, user %d not found: %v", userID, err)
		return
	}
	utils.SendPurchaseReceipt(user.Email, user.Name, itemName, amount)
}

func redirectDashboard(c *fiber.Ctx, query string) error {
	return redirect(c, "/dashboard?"+query)
}

func redirect(c *fiber.Ctx, path string) error {
	return c.Redirect(config.AppConfig.BaseURL+path, fiber.StatusSeeOther)
}
