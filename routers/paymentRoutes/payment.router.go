package paymentRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "kursdunyasi/controllers/payment"
)

func SetupPaymentRoutes(app *fiber.App) {
	// The provider POSTs the checkout token here after the user finishes or
	// abandons the hosted payment page. No auth: the caller is iyzico, and
	// the handler verifies the token against the provider itself.
	app.Post("/api/payment/callback", controllers.PaymentCallback)
}
