package purchaseRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "kursdunyasi/controllers/purchase"
	"kursdunyasi/middleware"
	validators "kursdunyasi/validators/purchase"
)

func SetupPurchaseRoutes(app *fiber.App) {
	purchaseGroup := app.Group("/purchase")

	purchaseGroup.Get("/packages", middleware.JWTMiddleware, controllers.GetPackages)
	purchaseGroup.Post("/package/:id", middleware.JWTMiddleware, validators.PackageID(), controllers.PurchasePackage)
	purchaseGroup.Post("/course/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.BuyCourse)
	purchaseGroup.Get("/history", middleware.JWTMiddleware, controllers.GetUserPurchases)
}
