package chatRoutes

import (
	"github.com/gofiber/fiber/v2"

	controllers "kursdunyasi/controllers/chat"
	"kursdunyasi/middleware"
)

func SetupChatRoutes(app *fiber.App) {
	chatGroup := app.Group("/chat")

	chatGroup.Get("/messages", middleware.JWTMiddleware, controllers.GetMessages)
	chatGroup.Post("/send", middleware.JWTMiddleware, controllers.SendMessage)
	chatGroup.Get("/permissions", middleware.JWTMiddleware, controllers.GetChatPermissions)
}
